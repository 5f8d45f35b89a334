package model

import (
	"math/rand"
	"testing"
)

func TestAddGliderWrapsAtEdges(t *testing.T) {
	b := mustBoard(t, 4, 4)
	b.AddGlider(3, 3)

	want := "0100\n1101\n0000\n1000\n"
	if got := b.String(); got != want {
		t.Errorf("glider at corner =\n%s\nwant\n%s", got, want)
	}
}

func TestRandomize(t *testing.T) {
	b := mustBoard(t, 20, 20)

	b.Randomize(0, rand.New(rand.NewSource(1)))
	if n := b.CountLivingCells(); n != 0 {
		t.Errorf("density 0 gave %d living cells", n)
	}

	b.Randomize(1, rand.New(rand.NewSource(1)))
	if n := b.CountLivingCells(); n != 400 {
		t.Errorf("density 1 gave %d living cells", n)
	}

	a, c := mustBoard(t, 20, 20), mustBoard(t, 20, 20)
	a.Randomize(0.3, rand.New(rand.NewSource(42)))
	c.Randomize(0.3, rand.New(rand.NewSource(42)))
	if !a.Equal(c) {
		t.Error("same seed produced different boards")
	}
}

func TestInjectRandomLife(t *testing.T) {
	b := mustBoard(t, 10, 10)
	b.InjectRandomLife(5, rand.New(rand.NewSource(7)))

	if n := b.CountLivingCells(); n < 1 || n > 5 {
		t.Errorf("InjectRandomLife(5) gave %d living cells", n)
	}
}
