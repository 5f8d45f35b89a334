package model

import "testing"

func TestBoardPoolGetReturnsClearedBoard(t *testing.T) {
	pool := NewBoardPool()

	used := pool.Get(4, 4)
	used.AddGlider(0, 0)
	BoardToPool(used, pool)

	for _, dims := range [][2]int{{4, 4}, {6, 2}} {
		b := pool.Get(dims[0], dims[1])
		if b.GetWidth() != dims[0] || b.GetHeight() != dims[1] {
			t.Fatalf("Get(%d, %d) returned %dx%d", dims[0], dims[1], b.GetWidth(), b.GetHeight())
		}
		if n := b.CountLivingCells(); n != 0 {
			t.Errorf("Get(%d, %d) returned %d living cells", dims[0], dims[1], n)
		}
		BoardToPool(b, pool)
	}
}

func TestNilBoardPool(t *testing.T) {
	var pool *BoardPool

	b := pool.Get(3, 2)
	if b.GetWidth() != 3 || b.GetHeight() != 2 {
		t.Fatalf("nil pool Get returned %dx%d", b.GetWidth(), b.GetHeight())
	}
	BoardToPool(b, pool)
	BoardToPool(nil, NewBoardPool())
}
