package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	b := boardWith(t, 3, 2, [2]int{0, 0}, [2]int{2, 1})

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(b); err != nil {
		t.Fatal(err)
	}

	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Display wrote %q, want %q", got, want)
	}
}
