package model

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws boards as block characters
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the board, one terminal line per row
func (r *TerminalRenderer) Display(b *Board) error {
	var sb strings.Builder
	for y := range b.GetHeight() {
		for x := range b.GetWidth() {
			if b.GetCellVal(x, y) == Alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := fmt.Fprint(r.out, sb.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
