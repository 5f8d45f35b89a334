package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell states
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrOutOfRange is returned for direct cell access outside the board
	ErrOutOfRange = errors.New("cell coordinates out of range")
	// ErrInvalidState is returned when a cell is set to anything but Dead or Alive
	ErrInvalidState = errors.New("cell state must be 0 or 1")
	// ErrInvalidDimensions is returned when a board is created with a non-positive width or height
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
)

// neighbourOffsets lists the Moore neighbourhood: nw, n, ne, e, se, s, sw, w
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{1, 0},
	{1, 1}, {0, 1}, {-1, 1},
	{-1, 0},
}

// Board is a single generation of a toroidal Game of Life grid.
//
// Width and height never change once the board is built. Evolve and Clone
// always return a new board and leave the receiver as it was.
// Boards must be created with NewBoard; the zero value has no cells.
type Board struct {
	width  int
	height int
	cells  [][]uint8 // indexed [y][x]
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] got %dx%d", width, height)
	}
	return newBoard(width, height), nil
}

func newBoard(width, height int) *Board {
	b := &Board{}
	b.reset(width, height)
	return b
}

// reset gives a pooled board new dimensions and clears it
func (b *Board) reset(width, height int) {
	b.width = width
	b.height = height

	if len(b.cells) != height {
		b.cells = make([][]uint8, height)
	}
	for i := range b.cells {
		if len(b.cells[i]) != width {
			b.cells[i] = make([]uint8, width)
		} else {
			clear(b.cells[i])
		}
	}
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// Clear sets every cell to Dead
func (b *Board) Clear() {
	for y := range b.height {
		clear(b.cells[y])
	}
}

// String dumps the board one row per line, one digit per cell, each row newline terminated
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for y := range b.height {
		for x := range b.width {
			sb.WriteByte('0' + b.cells[y][x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := newBoard(b.width, b.height)
	for y := range b.height {
		copy(c.cells[y], b.cells[y])
	}
	return c
}

// GetCellVal returns the state of the cell at (x, y), wrapping coordinates around the torus
func (b *Board) GetCellVal(x, y int) uint8 {
	return b.cells[wrap(y, b.height)][wrap(x, b.width)]
}

// GetNeighbourVal returns the number of live cells around (x, y), wrapping at the edges
func (b *Board) GetNeighbourVal(x, y int) int {
	sum := 0
	for _, off := range neighbourOffsets {
		sum += int(b.GetCellVal(x+off[0], y+off[1]))
	}
	return sum
}

// SetCellVal sets the cell at (x, y) to Dead or Alive.
// Unlike GetCellVal the coordinates must lie on the board.
func (b *Board) SetCellVal(x, y int, state uint8) error {
	if !b.inRange(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[SetCellVal] (%d,%d) outside %dx%d board", x, y, b.width, b.height)
	}
	if state != Dead && state != Alive {
		return errors.Wrapf(ErrInvalidState, "[SetCellVal] got %d at (%d,%d)", state, x, y)
	}
	b.cells[y][x] = state
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state
func (b *Board) Toggle(x, y int) (uint8, error) {
	if !b.inRange(x, y) {
		return Dead, errors.Wrapf(ErrOutOfRange, "[Toggle] (%d,%d) outside %dx%d board", x, y, b.width, b.height)
	}
	b.cells[y][x] ^= Alive
	return b.cells[y][x], nil
}

// Evolve returns the next generation of the board
func (b *Board) Evolve() *Board {
	next := newBoard(b.width, b.height)
	for y := range b.height {
		b.evolveRow(next, y)
	}
	return next
}

// EvolveContext calculates the next generation using parallel processing.
//
// Rows are split between workers; every worker reads the receiver, which is
// never written, and fills its own rows of the new board. The new board is
// taken from pool when one is given. If ctx is cancelled the partial board
// is discarded and the error returned.
func (b *Board) EvolveContext(ctx context.Context, pool *BoardPool) (*Board, error) {
	next := pool.Get(b.width, b.height)

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		numWorkers    = max(1, min(runtime.NumCPU(), b.height))
		rowsPerWorker = (b.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				b.evolveRow(next, y)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		BoardToPool(next, pool)
		return nil, errors.Wrap(err, "[EvolveContext] evolution aborted")
	}
	return next, nil
}

// evolveRow fills row y of next from the receiver
func (b *Board) evolveRow(next *Board, y int) {
	for x := range b.width {
		next.cells[y][x] = rules.NextState(b.cells[y][x], b.GetNeighbourVal(x, y))
	}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for y := range b.height {
		for x := range b.width {
			count += int(b.cells[y][x])
		}
	}
	return
}

// Hash returns an MD5 hash of the cell states
func (b *Board) Hash() string {
	h := md5.New()
	for y := range b.height {
		h.Write(b.cells[y])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

func (b *Board) inRange(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// wrap maps any coordinate onto [0, size)
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
