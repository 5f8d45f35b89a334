package model

import "math/rand"

// gliderPattern travels one cell south-east every four generations
var gliderPattern = [3][3]uint8{
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
}

// AddGlider stamps a glider with its top-left corner at (startX, startY), wrapping at the edges
func (b *Board) AddGlider(startX, startY int) {
	for y, row := range gliderPattern {
		for x, cell := range row {
			b.cells[wrap(startY+y, b.height)][wrap(startX+x, b.width)] = cell
		}
	}
}

// Randomize makes each cell alive with probability density
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for y := range b.height {
		for x := range b.width {
			if rng.Float64() < density {
				b.cells[y][x] = Alive
			} else {
				b.cells[y][x] = Dead
			}
		}
	}
}

// InjectRandomLife brings count random cells to life
func (b *Board) InjectRandomLife(count int, rng *rand.Rand) {
	for range count {
		b.cells[rng.Intn(b.height)][rng.Intn(b.width)] = Alive
	}
}
