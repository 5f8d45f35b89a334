package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation (B3/S23).

A live cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}

// NextState maps a 0/1 cell state and its neighbour sum to the next 0/1 state
func NextState(state uint8, neighbours int) uint8 {
	if ApplyConwayRules(neighbours, state == 1) {
		return 1
	}
	return 0
}
