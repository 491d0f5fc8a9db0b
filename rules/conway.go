package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine
the next state of a cell.

Precedence matters: exactly 3 neighbors always yields a live cell (birth
for dead cells, survival for live ones); fewer than 2 or more than 3
always yields a dead cell; exactly 2 neighbors leaves the current state
unchanged — a dead cell with 2 neighbors stays dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors == 3:
		return true
	case neighbors < 2 || neighbors > 3:
		return false
	default:
		return alive
	}
}
