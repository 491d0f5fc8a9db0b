package rules

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifesim/model"
	"lifesim/utils"
)

// Engine advances a grid one generation in two strictly separated phases.
// Phase 1 counts live neighbors for every cell from a consistent snapshot;
// phase 2 commits each cell's next state from its own count. Mutating cells
// mid-scan would let later cells see already-updated neighbors, so phase 2
// never starts until phase 1 has finished for the whole grid.
type Engine struct {
	workers int
}

// NewEngine returns an engine sized to the available CPUs.
func NewEngine() *Engine {
	return &Engine{workers: runtime.NumCPU()}
}

// CountNeighbors runs phase 1: writes every cell's LiveNeighborCount from
// the current alive states. The phase only reads Alive fields and writes
// disjoint LiveNeighborCount fields, so rows are counted in parallel.
func (e *Engine) CountNeighbors(g *model.Grid) {
	var (
		eg            errgroup.Group
		rows          = g.Rows()
		cols          = g.Cols()
		cells         = g.Cells()
		rowsPerWorker = (rows + e.workers - 1) / e.workers // Ceiling division
	)

	for i := 0; i < e.workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := 0; col < cols; col++ {
					cells[g.Index(row, col)].LiveNeighborCount = countNeighbors(g, row, col)
				}
			}
			return nil
		})
	}

	// Wait is the cross-phase barrier; the workers never fail.
	_ = eg.Wait()
}

// countNeighbors counts living neighbors of (row, col), restricting the
// scan to valid coordinates. Hard grid edges mean border cells simply have
// fewer candidate neighbors.
func countNeighbors(g *model.Grid, row, col int) int {
	minRow := max(0, row-1)
	maxRow := min(g.Rows()-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.Cols()-1, col+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.Get(r, c) {
				count++
			}
		}
	}
	return count
}

// Commit runs phase 2: decides every cell's next alive state purely from
// its own LiveNeighborCount and current state, then commits it through the
// grid so observers see the flips. Returns the resulting living cell count.
func (e *Engine) Commit(g *model.Grid) (living int) {
	g.ForEachCell(func(row, col int, cell *model.Cell) {
		next := ApplyConwayRules(cell.LiveNeighborCount, cell.Alive)
		g.Set(row, col, next)
		if next {
			living++
		}
	})
	return living
}

// Step advances the grid one full generation and returns the living cell
// count after the transition.
func (e *Engine) Step(g *model.Grid) int {
	e.CountNeighbors(g)
	return e.Commit(g)
}

// Revive gives every dead cell an independent chance p of spontaneously
// coming alive. This is a configurable perturbation outside the canonical
// rule set, applied strictly after Commit so it never influences the
// current generation's neighbor counts. Returns the number of revived
// cells.
func (e *Engine) Revive(g *model.Grid, p float64, rng *utils.RNG) (revived int) {
	if p <= 0 {
		return 0
	}
	g.ForEachCell(func(row, col int, cell *model.Cell) {
		if cell.Alive {
			return
		}
		if rng.Bernoulli(p) {
			g.Set(row, col, true)
			revived++
		}
	})
	return revived
}
