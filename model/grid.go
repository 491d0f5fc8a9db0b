package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"lifesim/utils"
)

var (
	// ErrInvalidDimension is returned when a grid is constructed with
	// non-positive rows or columns.
	ErrInvalidDimension = errors.New("grid dimensions must be positive")

	// ErrOutOfBounds is returned for coordinate access outside the grid
	// extents. Coordinates are never silently clamped.
	ErrOutOfBounds = errors.New("coordinate outside grid bounds")
)

// Initializer decides the initial alive state for the cell at (row, col).
type Initializer func(row, col int) bool

// CellObserver is notified whenever a cell's alive state flips.
type CellObserver func(row, col int, alive bool)

// Grid owns a fixed-size rectangular array of cells. Dimensions are fixed
// for the lifetime of the grid; cells are created once at construction and
// mutated in place, never reallocated.
type Grid struct {
	rows    int
	cols    int
	cells   []Cell // row-major
	history []string

	observers []CellObserver
}

// NewGrid builds a rows×cols grid and seeds each cell through init.
// A nil init leaves every cell dead.
func NewGrid(rows, cols int, init Initializer) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] got %dx%d", rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	if init != nil {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				g.cells[row*cols+col].Alive = init(row, col)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidCoordinate reports whether (row, col) lies inside the grid. This
// predicate is the sole boundary policy: edges are hard, there is no
// wraparound, and border cells have fewer than 8 neighbors by construction.
func (g *Grid) IsValidCoordinate(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Cells exposes the backing cell slice in row-major order so the rule
// engine can read and write cells directly.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// CellAt returns a mutable handle to the cell at (row, col), or
// ErrOutOfBounds when the coordinates are invalid.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.IsValidCoordinate(row, col) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[CellAt] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return &g.cells[g.Index(row, col)], nil
}

// Get returns the alive state of the cell at (row, col), or false for
// coordinates outside the grid.
func (g *Grid) Get(row, col int) bool {
	if !g.IsValidCoordinate(row, col) {
		return false
	}
	return g.cells[g.Index(row, col)].Alive
}

// Set updates the alive state of the cell at (row, col), notifying
// observers when the value flips. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.IsValidCoordinate(row, col) {
		return
	}
	cell := &g.cells[g.Index(row, col)]
	if cell.Alive == alive {
		return
	}
	cell.Alive = alive
	g.notify(row, col, alive)
}

// OnCellChange registers an observer fired on every alive-state flip.
// Observers run synchronously on the goroutine performing the mutation.
func (g *Grid) OnCellChange(obs CellObserver) {
	if obs == nil {
		return
	}
	g.observers = append(g.observers, obs)
}

func (g *Grid) notify(row, col int, alive bool) {
	for _, obs := range g.observers {
		obs(row, col, alive)
	}
}

// ForEachCell visits every cell exactly once in row-major order.
func (g *Grid) ForEachCell(visit func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			visit(row, col, &g.cells[g.Index(row, col)])
		}
	}
}

// CountLivingCells returns the total number of living cells.
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].Alive {
			count++
		}
	}
	return
}

// Clear kills all cells and drops the state history.
func (g *Grid) Clear() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		g.Set(row, col, false)
		cell.LiveNeighborCount = 0
	})
	g.history = nil
}

// Reseed re-runs an initializer over the whole grid in place, notifying
// observers for every cell that flips. Scratch neighbor counts and the
// state history are discarded.
func (g *Grid) Reseed(init Initializer) {
	g.ForEachCell(func(row, col int, cell *Cell) {
		alive := false
		if init != nil {
			alive = init(row, col)
		}
		g.Set(row, col, alive)
		cell.LiveNeighborCount = 0
	})
	g.history = nil
}

// StateHash returns an MD5 hash of the current alive states.
func (g *Grid) StateHash() string {
	h := md5.New()
	for i := range g.cells {
		if g.cells[i].Alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to the history and maintains size.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.StateHash())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a cycle or static state.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.StateHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// InjectRandomLife sets up to count random cells alive to break stagnation.
func (g *Grid) InjectRandomLife(count int, rng *utils.RNG) {
	for i := 0; i < count; i++ {
		g.Set(rng.IntN(g.rows), rng.IntN(g.cols), true)
	}
}

// Randomize fills the grid with living cells at the given density.
func (g *Grid) Randomize(density float64, rng *utils.RNG) {
	g.ForEachCell(func(row, col int, _ *Cell) {
		g.Set(row, col, rng.Bernoulli(density))
	})
}
