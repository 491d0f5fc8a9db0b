package model

import "lifesim/utils"

// AddGlider stamps a glider pattern at the specified position.
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for row, cells := range pattern {
		for col, alive := range cells {
			g.Set(startRow+row, startCol+col, alive)
		}
	}
}

// AddBlinker stamps a horizontal 3-cell blinker oscillator.
func (g *Grid) AddBlinker(startRow, startCol int) {
	g.Set(startRow, startCol, true)
	g.Set(startRow, startCol+1, true)
	g.Set(startRow, startCol+2, true)
}

// AddBlock stamps a 2x2 still-life block.
func (g *Grid) AddBlock(startRow, startCol int) {
	g.Set(startRow, startCol, true)
	g.Set(startRow, startCol+1, true)
	g.Set(startRow+1, startCol, true)
	g.Set(startRow+1, startCol+1, true)
}

// ResetWithInterestingPatterns clears the grid and seeds a mix of known
// patterns plus random life at the configured density.
func (g *Grid) ResetWithInterestingPatterns(config utils.Config, rng *utils.RNG) {
	g.Clear()

	if g.rows >= 10 && g.cols >= 10 {
		g.AddGlider(5, 5)
		if g.rows >= 15 && g.cols >= 20 {
			g.AddGlider(5, g.cols-8)
		}

		g.AddBlinker(g.rows/4, g.cols/4)
		if g.cols >= 30 {
			g.AddBlinker(3*g.rows/4, 3*g.cols/4)
		}
	}

	g.Randomize(config.RandomDensity, rng)
}
