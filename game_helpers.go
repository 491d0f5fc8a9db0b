package main

import (
	"fmt"
	"time"

	"lifesim/model"
	"lifesim/sim"
	"lifesim/utils"
)

// initializeGame sets up the initial simulation state
func initializeGame(config utils.Config) (
	*sim.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seedRNG := utils.NewRNG(config.Seed)
	initializer := func(row, col int) bool {
		return seedRNG.Bernoulli(config.RandomDensity)
	}

	simulation, err := sim.New(config, initializer)
	if err != nil {
		return nil, nil, nil, err
	}

	// Stamp a few known patterns on top of the random seed.
	grid := simulation.Grid()
	if config.Rows >= 10 && config.Cols >= 10 {
		grid.AddGlider(5, 5)
		grid.AddBlinker(config.Rows/4, config.Cols/4)
	}
	simulation.SyncLivingCells()

	stats := utils.NewStats()
	grid.OnCellChange(func(_, _ int, alive bool) {
		stats.RecordFlip(alive)
	})

	return simulation, &model.TerminalRenderer{}, stats, nil
}

// displayGameInfo shows the initial simulation information
func displayGameInfo(config utils.Config, simulation *sim.Simulation) {
	fmt.Printf("Grid: %dx%d | Interval: %.2fs | Revive probability: %.2f\n",
		config.Rows, config.Cols, config.GenerationIntervalSeconds, config.ReviveProbability)
	fmt.Printf("Initial living cells: %d\n", simulation.LivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current simulation status
func displayGameStatus(simulation *sim.Simulation, stats *utils.Stats, config utils.Config) {
	var (
		generation  = simulation.Generation()
		livingCells = simulation.LivingCells()
		density     = float64(livingCells) / float64(config.Rows*config.Cols) * 100
	)

	status := "Active"
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation,
		stats.Births, stats.Deaths, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
