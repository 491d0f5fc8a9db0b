package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifesim/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	simulation, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, simulation)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastGenTime := time.Now()

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				simulation.Generation(), time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with the frame loop
		}

		now := time.Now()
		advanced, err := simulation.Tick(now)
		if err != nil {
			fmt.Printf("Tick rejected: %v\n", err)
		}

		if advanced {
			stats.Update(simulation.Generation(), simulation.LivingCells(), now.Sub(lastGenTime))
			lastGenTime = now

			renderer.Clear()
			displayGameStatus(simulation, stats, config)
			renderer.Display(simulation.Grid())

			if config.MaxGenerations > 0 && simulation.Generation() >= config.MaxGenerations {
				fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
				return
			}
		}

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
