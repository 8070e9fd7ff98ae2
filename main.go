package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-bounded/render"
	"github.com/sheikhrachel/go-gol-bounded/utils"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err = run(config); err != nil {
		log.Fatalf("simulation failed: %+v", err)
	}
}

// run drives the simulation until the generation limit, a stagnation stop,
// a user quit or SIGINT/SIGTERM.
func run(config utils.Config) error {
	sim, renderer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}

	out := statusWriter(config)
	displayGameInfo(out, config, sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	runCtx, finish := context.WithCancel(egCtx)
	defer finish()

	eg.Go(func() error {
		defer finish()
		return runSimulation(runCtx, config, sim, renderer, stats, out)
	})
	if poller, ok := renderer.(render.Poller); ok {
		eg.Go(func() error {
			return poller.Poll(runCtx)
		})
	}

	err = eg.Wait()
	if cerr := renderer.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if errors.Is(err, render.ErrQuit) {
		err = nil
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	if config.Mode == utils.ModeSave && err == nil {
		fmt.Printf("Saved animation to %s\n", config.Output)
	}
	return err
}
