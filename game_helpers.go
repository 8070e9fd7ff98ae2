package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-bounded/model"
	"github.com/sheikhrachel/go-gol-bounded/render"
	"github.com/sheikhrachel/go-gol-bounded/rules"
	"github.com/sheikhrachel/go-gol-bounded/utils"
)

const progressEvery = 100

// parseConfig loads the JSON config (defaults if it does not exist) and
// applies explicitly set flags on top. A positional "save" selects export mode.
func parseConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("go-gol-bounded", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "config.json", "path to a JSON configuration file")
		size        = fs.Int("size", 0, "board side length N")
		generations = fs.Int("generations", 0, "number of generations to run, 0 for no limit")
		seed        = fs.Int64("seed", 0, "seed for the random initial board, 0 for time-based")
		boardFile   = fs.String("board", "", "initial board file (.json or 0/1 text)")
		mode        = fs.String("mode", "", "display, text or save")
		output      = fs.String("out", "", "animation path for save mode")
		rule        = fs.String("rule", "", "bounded or conway")
		frameRate   = fs.Duration("frame-rate", 0, "delay between generations")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			config.Size = *size
		case "generations":
			config.Generations = *generations
		case "seed":
			config.Seed = *seed
		case "board":
			config.BoardFile = *boardFile
		case "mode":
			config.Mode = *mode
		case "out":
			config.Output = *output
		case "rule":
			config.Rule = *rule
		case "frame-rate":
			config.FrameRate = *frameRate
		}
	})
	if fs.Arg(0) == utils.ModeSave {
		config.Mode = utils.ModeSave
	}

	return config, config.Validate()
}

// buildBoard loads the configured board file or draws a seeded random board
func buildBoard(config utils.Config) (*model.Board, error) {
	if config.BoardFile != "" {
		return model.LoadBoard(config.BoardFile)
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return model.RandomBoard(config.Size, rand.New(rand.NewSource(seed)), config.Density)
}

// newRenderer picks the renderer for the configured mode
func newRenderer(config utils.Config) (render.Renderer, error) {
	switch config.Mode {
	case utils.ModeSave:
		r, err := render.CreateGIF(config.Output, config.CellPixels, config.FrameRate)
		if err != nil {
			return nil, err
		}
		return r, nil
	case utils.ModeText:
		return render.NewTextRenderer(os.Stdout, true), nil
	default:
		r, err := render.NewTerminalRenderer()
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Simulation, render.Renderer, *utils.Stats, error) {
	rule, err := rules.ParseRule(config.Rule)
	if err != nil {
		return nil, nil, nil, err
	}

	board, err := buildBoard(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build initial board")
	}

	var pool *model.BufferPool
	if config.UseMemoryPool {
		pool = model.NewBufferPool()
	}

	sim, err := model.NewSimulation(board, rule, pool)
	if err != nil {
		return nil, nil, nil, err
	}

	renderer, err := newRenderer(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create renderer")
	}

	return sim, renderer, utils.NewStats(), nil
}

// statusWriter is where status lines go. The interactive screen owns the
// terminal, so nothing is printed in display mode.
func statusWriter(config utils.Config) io.Writer {
	if config.Mode == utils.ModeDisplay {
		return io.Discard
	}
	return os.Stdout
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, sim *model.Simulation) {
	fmt.Fprintf(out, "Rule: %s | Mode: %s | Memory Pool: %v\n",
		sim.Rule(), config.Mode, config.UseMemoryPool)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		sim.Size(), sim.Size(), len(sim.Live()))
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState records stats and the board fingerprint for the current
// generation and returns its status
func updateGameState(
	sim *model.Simulation,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (string, bool) {
	livingCells := len(sim.Live())
	stats.Update(sim.Generation(), livingCells, sim.Size()*sim.Size(), time.Since(lastFrameTime))

	hash := sim.Board().Hash()
	isStagnant := history.IsStagnant(hash)
	history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, config utils.Config, stats *utils.Stats, status string) {
	if config.Mode == utils.ModeSave && stats.TotalGenerations%progressEvery != 0 {
		return
	}
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		stats.TotalGenerations, stats.Population, stats.Density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// runSimulation renders the current generation, then steps, until the
// generation limit is reached or ctx is done. Export mode runs unpaced.
func runSimulation(
	ctx context.Context,
	config utils.Config,
	sim *model.Simulation,
	renderer render.Renderer,
	stats *utils.Stats,
	out io.Writer,
) error {
	var (
		history       = model.NewHistory(0)
		lastFrameTime = time.Now()
		paced         = config.Mode != utils.ModeSave && config.FrameRate > 0
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		frame := render.NewFrame(sim.Generation(), sim.Size(), sim.Live())
		if err := renderer.Render(frame); err != nil {
			return errors.Wrapf(err, "[runSimulation] failed to render generation %d", sim.Generation())
		}

		status, isStagnant := updateGameState(sim, history, lastFrameTime, stats)
		lastFrameTime = frameStart
		displayGameStatus(out, config, stats, status)

		if config.Generations > 0 && sim.Generation() >= config.Generations {
			fmt.Fprintf(out, "\n🏁 Reached maximum generations limit (%d)\n", config.Generations)
			return nil
		}
		if isStagnant && config.StopOnStagnation {
			fmt.Fprintf(out, "\n🛑 Stopping at generation %d: %s\n", sim.Generation(), status)
			return nil
		}

		if err := sim.Step(); err != nil {
			return err
		}

		if paced {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(config.FrameRate):
			}
		}
	}
}
