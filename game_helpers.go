package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// run loads the configuration and animates the game until it ends or is interrupted
func run(c *cli.Context, logger log.Logger) error {
	config, err := loadConfig(c, logger)
	if err != nil {
		return err
	}

	rng := config.Rand()
	board, err := seedBoard(config, rng)
	if err != nil {
		return err
	}

	g := game.New(board, config, logger)
	g.SetReseed(func() (*model.Board, error) {
		return seedBoard(config, rng)
	})

	renderer := model.NewTerminalRenderer(os.Stdout)
	g.SetObserver(func(f game.Frame) {
		if err := renderer.Clear(); err != nil {
			level.Debug(logger).Log("msg", "failed to clear terminal", "err", err)
		}
		displayGameStatus(f, config)
		if err := renderer.Display(f.Board); err != nil {
			level.Warn(logger).Log("msg", "failed to render board", "err", err)
		}
	})

	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = g.Start(ctx); err != nil {
		return err
	}
	if err = g.Wait(); err != nil {
		return err
	}

	stats := g.Stats()
	fmt.Printf("\nFinal stats: %d generations in %.1f seconds, %d restarts\n",
		g.Generation(), stats.Runtime().Seconds(), stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	return nil
}

// loadConfig reads the config file, falling back to defaults, then applies flag overrides
func loadConfig(c *cli.Context, logger log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		level.Info(logger).Log("msg", "using default configuration", "path", c.String("config"))
		config = utils.DefaultConfig()
	}

	applyFlags(c, &config)

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// applyFlags overrides config with every flag set on the command line
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("density") {
		config.RandomDensity = c.Float64("density")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.Bool("no-restart") {
		config.AutoRestart = false
	}
}

// seedBoard creates a board with random life and the configured gliders
func seedBoard(config utils.Config, rng *rand.Rand) (*model.Board, error) {
	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[seedBoard] failed to create board")
	}

	board.Randomize(config.RandomDensity, rng)
	for range config.Gliders {
		board.AddGlider(rng.Intn(config.Width), rng.Intn(config.Height))
	}
	return board, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Memory Pool: %v | Auto restart: %v | Frame rate: %v\n",
		config.UseMemoryPool, config.AutoRestart, config.FrameRate)
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		board.GetWidth(), board.GetHeight(), board.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the status line for a generation
func displayGameStatus(f game.Frame, config utils.Config) {
	density := float64(f.LivingCells) / float64(config.Width*config.Height) * 100

	status := "Active"
	if f.Stagnant {
		status = "Stagnant"
	}
	if f.LivingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.Generation, f.LivingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		f.Stats.GenerationsPerSecond, f.Stats.AveragePopulation, f.Stats.Runtime().Seconds(), f.Stats.Restarts)
	fmt.Println()
}
