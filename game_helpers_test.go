package main

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/utils"
)

func loadWithArgs(t *testing.T, args ...string) (utils.Config, error) {
	t.Helper()

	var (
		config utils.Config
		err    error
	)
	app := cli.NewApp()
	app.Flags = appFlags()
	app.Action = func(c *cli.Context) error {
		config, err = loadConfig(c, log.NewNopLogger())
		return nil
	}
	if runErr := app.Run(append([]string{"go-life", "--config", filepath.Join(t.TempDir(), "missing.json")}, args...)); runErr != nil {
		t.Fatal(runErr)
	}
	return config, err
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	config, err := loadWithArgs(t)
	if err != nil {
		t.Fatal(err)
	}
	if config != utils.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", config)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	config, err := loadWithArgs(t,
		"--width", "12", "--height", "7", "--generations", "3",
		"--frame-rate", "20ms", "--density", "0.5", "--seed", "99", "--no-restart")
	if err != nil {
		t.Fatal(err)
	}

	want := utils.DefaultConfig()
	want.Width, want.Height, want.MaxGenerations = 12, 7, 3
	want.FrameRate = 20 * time.Millisecond
	want.RandomDensity = 0.5
	want.Seed = 99
	want.AutoRestart = false
	if config != want {
		t.Errorf("config = %+v, want %+v", config, want)
	}
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	if _, err := loadWithArgs(t, "--width", "0"); err == nil {
		t.Error("expected a validation error for zero width")
	}
}

func TestSeedBoard(t *testing.T) {
	config := utils.DefaultConfig()
	config.RandomDensity = 0
	config.Gliders = 1

	board, err := seedBoard(config, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if board.GetWidth() != config.Width || board.GetHeight() != config.Height {
		t.Errorf("board is %dx%d", board.GetWidth(), board.GetHeight())
	}
	if n := board.CountLivingCells(); n != 5 {
		t.Errorf("living cells = %d, want a single glider", n)
	}

	config.Width = 0
	if _, err = seedBoard(config, rand.New(rand.NewSource(3))); err == nil {
		t.Error("expected an error for a zero width board")
	}
}
