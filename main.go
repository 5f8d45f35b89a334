package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "Conway's Game of Life on a toroidal board"
	app.Flags = appFlags()
	app.Action = func(c *cli.Context) error {
		return run(c, logger)
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "go-life failed", "err", err)
		os.Exit(1)
	}
}

// appFlags lists the command line flags that override the config file
func appFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "config.json", Usage: "JSON configuration file"},
		cli.IntFlag{Name: "width", Usage: "board width in cells"},
		cli.IntFlag{Name: "height", Usage: "board height in cells"},
		cli.IntFlag{Name: "generations", Usage: "stop after this many generations, 0 runs forever"},
		cli.DurationFlag{Name: "frame-rate", Usage: "time between generations"},
		cli.Float64Flag{Name: "density", Usage: "probability of a cell starting alive"},
		cli.Int64Flag{Name: "seed", Usage: "random seed, 0 picks one from the clock"},
		cli.BoolFlag{Name: "no-restart", Usage: "do not restart on extinction or stagnation"},
	}
}
