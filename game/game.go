package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrAlreadyRunning is returned by Start while the animation loop is active
var ErrAlreadyRunning = errors.New("game is already running")

// Frame describes the generation that was just produced.
// Board belongs to the game and may be recycled, so it must not be retained
// after the observer returns; use Board.Clone to keep it.
type Frame struct {
	Board       *model.Board
	Generation  int
	LivingCells int
	Stagnant    bool
	Stats       utils.Stats
}

// Observer is called after every generation, with the game locked.
// The frame's board belongs to the game and must not be retained after the call.
type Observer func(Frame)

// ReseedFunc builds a fresh board when the game restarts; the game takes ownership of it
type ReseedFunc func() (*model.Board, error)

// Game owns the current generation and drives it forward, either one Step
// at a time or on a timer between Start and Stop. Cell toggles from a UI
// may happen concurrently with the timer.
type Game struct {
	mu sync.Mutex

	config utils.Config
	logger log.Logger
	rng    *rand.Rand
	pool   *model.BoardPool

	board         *model.Board
	generation    int
	stagnantCount int
	history       History
	stats         *utils.Stats
	lastStep      time.Time

	observer Observer
	reseed   ReseedFunc

	running bool
	cancel  context.CancelFunc
	eg      *errgroup.Group
}

// New creates a stopped game starting from a copy of board
func New(board *model.Board, config utils.Config, logger log.Logger) *Game {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	g := &Game{
		config:   config,
		logger:   log.With(logger, "component", "game"),
		rng:      config.Rand(),
		board:    board.Clone(),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewBoardPool()
	}
	return g
}

// SetObserver registers the function notified of every new generation
func (g *Game) SetObserver(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observer = o
}

// SetReseed registers the board factory used by automatic restarts
func (g *Game) SetReseed(fn ReseedFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reseed = fn
}

// Step advances the game by one generation
func (g *Game) Step() error {
	return g.step(context.Background())
}

func (g *Game) step(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, err := g.board.EvolveContext(ctx, g.pool)
	if err != nil {
		return errors.Wrap(err, "[Step] failed to evolve board")
	}
	model.BoardToPool(g.board, g.pool)
	g.board = next
	g.generation++

	var (
		livingCells = next.CountLivingCells()
		hash        = next.Hash()
		stagnant    = g.history.IsStagnant(hash)
		now         = time.Now()
	)
	g.history.Record(hash)
	if stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	g.stats.Update(g.generation, livingCells, now.Sub(g.lastStep))
	g.lastStep = now

	if g.observer != nil {
		g.observer(Frame{
			Board:       g.board,
			Generation:  g.generation,
			LivingCells: livingCells,
			Stagnant:    stagnant,
			Stats:       *g.stats,
		})
	}

	return g.checkRestart(livingCells)
}

// checkRestart replaces a dead or stagnant board, or injects life into one that is stagnating
func (g *Game) checkRestart(livingCells int) error {
	shouldRestart, reason := CheckRestartConditions(livingCells, g.stagnantCount, g.config)

	if shouldRestart && g.config.AutoRestart && g.reseed != nil {
		board, err := g.reseed()
		if err != nil {
			return errors.Wrap(err, "[Step] failed to reseed board")
		}
		model.BoardToPool(g.board, g.pool)
		g.board = board
		g.history.Reset()
		g.stagnantCount = 0
		g.stats.Restarts++

		level.Info(g.logger).Log(
			"msg", "restarting",
			"reason", reason,
			"generation", g.generation,
			"living", board.CountLivingCells(),
		)
		return nil
	}

	if shouldInject(g.stagnantCount, g.config) {
		g.board.InjectRandomLife(g.config.InjectionCount, g.rng)
		level.Debug(g.logger).Log("msg", "injected random life", "generation", g.generation, "cells", g.config.InjectionCount)
	}
	return nil
}

// Toggle flips a cell of the current generation and returns its new state
func (g *Game) Toggle(x, y int) (uint8, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := g.board.Toggle(x, y)
	if err != nil {
		return state, errors.Wrap(err, "[Game.Toggle] failed to toggle cell")
	}
	return state, nil
}

// SetCell sets a cell of the current generation
func (g *Game) SetCell(x, y int, state uint8) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Wrap(g.board.SetCellVal(x, y, state), "[Game.SetCell] failed to set cell")
}

// Snapshot returns a copy of the current generation
func (g *Game) Snapshot() *model.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// Generation returns the number of generations computed so far
func (g *Game) Generation() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// Stats returns a copy of the performance stats
func (g *Game) Stats() utils.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.stats
}

// Running reports whether the animation loop is active
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Start runs the animation loop in the background, one generation per
// FrameRate tick, until Stop is called, ctx is done or MaxGenerations is reached.
func (g *Game) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return errors.Wrap(ErrAlreadyRunning, "[Start] cannot start game")
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	g.running, g.cancel, g.eg = true, cancel, eg
	g.lastStep = time.Now()

	eg.Go(func() error {
		return g.loop(ctx)
	})

	level.Info(g.logger).Log("msg", "animation started", "generation", g.generation, "frame_rate", g.config.FrameRate)
	return nil
}

// Stop halts the animation loop and waits for it to exit. Stopping a stopped game is a no-op.
func (g *Game) Stop() error {
	g.mu.Lock()
	cancel, eg := g.cancel, g.eg
	g.mu.Unlock()

	if eg == nil {
		return nil
	}
	cancel()
	err := g.join(cancel, eg)

	level.Info(g.logger).Log("msg", "animation stopped", "generation", g.Generation())
	return err
}

// Wait blocks until the animation loop exits on its own or its context is done
func (g *Game) Wait() error {
	g.mu.Lock()
	cancel, eg := g.cancel, g.eg
	g.mu.Unlock()

	if eg == nil {
		return nil
	}
	return g.join(cancel, eg)
}

func (g *Game) join(cancel context.CancelFunc, eg *errgroup.Group) error {
	err := eg.Wait()
	cancel()

	switch errors.Cause(err) {
	case context.Canceled, context.DeadlineExceeded:
		return nil
	}
	return err
}

func (g *Game) loop(ctx context.Context) error {
	defer g.setRunning(false)

	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.step(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				level.Error(g.logger).Log("msg", "step failed", "err", err)
				return err
			}

			if g.reachedLimit() {
				level.Info(g.logger).Log("msg", "reached maximum generations", "max_generations", g.config.MaxGenerations)
				return nil
			}
		}
	}
}

func (g *Game) reachedLimit() bool {
	return g.config.MaxGenerations > 0 && g.Generation() >= g.config.MaxGenerations
}

func (g *Game) setRunning(running bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = running
}
