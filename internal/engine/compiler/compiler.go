// Package compiler drives the bundler over every configured build unit,
// either once or in watch mode, and reports progress through the logger.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const logPrefix = "[Webpack Compiler] "

// Compiler owns one bundle compiler per build unit.
type Compiler struct {
	units  []*unit
	logger ports.Logger
	rec    ports.Telemetry

	mu        sync.Mutex
	stopWatch context.CancelFunc
}

// New prepares a compiler for every config. On error the compilers created so far are closed.
func New(
	configs []domain.BuildConfig,
	bundler ports.Bundler,
	logger ports.Logger,
	rec ports.Telemetry,
) (*Compiler, error) {
	c := &Compiler{
		units:  make([]*unit, 0, len(configs)),
		logger: logger,
		rec:    rec,
	}

	for i, cfg := range configs {
		name := unitName(cfg, i)
		bc, err := bundler.NewCompiler(cfg)
		if err != nil {
			_ = c.Close()
			return nil, zerr.With(err, "unit", name)
		}
		c.units = append(c.units, newUnit(name, bc))
	}

	c.logger.Info(fmt.Sprintf("%sinitialized (%s)", logPrefix, c.Names()))
	return c, nil
}

// unitName is the unit's declared name, or its 1-based position prefixed with '#'.
func unitName(cfg domain.BuildConfig, index int) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return fmt.Sprintf("#%d", index+1)
}

// Len returns the number of build units.
func (c *Compiler) Len() int {
	return len(c.units)
}

// Name returns the display name of unit i.
func (c *Compiler) Name(i int) string {
	return c.units[i].name
}

// Names returns the display names of all units, comma separated.
func (c *Compiler) Names() string {
	names := make([]string, len(c.units))
	for i, u := range c.units {
		names[i] = u.name
	}
	return strings.Join(names, ", ")
}

// State returns the current state of unit i.
func (c *Compiler) State(i int) domain.UnitState {
	return c.units[i].currentState()
}

type result struct {
	index int
	stats *domain.Stats
	err   error
}

// RunOnce builds every unit concurrently and returns their stats in config order.
// It returns as soon as one unit fails; the units still running are cancelled and
// their results discarded.
func (c *Compiler) RunOnce(ctx context.Context) ([]*domain.Stats, error) {
	c.logger.Info(fmt.Sprintf("%sbuild started (%s)", logPrefix, c.Names()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan result, len(c.units))
	for i := range c.units {
		go func(i int) {
			stats, err := c.build(ctx, i)
			results <- result{index: i, stats: stats, err: err}
		}(i)
	}

	out := make([]*domain.Stats, len(c.units))
	for range c.units {
		res := <-results
		if res.err != nil {
			return nil, res.err
		}
		out[res.index] = res.stats
	}

	return out, nil
}

func (c *Compiler) build(ctx context.Context, i int) (*domain.Stats, error) {
	u := c.units[i]
	u.begin(time.Now())

	ctx, vertex := c.rec.Record(ctx, "build "+u.name)
	stats, err := u.compiler.Run(ctx)
	u.finish(time.Now(), err == nil && !stats.HasErrors())

	if err != nil && ctx.Err() != nil {
		// Cancelled, either by the caller or because another unit failed first.
		err = zerr.With(err, "unit", u.name)
		vertex.Complete(err)
		return nil, err
	}
	if stats == nil {
		stats = &domain.Stats{}
	}

	if failure := c.reportFailure(u, vertex, stats, err); failure != nil {
		return nil, failure
	}

	c.reportChunks(u, vertex, stats, false)
	c.reportSuccess(u, vertex, stats)
	return stats, nil
}

// Watch starts watch mode on every unit and returns once all of them are watching.
// Builds keep running until ctx is cancelled or Close is called; their failures are
// logged and never returned.
func (c *Compiler) Watch(ctx context.Context) error {
	c.logger.Info(fmt.Sprintf("%swatching (%s)", logPrefix, c.Names()))

	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.stopWatch = cancel
	c.mu.Unlock()

	var g errgroup.Group
	for i := range c.units {
		g.Go(func() error {
			u := c.units[i]
			if err := u.compiler.Watch(ctx, c.watchHooks(ctx, u)); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "unit", u.name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cancel()
		return err
	}
	return nil
}

func (c *Compiler) watchHooks(ctx context.Context, u *unit) ports.WatchHooks {
	var vertex ports.Vertex

	return ports.WatchHooks{
		OnStart: func() {
			verb := "rebuild"
			if u.begin(time.Now()) == 0 {
				verb = "build"
			}
			c.logger.Info(fmt.Sprintf("%s%s started (%s)", logPrefix, verb, u.name))
			_, vertex = c.rec.Record(ctx, verb+" "+u.name)
		},
		OnDone: func(stats *domain.Stats, err error) {
			u.finish(time.Now(), err == nil && !stats.HasErrors())
			if vertex == nil {
				_, vertex = c.rec.Record(ctx, "build "+u.name)
			}
			defer func() { vertex = nil }()
			if stats == nil {
				stats = &domain.Stats{}
			}

			if c.reportFailure(u, vertex, stats, err) != nil {
				return
			}
			c.reportChunks(u, vertex, stats, true)
			c.reportSuccess(u, vertex, stats)
		},
	}
}

// reportFailure logs a failed build and returns its error, or nil when the build succeeded.
func (c *Compiler) reportFailure(u *unit, vertex ports.Vertex, stats *domain.Stats, err error) error {
	if err == nil && !stats.HasErrors() {
		return nil
	}

	c.logger.Warn(fmt.Sprintf("%sbuild failure (%s)", logPrefix, u.name))
	var failure error
	if err != nil {
		failure = zerr.With(err, "unit", u.name)
		c.logger.Error(failure)
	} else {
		summary := stats.Summary()
		failure = zerr.With(zerr.New(summary), "unit", u.name)
		c.logger.Warn(summary)
		vertex.Log(domain.LogLevelError, summary)
	}

	vertex.Complete(failure)
	return failure
}

// reportChunks logs every emitted chunk. In watch mode chunks whose hash did not
// change since the previous build are skipped.
func (c *Compiler) reportChunks(u *unit, vertex ports.Vertex, stats *domain.Stats, dedup bool) {
	for _, chunk := range stats.Chunks {
		if dedup && !u.chunkChanged(chunk) {
			continue
		}
		msg := fmt.Sprintf("%s(%s) compiled: %s", logPrefix, u.name, chunk.Name)
		c.logger.Info(msg)
		vertex.Log(domain.LogLevelInfo, msg)
	}
}

func (c *Compiler) reportSuccess(u *unit, vertex ports.Vertex, stats *domain.Stats) {
	for _, w := range stats.Warnings {
		vertex.Log(domain.LogLevelWarn, w.String())
	}
	c.logger.Info(fmt.Sprintf("%sbuild success (%s:%s) in %dms",
		logPrefix, u.name, stats.Hash, u.buildStats().Elapsed()))
	vertex.Complete(nil)
}

// Close stops watch mode and releases every unit's compiler.
func (c *Compiler) Close() error {
	c.mu.Lock()
	if c.stopWatch != nil {
		c.stopWatch()
		c.stopWatch = nil
	}
	c.mu.Unlock()

	var errs error
	for _, u := range c.units {
		if err := u.compiler.Close(); err != nil {
			errs = errors.Join(errs, zerr.With(err, "unit", u.name))
		}
	}
	return errs
}
