package hal

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 960
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int

	// Hz is the simulated display refresh rate that paces Present.
	Hz int

	// Frames raises the close event after this many presents (0 = never).
	Frames uint64

	// Snapshot, when set, is a path the last presented frame is written to as
	// a BMP after the run.
	Snapshot string

	Logger Logger
}

type headlessPresenter struct {
	ctx    context.Context
	ticker *time.Ticker
	limit  uint64
	n      atomic.Uint64
}

func (p *headlessPresenter) present() error {
	select {
	case <-p.ticker.C:
	case <-p.ctx.Done():
	}
	p.n.Add(1)
	return nil
}

func (p *headlessPresenter) closeRequested() bool {
	if p.ctx.Err() != nil {
		return true
	}
	return p.limit > 0 && p.n.Load() >= p.limit
}

// RunHeadless runs the renderer without opening a window. run is called once
// with the host and should block until the surface reports a close.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, run func(h Host) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	p := &headlessPresenter{ctx: ctx, ticker: t, limit: cfg.Frames}
	h, err := newHostHAL(cfg.Logger, cfg.Width, cfg.Height, p)
	if err != nil {
		return err
	}
	if err := run(h); err != nil {
		return err
	}
	if cfg.Snapshot != "" {
		return writeSnapshot(cfg.Snapshot, h.surf.fb)
	}
	return nil
}
