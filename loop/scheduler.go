package loop

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"wirecube/wire3d"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTickRate       = 200
	DefaultReportInterval = time.Second
)

var ErrNoSurface = errors.New("loop: nil surface")

// Surface is the part of the display the render loop drives itself. Drawing
// happens inside Hooks.Render.
type Surface interface {
	PollClose() bool
	Clear(c wire3d.Color)
	Present() error
}

// Phase is the lifecycle of a Run.
type Phase int32

const (
	Idle Phase = iota
	Running
	Closing
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// Report is one rate sample: the frames presented and updates run since the
// previous report.
type Report struct {
	Frames   uint64
	Updates  uint64
	Interval time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("FPS : %d | UPS : %d", r.Frames, r.Updates)
}

// Hooks are the callbacks a Run drives. Render and Report may be nil.
type Hooks struct {
	// Render draws one frame. theta is the seconds elapsed since the scheduler
	// was created, independent of how many ticks have run.
	Render func(theta wire3d.Scalar)

	// Update runs once per logical tick on the simulation goroutine.
	Update func()

	// Report is called from the simulation goroutine after each report interval.
	Report func(Report)
}

type Config struct {
	TickRate       int
	ReportInterval time.Duration
	ClearColor     wire3d.Color
	Now            func() time.Time
}

func DefaultConfig() Config {
	return Config{
		TickRate:       DefaultTickRate,
		ReportInterval: DefaultReportInterval,
		ClearColor:     wire3d.Black,
		Now:            time.Now,
	}
}

func (c Config) withDefaults() Config {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.ReportInterval <= 0 {
		c.ReportInterval = DefaultReportInterval
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// TickPeriod is the length of one logical tick.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.withDefaults().TickRate)
}

// Scheduler owns the lifecycle flag and the two rate counters. All of them are
// touched from both goroutines and are atomic.
type Scheduler struct {
	cfg    Config
	origin time.Time

	open    atomic.Bool
	closed  atomic.Bool
	phase   atomic.Int32
	frames  atomic.Uint64
	updates atomic.Uint64
	last    atomic.Pointer[Report]
}

// New creates a scheduler and captures the clock origin.
func New(cfg Config) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{cfg: cfg, origin: cfg.Now()}
}

func (s *Scheduler) Phase() Phase { return Phase(s.phase.Load()) }
func (s *Scheduler) Open() bool   { return s.open.Load() }

// Theta is the seconds elapsed since the clock origin.
func (s *Scheduler) Theta() wire3d.Scalar {
	return wire3d.Scalar(s.cfg.Now().Sub(s.origin).Seconds())
}

// Last returns the most recent report, or false before the first one.
func (s *Scheduler) Last() (Report, bool) {
	r := s.last.Load()
	if r == nil {
		return Report{}, false
	}
	return *r, true
}

// Close asks both loops to stop. Safe to call from any goroutine; a Close
// before Run makes Run return without rendering.
func (s *Scheduler) Close() {
	s.closed.Store(true)
	if s.open.CompareAndSwap(true, false) {
		s.phase.Store(int32(Closing))
	}
}

// Run drives the render loop on the calling goroutine and the simulation loop
// on a second one until the surface reports a close event, ctx is cancelled, or
// Present fails. It returns after both loops have stopped.
//
// A close event or a cancelled ctx is a clean shutdown and returns nil.
func (s *Scheduler) Run(ctx context.Context, surf Surface, h Hooks) (err error) {
	if surf == nil {
		return ErrNoSurface
	}
	if !s.phase.CompareAndSwap(int32(Idle), int32(Running)) {
		return fmt.Errorf("loop: run while %s", s.Phase())
	}
	s.open.Store(true)
	if s.closed.Load() {
		s.open.Store(false)
		s.phase.Store(int32(Terminated))
		return nil
	}

	var g errgroup.Group
	g.Go(func() error {
		s.simulate(h)
		return nil
	})

	// Also runs while a panic from a hook unwinds, so the simulation goroutine
	// is joined before the panic reaches the caller.
	defer func() {
		s.Close()
		if werr := g.Wait(); err == nil {
			err = werr
		}
		s.phase.Store(int32(Terminated))
	}()
	return s.render(ctx, surf, h)
}

func (s *Scheduler) render(ctx context.Context, surf Surface, h Hooks) error {
	for s.open.Load() {
		if surf.PollClose() || ctx.Err() != nil {
			return nil
		}
		surf.Clear(s.cfg.ClearColor)
		if h.Render != nil {
			h.Render(s.Theta())
		}
		if err := surf.Present(); err != nil {
			return fmt.Errorf("loop: present: %w", err)
		}
		s.frames.Add(1)
	}
	return nil
}

// simulate polls the clock without sleeping until the scheduler closes.
func (s *Scheduler) simulate(h Hooks) {
	st := newSimState(s.cfg, s.cfg.Now())
	for s.open.Load() {
		s.step(st, s.cfg.Now(), h)
		runtime.Gosched()
	}
}

type simState struct {
	acc        Accumulator
	prev       time.Time
	lastReport time.Time
	interval   time.Duration
}

func newSimState(cfg Config, now time.Time) *simState {
	return &simState{
		acc:        Accumulator{Period: cfg.TickPeriod()},
		prev:       now,
		lastReport: now,
		interval:   cfg.ReportInterval,
	}
}

// step is one iteration of the simulation loop at time now.
func (s *Scheduler) step(st *simState, now time.Time, h Hooks) {
	for n := st.acc.Advance(now.Sub(st.prev)); n > 0; n-- {
		if h.Update != nil {
			h.Update()
		}
		s.updates.Add(1)
	}
	st.prev = now

	if since := now.Sub(st.lastReport); since > st.interval {
		r := Report{
			Frames:   s.frames.Swap(0),
			Updates:  s.updates.Swap(0),
			Interval: since,
		}
		st.lastReport = now
		s.last.Store(&r)
		if h.Report != nil {
			h.Report(r)
		}
	}
}
