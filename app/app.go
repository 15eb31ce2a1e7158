package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"wirecube/hal"
	"wirecube/internal/buildinfo"
	"wirecube/loop"
	"wirecube/wire3d"
)

type Config struct {
	LineColor wire3d.Color

	// HUD overlays the last rate report and the tick count on every frame.
	HUD bool

	Loop loop.Config
}

func DefaultConfig() Config {
	return Config{
		LineColor: wire3d.White,
		Loop:      loop.DefaultConfig(),
	}
}

// World is the simulation state. It is advanced once per logical tick on the
// simulation goroutine and read by the renderer.
type World struct {
	ticks atomic.Uint64
}

func (w *World) Update()       { w.ticks.Add(1) }
func (w *World) Ticks() uint64 { return w.ticks.Load() }

// App renders the rotating cube onto a host surface while a World ticks at a
// fixed rate.
type App struct {
	cfg   Config
	host  hal.Host
	log   hal.Logger
	scene *wire3d.Scene
	sched *loop.Scheduler
	world *World
	hud   *hud

	// Written and read only by the render goroutine.
	stats wire3d.FrameStats
}

// New builds the scene for the host surface. Nothing runs until Run.
func New(h hal.Host, cfg Config) (*App, error) {
	if h == nil || h.Surface() == nil {
		return nil, errors.New("app: host has no surface")
	}
	fb := h.Surface().Framebuffer()
	scene, err := wire3d.NewScene(fb.Width(), fb.Height())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	log := h.Logger()
	if log == nil {
		log = hal.Discard
	}

	a := &App{
		cfg:   cfg,
		host:  h,
		log:   log,
		scene: scene,
		sched: loop.New(cfg.Loop),
		world: &World{},
	}
	if cfg.HUD {
		a.hud = newHUD(fb)
	}
	return a, nil
}

func (a *App) Scene() *wire3d.Scene       { return a.scene }
func (a *App) World() *World              { return a.world }
func (a *App) Scheduler() *loop.Scheduler { return a.sched }

// Run blocks until the surface closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) (err error) {
	a.log.WriteLineString(fmt.Sprintf("wirecube %s: %dx%d, %d triangles",
		buildinfo.Short(), a.scene.Width, a.scene.Height, len(a.scene.Mesh.Tris)))
	defer a.recoverPanic(&err)

	err = a.sched.Run(ctx, a.host.Surface(), loop.Hooks{
		Render: a.renderFrame,
		Update: a.world.Update,
		Report: a.report,
	})
	a.log.WriteLineString(fmt.Sprintf("wirecube: %s after %d ticks", a.sched.Phase(), a.world.Ticks()))
	return err
}

func (a *App) renderFrame(theta wire3d.Scalar) {
	a.stats = a.scene.Frame(theta, a.host.Surface(), a.cfg.LineColor)
	if a.hud != nil {
		r, _ := a.sched.Last()
		a.hud.draw(r, a.world.Ticks(), a.stats)
	}
}

func (a *App) report(r loop.Report) {
	a.log.WriteLineString(r.String())
}
