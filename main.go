package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wirecube/app"
	"wirecube/hal"
	"wirecube/internal/buildinfo"
)

func main() {
	var (
		hcfg    hal.HeadlessConfig
		wcfg    hal.WindowConfig
		cfg     = app.DefaultConfig()
		version bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Simulated refresh rate in headless mode.")
	flag.Uint64Var(&hcfg.Frames, "frames", 0, "Close after N frames in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Write the last headless frame to this BMP file.")
	flag.IntVar(&wcfg.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&wcfg.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&wcfg.Scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Overlay FPS/UPS and the tick count.")
	flag.IntVar(&cfg.Loop.TickRate, "tps", cfg.Loop.TickRate, "Simulation ticks per second.")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := hal.NewLogger(os.Stdout)
	run := func(h hal.Host) error {
		a, err := app.New(h, cfg)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	}

	var err error
	if hcfg.Enabled {
		hcfg.Width, hcfg.Height = wcfg.Width, wcfg.Height
		hcfg.Logger = logger
		err = hal.RunHeadless(ctx, hcfg, run)
	} else {
		wcfg.Title = "3D Engine"
		wcfg.Logger = logger
		err = hal.RunWindow(wcfg, run)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
