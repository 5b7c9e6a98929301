/*
Cube scene: a cube sitting on a disc, lit from above. W/A/S/D move the cube
relative to the camera and the mouse wheel changes its speed.
*/
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/spaghettifunk/cubescene/engine"
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/platform"
	"github.com/spaghettifunk/cubescene/engine/platform/desktop"
	"github.com/spaghettifunk/cubescene/engine/scene"
	"github.com/spaghettifunk/cubescene/testbed"
)

func main() {
	configPath := flag.String("config", "assets/scene.toml", "scene config file (.toml, .yaml)")
	headless := flag.Bool("headless", false, "run without a window")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until quit)")
	dump := flag.Bool("dump", false, "print the resolved config and scene, then exit")
	flag.Parse()

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	cfg, err := testbed.LoadConfig(*configPath, !explicitConfig)
	if err != nil {
		core.LogFatal("failed to load %s: %s", *configPath, err)
	}

	// flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Runtime.Headless = *headless
		case "frames":
			cfg.Runtime.MaxFrames = *frames
		}
	})
	core.SetLogLevel(cfg.LogLevel())

	if *dump {
		s, err := scene.Setup(cfg)
		if err != nil {
			core.LogFatal("failed to set up the scene: %s", err)
		}
		spew.Dump(cfg, s)
		return
	}

	assetsDir := ""
	watchPath := ""
	if cfg.BaseDir != "" {
		assetsDir = cfg.BaseDir
		watchPath = *configPath
	}
	game := testbed.NewSceneGame(cfg, watchPath, assetsDir)

	var p platform.Platform
	if cfg.Runtime.Headless {
		p = platform.NewHeadless()
	} else {
		p = desktop.New()
	}

	e, err := engine.New(game.Game, p)
	if err != nil {
		panic(err)
	}
	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// signal context to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	// run engine
	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
