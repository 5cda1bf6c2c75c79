// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/YindSoft/nativeshell"
	"github.com/YindSoft/nativeshell/config"
	"github.com/YindSoft/nativeshell/ebitenhost"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "nativeshell.toml", "path to a TOML or YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	out := os.Stderr
	if cfg.LogFile != "" {
		logFile, err := os.Create(cfg.LogFile)
		if err == nil {
			out = logFile
			defer logFile.Close()
		}
	}
	level := new(slog.LevelVar)
	level.Set(cfg.Level())
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	nativeshell.SetLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err = config.Watch(ctx, *configPath,
		func(c *config.Config) {
			level.Set(c.Level())
			logger.Info("log level reloaded", "level", c.Level())
		},
		func(err error) { logger.Warn("config watch", "error", err) })
	if err != nil {
		logger.Warn("config reload disabled", "error", err)
	}

	engine, err := nativeshell.NewNativeEngine(&nativeshell.Options{
		BaseDir:     cfg.LibraryDir,
		LibraryName: cfg.LibraryName,
	})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	logger.Info("engine loaded", "path", engine.Path())

	host := ebitenhost.New(engine, &ebitenhost.Options{
		MaxFrameRate: cfg.MaxFrameRate,
		PixelScale:   cfg.PixelScale,
	})
	defer host.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := host.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
