package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"box-viewer/internal/app"
	"box-viewer/internal/config"
	"box-viewer/internal/env"
	"box-viewer/internal/graphics"
	"box-viewer/internal/logger"
	"box-viewer/internal/viewer"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.New(logger.DefaultPath, os.Stderr)

	if _, err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	defaultConfig := config.DefaultPath
	if p := os.Getenv(config.EnvConfig); p != "" {
		defaultConfig = p
	}
	configPath := flag.String("config", defaultConfig, "path to the YAML config file")
	flag.Parse()

	prefs, created, err := config.LoadOrCreate(*configPath)
	switch {
	case err != nil:
		log.Logf("config: %v (using defaults)", err)
	case created:
		log.Logf("config: wrote defaults to %s", *configPath)
	}
	if err := prefs.ApplyEnv(os.Getenv); err != nil {
		log.Logf("config: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := graphics.Acquire()
	if err != nil {
		log.Logf("graphics: %v", err)
		return 1
	}
	defer dev.Release()

	if err := app.Run(ctx, viewer.New(dev, log), prefs, log); err != nil {
		log.Logf("boxview: %v", err)
		return 1
	}
	return 0
}
