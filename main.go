package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/banachtech/vanilla/api"
	"github.com/banachtech/vanilla/config"
	"github.com/banachtech/vanilla/handler"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: reference scenario)")
	serve := flag.Bool("serve", false, "run the HTTP pricing service")
	table := flag.Bool("table", false, "print a comparison table instead of two lines")
	progress := flag.Bool("progress", false, "show a progress bar while simulating")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	if *serve {
		slog.Info("pricer service starting", "addr", cfg.Server.Addr, "rate_limit", cfg.Server.RateLimit, "burst", cfg.Server.Burst)
		if err := api.NewServer(cfg).Start(); err != nil {
			slog.Error("server exited with error", "err", err)
			os.Exit(1)
		}
		return
	}

	var onProgress func(int)
	if *progress {
		bar := handler.ProgressBar(os.Stderr, cfg.Simulation.Samples)
		defer bar.Finish()
		onProgress = func(n int) { _ = bar.Add(n) }
	}

	res, err := handler.Price(cfg.Params(), cfg.Simulation, onProgress)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *table {
		handler.WriteTable(os.Stdout, res)
		return
	}
	if err := handler.WriteLines(os.Stdout, res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
