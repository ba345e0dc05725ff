package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tpshooter/internal/config"
	"tpshooter/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "assets/config/game.yaml", "game config")
	scenePath := flag.String("scene", "assets/scenes/range.json", "scene file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	g, err := game.New(cfg, *scenePath, logger)
	if err != nil {
		logger.Error("start sandbox", "error", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		logger.Error("sandbox", "error", err)
		os.Exit(1)
	}
}
