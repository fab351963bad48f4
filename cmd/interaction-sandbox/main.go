package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"interactq/internal/config"
	"interactq/internal/game"
	"interactq/internal/logging"
	_ "interactq/internal/scripts"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "assets/config/sandbox.toml", "path to the sandbox TOML config")
	scenePath := flag.String("scene", "", "scene file to run (overrides [sandbox] scene)")
	flag.Parse()

	if err := run(*configPath, *scenePath); err != nil {
		fmt.Fprintf(os.Stderr, "interaction-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scenePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scenePath == "" {
		scenePath = cfg.Sandbox.Scene
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	g := game.New(cfg, log)
	if err := g.LoadScene(scenePath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("run %s: %w", scenePath, err)
	}

	counts := make(map[string]int)
	for _, n := range g.History {
		counts[n.Kind.String()]++
	}
	log.Info("summary", zap.Any("notifications", counts), zap.Int("queued", g.Queue().Len()))
	return nil
}
