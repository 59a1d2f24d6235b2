// Command tspserver serves the planar tour heuristics over HTTP.
//
// Usage:
//
//	tspserver [-config tsp.toml] [-env .env]
//
// Configuration precedence: defaults < config file < .env < TSP_* variables.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/planartsp/config"
	"github.com/katalvlaran/planartsp/logging"
	"github.com/katalvlaran/planartsp/server"
)

func main() {
	configFile := flag.String("config", "", "Path to a .toml or .yaml configuration file")
	envFile := flag.String("env", ".env", "Path to a dotenv file (skipped when missing)")
	flag.Parse()

	boot := logging.New(os.Stderr, slog.LevelInfo)

	cfg, err := config.Load(*configFile)
	if err != nil {
		boot.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	if err = config.ApplyEnv(&cfg, *envFile); err != nil {
		boot.Error("failed to apply environment", "err", err)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.Log.Level) // validated by config
	log := logging.New(os.Stderr, level)
	if level > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to build server", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("tspserver starting", "addr", cfg.Server.Addr, "aco_runs", cfg.Solver.ACORuns, "seed", cfg.Solver.Seed)
	if err = srv.Run(ctx); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
	log.Info("tspserver stopped")
}
