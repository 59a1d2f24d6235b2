package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAddr         = "TSP_ADDR"
	EnvLogLevel     = "TSP_LOG_LEVEL"
	EnvACORuns      = "TSP_ACO_RUNS"
	EnvSeed         = "TSP_SEED"
	EnvAllowOrigins = "TSP_ALLOW_ORIGINS"
)

// ApplyEnv loads .env files (default ".env"; missing files are skipped),
// overlays the TSP_* variables from the process environment onto cfg, and
// re-validates.
func ApplyEnv(cfg *Config, dotenv ...string) error {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	if err := apply(cfg, os.LookupEnv); err != nil {
		return err
	}
	return cfg.Validate()
}

// ApplyEnvFile overlays the TSP_* variables found in one .env file onto cfg
// without touching the process environment.
func ApplyEnvFile(cfg *Config, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = apply(cfg, func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}); err != nil {
		return err
	}
	return cfg.Validate()
}

func apply(cfg *Config, lookup func(string) (string, bool)) error {
	var (
		v  string
		ok bool
	)
	if v, ok = lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok = lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok = lookup(EnvACORuns); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvACORuns, v)
		}
		cfg.Solver.ACORuns = n
	}
	if v, ok = lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvSeed, v)
		}
		cfg.Solver.Seed = n
	}
	if v, ok = lookup(EnvAllowOrigins); ok && v != "" {
		cfg.Server.AllowOrigins = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
