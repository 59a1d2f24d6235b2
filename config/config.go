// Package config loads the tspserver configuration.
//
// Sources, later ones winning:
//  1. Defaults().
//  2. A TOML (.toml) or YAML (.yaml, .yml) file; unknown keys are rejected.
//  3. A .env file in the working directory, loaded into the process
//     environment without overriding variables already set.
//  4. TSP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planartsp/logging"
	"github.com/katalvlaran/planartsp/tsp"
)

// Sentinel errors.
var (
	ErrUnsupportedFormat = errors.New("config: unsupported file extension")
	ErrUnknownKey        = errors.New("config: unknown key")
	ErrEmptyAddr         = errors.New("config: server.addr is empty")
	ErrInvalidTimeout    = errors.New("config: negative timeout")
	ErrInvalidLevel      = errors.New("config: invalid log level")
	ErrInvalidSolver     = errors.New("config: invalid solver settings")
	ErrInvalidEnv        = errors.New("config: invalid environment value")
)

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Solver SolverConfig `toml:"solver" yaml:"solver"`
}

type ServerConfig struct {
	Addr            string        `toml:"addr" yaml:"addr"`
	AllowOrigins    []string      `toml:"allow_origins" yaml:"allow_origins"`
	ReadTimeout     time.Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// SolverConfig mirrors tsp.Options.
type SolverConfig struct {
	ACORuns       int   `toml:"aco_runs" yaml:"aco_runs"`
	Seed          int64 `toml:"seed" yaml:"seed"`
	ACOIterations int   `toml:"aco_iterations" yaml:"aco_iterations"`
	ACOMaxAnts    int   `toml:"aco_max_ants" yaml:"aco_max_ants"`
	Workers       int   `toml:"workers" yaml:"workers"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8000",
			AllowOrigins:    []string{"*"},
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:    LogConfig{Level: "info"},
		Solver: SolverConfig{ACORuns: tsp.DefaultACORuns},
	}
}

// Options converts the solver section to tsp.Options.
func (s SolverConfig) Options() tsp.Options {
	return tsp.Options{
		ACORuns:       s.ACORuns,
		Seed:          s.Seed,
		ACOIterations: s.ACOIterations,
		ACOMaxAnts:    s.ACOMaxAnts,
		Workers:       s.Workers,
	}
}

// Load reads path over Defaults() and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	var cfg = Defaults()
	if path == "" {
		return cfg, cfg.Validate()
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(path, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %v in %s", ErrUnknownKey, undecoded, path)
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	defer f.Close()

	var dec = yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %v", ErrUnknownKey, err)
		}
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}

// Validate checks every section and returns the first problem.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrEmptyAddr
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return ErrInvalidTimeout
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	var s = c.Solver
	if s.ACORuns < 1 || s.ACOIterations < 0 || s.ACOMaxAnts < 0 || s.Workers < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidSolver, s)
	}
	return nil
}
