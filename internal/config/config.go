// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings for a simulation run.
type Config struct {
	// Boards is the number of boards to play.
	Boards int
	// Seed drives every deal of the run.
	Seed uint64
	// AssignContract skips the auction and lets the contract assigner pick
	// a contract from the hands.
	AssignContract bool
	LogLevel       logrus.Level
	// RecordDir, when set, receives one JSON record per board.
	RecordDir string
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Boards:   16,
		Seed:     1,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads a .env file from the working directory if one exists, then
// the environment. See LoadFromEnv.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadFromEnv(), nil
}

// LoadFromEnv reads BRIDGE_* variables. Invalid values are reported on
// stderr and replaced by their defaults.
func LoadFromEnv() Config {
	cfg := Defaults()

	if v := strings.TrimSpace(os.Getenv("BRIDGE_BOARDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Boards = n
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid BRIDGE_BOARDS=%q, using default %d\n", v, cfg.Boards)
		}
	}

	if v := strings.TrimSpace(os.Getenv("BRIDGE_SEED")); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid BRIDGE_SEED=%q, using default %d\n", v, cfg.Seed)
		}
	}

	if v := strings.TrimSpace(os.Getenv("BRIDGE_ASSIGN_CONTRACT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AssignContract = b
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid BRIDGE_ASSIGN_CONTRACT=%q, using default %v\n", v, cfg.AssignContract)
		}
	}

	if v := strings.TrimSpace(os.Getenv("BRIDGE_LOG_LEVEL")); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid BRIDGE_LOG_LEVEL=%q, using default %s\n", v, cfg.LogLevel)
		}
	}

	cfg.RecordDir = strings.TrimSpace(os.Getenv("BRIDGE_RECORD_DIR"))
	return cfg
}
