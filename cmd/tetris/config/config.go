// Package config loads game settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the settings the game reads at startup.
type Config struct {
	BoardWidth  int
	BoardHeight int
	Preview     int
	Seed        int64
	Randomizer  string
	Debug       bool
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func getenvString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads the configuration from the environment, falling back to the
// standard 10x20 board with a uniform randomizer.
func Load() Config {
	return Config{
		BoardWidth:  getenvInt("TETRIS_WIDTH", 10),
		BoardHeight: getenvInt("TETRIS_HEIGHT", 20),
		Preview:     getenvInt("TETRIS_PREVIEW", 1),
		Seed:        getenvInt64("TETRIS_SEED", 0),
		Randomizer:  getenvString("TETRIS_RANDOMIZER", "uniform"),
		Debug:       getenvBool("TETRIS_DEBUG", false),
	}
}
