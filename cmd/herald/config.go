package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config controls the demo run.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Topic is the broker topic broadcast payloads are relayed to.
	Topic string `toml:"topic"`

	// Home and Away name the two sides of the scripted game.
	Home string `toml:"home"`
	Away string `toml:"away"`

	// Plays caps how many scripted plays are broadcast.
	Plays int `toml:"plays"`
}

// defaultConfig returns sensible defaults for a run with no
// configuration at all.
func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Topic:    "scores",
		Home:     "home",
		Away:     "away",
		Plays:    6,
	}
}

// loadConfig builds the configuration in three layers: defaults, then
// HERALD_* environment variables (a .env file is honored when present),
// then the TOML file at path when one was given and exists.
func loadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	cfg.LogLevel = envStr("HERALD_LOG_LEVEL", cfg.LogLevel)
	cfg.Topic = envStr("HERALD_TOPIC", cfg.Topic)
	cfg.Home = envStr("HERALD_HOME", cfg.Home)
	cfg.Away = envStr("HERALD_AWAY", cfg.Away)
	cfg.Plays = envInt("HERALD_PLAYS", cfg.Plays)

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, not an error
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
