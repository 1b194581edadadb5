// Package config loads host configuration for the crib engine.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds everything a host process needs to wire the engine.
type Config struct {
	// StatsDBDSN connects the match-history recorder. Empty disables
	// statistics entirely.
	StatsDBDSN string
	// LogLevel is a logrus level string ("debug", "info", ...).
	LogLevel string
	// LogFile mirrors logs into a rotated file when set.
	LogFile string
	// SessionTTLMinutes is how long an idle session survives eviction.
	SessionTTLMinutes int
	// DefaultOpponent is used when a new game names no opponent.
	DefaultOpponent string
	// WinningScore overrides the 121-point target; for testing only.
	WinningScore int
	// Debug exposes the computer's hand in snapshots.
	Debug bool
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		LogLevel:          "info",
		SessionTTLMinutes: 60,
		DefaultOpponent:   "deeppeg",
	}
}

// Load reads the given config file into a Config. A missing file is not
// an error; defaults are returned. The DSN may also come from the
// CRIB_STATS_DSN environment variable, which wins over the file.
func Load(filename string) (*Config, error) {
	out := Defaults()

	v := viper.New()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(filename); os.IsNotExist(statErr) {
			applyEnv(out)
			return out, nil
		}
		return nil, err
	}
	if err := v.Unmarshal(out); err != nil {
		return nil, err
	}
	applyEnv(out)
	return out, nil
}

func applyEnv(c *Config) {
	if dsn := os.Getenv("CRIB_STATS_DSN"); dsn != "" {
		c.StatsDBDSN = dsn
	}
}
