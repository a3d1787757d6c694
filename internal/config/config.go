package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings for a table run from the command line.
type Config struct {
	// Players is the number of seats, including the human in solo mode.
	Players  int    `mapstructure:"players"`
	Rounds   int    `mapstructure:"rounds"`
	Strategy string `mapstructure:"strategy"`
	// Seed fixes the shuffle. Zero seeds from the clock.
	Seed     int64    `mapstructure:"seed"`
	LogLevel string   `mapstructure:"log_level"`
	Names    []string `mapstructure:"names"`
}

const EnvPrefix = "PRESIDENT"

var ErrInvalid = errors.New("invalid configuration")

func Defaults() Config {
	return Config{
		Players:  3,
		Rounds:   1,
		Strategy: "random",
		LogLevel: "info",
	}
}

// Load merges, lowest precedence first: defaults, the optional config file at
// path, PRESIDENT_* environment variables, and any flags set in fs.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("players", d.Players)
	v.SetDefault("rounds", d.Rounds)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	if fs != nil {
		for _, key := range []string{"players", "rounds", "strategy", "seed", "log-level"} {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(strings.ReplaceAll(key, "-", "_"), f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Players < 3 || c.Players > 6 {
		return fmt.Errorf("%w: players must be between 3 and 6, got %d", ErrInvalid, c.Players)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalid, c.Rounds)
	}
	if len(c.Names) > c.Players {
		return fmt.Errorf("%w: %d names for %d players", ErrInvalid, len(c.Names), c.Players)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Logger builds a logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
