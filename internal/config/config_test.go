package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "president.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players: 5\nrounds: 3\nstrategy: lowest\nnames: [Robert, Isabelle]\n"), 0o600))

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Players)
	assert.Equal(t, 3, c.Rounds)
	assert.Equal(t, "lowest", c.Strategy)
	assert.Equal(t, []string{"Robert", "Isabelle"}, c.Names)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("PRESIDENT_ROUNDS", "4")
	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Rounds)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "president.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players: 5\n"), 0o600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("players", 3, "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--players=4", "--log-level=debug"}))

	c, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Players)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, logrus.DebugLevel, c.Logger().GetLevel())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"too few players", func(c *Config) { c.Players = 2 }},
		{"too many players", func(c *Config) { c.Players = 7 }},
		{"no rounds", func(c *Config) { c.Rounds = 0 }},
		{"too many names", func(c *Config) { c.Names = []string{"a", "b", "c", "d"} }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Defaults()
			tc.modify(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Defaults().Validate())
}
