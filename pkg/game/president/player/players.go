package player

import (
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/president/internal/cli"
	"github.com/mpsalisbury/president/pkg/game/president"
	"github.com/spf13/pflag"
)

var StrategyNames = []string{"random", "lowest"}

// Creates a flag for specifying the automated strategy to use.
func AddStrategyFlag(fs *pflag.FlagSet, target *string, name string) {
	cli.EnumFlag(fs, target, name, StrategyNames, "Strategy for automated players")
}

// Constructs a strategy from a strategy flag value.
func NewStrategyFromFlag(strategy string, r *rand.Rand) (president.Strategy, error) {
	switch strategy {
	case "", "random":
		return NewRandomStrategy(r), nil
	case "lowest":
		return NewLowestStrategy(), nil
	default:
		return nil, fmt.Errorf("invalid strategy %s", strategy)
	}
}
