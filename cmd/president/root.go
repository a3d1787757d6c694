package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mpsalisbury/president/internal/config"
	"github.com/mpsalisbury/president/pkg/game/president"
	"github.com/mpsalisbury/president/pkg/game/president/player"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	strategy   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{strategy: "random"}
	rootCmd := &cobra.Command{
		Use:           "president",
		Short:         "Play Président, the card game of social climbing",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	fs := rootCmd.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", "", "Config file (yaml, toml or json)")
	fs.Int("players", 3, "Number of players, 3 to 6")
	fs.Int("rounds", 1, "Number of rounds to play")
	fs.Int64("seed", 0, "Shuffle seed, 0 seeds from the clock")
	fs.String("log-level", "info", "Log level")
	player.AddStrategyFlag(fs, &opts.strategy, "strategy")

	rootCmd.AddCommand(
		newAutoplayCmd(opts),
		newSoloCmd(opts),
		newDealCmd(opts),
	)
	return rootCmd
}

// session is what every subcommand needs to set up a table.
type session struct {
	cfg    config.Config
	rng    *rand.Rand
	logger *logrus.Logger
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.WithField("seed", seed).Debug("shuffling")
	return &session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// names returns a distinct name for every seat, configured names first.
func (s *session) names() []string {
	names := append([]string{}, s.cfg.Names...)
	if len(names) > s.cfg.Players {
		names = names[:s.cfg.Players]
	}
	for _, i := range s.rng.Perm(len(president.Names)) {
		if len(names) >= s.cfg.Players {
			break
		}
		candidate := president.Names[i]
		if !contains(names, candidate) {
			names = append(names, candidate)
		}
	}
	for len(names) < s.cfg.Players {
		names = append(names, fmt.Sprintf("Player %d", len(names)+1))
	}
	return names
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// players seats humanSeat as a human, or nobody when it is negative.
func (s *session) players(humanSeat int) ([]*president.Player, error) {
	var players []*president.Player
	for i, name := range s.names() {
		if i == humanSeat {
			players = append(players, president.NewPlayer(name))
			continue
		}
		strategy, err := player.NewStrategyFromFlag(s.cfg.Strategy, s.rng)
		if err != nil {
			return nil, err
		}
		players = append(players, president.NewAutomatedPlayer(name, strategy))
	}
	return players, nil
}

func (s *session) newGame(players []*president.Player) (*president.Game, error) {
	return president.NewGame(s.logger, players, president.Options{
		Rounds:   s.cfg.Rounds,
		Rand:     s.rng,
		Reporter: president.NewLogReporter(s.logger),
	})
}

func printStandings(cmd *cobra.Command, g *president.Game) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Final standings after %d rounds:\n", g.Round())
	for i, p := range g.FinishOrder() {
		fmt.Fprintf(out, "%d. %-10s %s (%s)\n", i+1, p.Name(), p.Role(), p.Role().FrenchName())
	}
}
