package main

import (
	"github.com/spf13/cobra"
)

func newAutoplayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "autoplay",
		Short: "Play a whole game between automated players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			players, err := s.players(-1)
			if err != nil {
				return err
			}
			g, err := s.newGame(players)
			if err != nil {
				return err
			}
			if err := g.RunAutomated(); err != nil {
				return err
			}
			printStandings(cmd, g)
			return nil
		},
	}
}
