package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mpsalisbury/president/pkg/game/president"
	"github.com/mpsalisbury/president/pkg/game/president/player"
	"github.com/spf13/cobra"
)

func newSoloCmd(opts *rootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "solo",
		Short: "Play from the terminal against automated players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if name != "" {
				s.cfg.Names = append([]string{name}, s.cfg.Names...)
			}
			players, err := s.players(0)
			if err != nil {
				return err
			}
			g, err := s.newGame(players)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome %s.\n", players[0].Name())
			term := player.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := playSolo(g, term); err != nil {
				return err
			}
			if g.IsGameEnded() {
				printStandings(cmd, g)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Your player name")
	return cmd
}

func playSolo(g *president.Game, term *player.Terminal) error {
	if err := g.RunAutomated(); err != nil {
		return err
	}
	for !g.IsGameEnded() {
		in, err := term.ChooseIntent(g.State(0), 0)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = g.Process(in)
		switch {
		case errors.Is(err, president.ErrMalformedRequest), errors.Is(err, president.ErrRuleViolation):
			term.Rejected(err)
		case err != nil:
			return err
		}
	}
	return nil
}
