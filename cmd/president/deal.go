package main

import (
	"fmt"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/spf13/cobra"
)

func newDealCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deal",
		Short: "Shuffle and deal one set of hands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			hands, err := cards.Deal(s.cfg.Players, s.rng)
			if err != nil {
				return err
			}
			for i, name := range s.names() {
				h := hands[i]
				marker := ""
				if h.ContainsCard(cards.C3h) {
					marker = "  (opens)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %2d: %s%s\n", name, len(h), h.HandString(), marker)
			}
			return nil
		},
	}
}
