package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game"
	"github.com/mpsalisbury/president/pkg/game/president"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingState(trick cards.Cards, legal cards.Cards) president.GameState {
	required := 0
	if len(trick) > 0 {
		required = 1
	}
	return president.GameState{
		Phase:         game.Playing,
		TotalRounds:   1,
		Players:       []president.PlayerState{{Name: "me", IsCurrent: true}},
		CurrentTrick:  trick,
		RequiredCount: required,
		LegalPlays:    legal,
	}
}

func TestTerminalChooseIntent(t *testing.T) {
	legal := cards.Cards{cards.C4h, cards.C4s, cards.C9d}
	tests := []struct {
		name  string
		input string
		state president.GameState
		want  president.Intent
	}{
		{
			"typed cards",
			"4h 4s\n",
			playingState(nil, legal),
			president.Intent{PlayerIndex: 0, Cards: cards.Cards{cards.C4h, cards.C4s}},
		},
		{
			"retry after a typo",
			"4x\n9d\n",
			playingState(nil, legal),
			president.Intent{PlayerIndex: 0, Cards: cards.Cards{cards.C9d}},
		},
		{
			"pass",
			"pass\n",
			playingState(cards.Cards{cards.C3c}, legal),
			president.Intent{PlayerIndex: 0, Skip: true},
		},
		{
			"accept recommendation",
			"\n",
			playingState(nil, legal),
			president.Intent{PlayerIndex: 0, Cards: cards.Cards{cards.C4h, cards.C4s}},
		},
		{
			"recommended pass",
			"\n",
			playingState(cards.Cards{cards.Ckc}, cards.Cards{}),
			president.Intent{PlayerIndex: 0, Skip: true, Cards: cards.Cards{}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tc.input), &out)
			got, err := term.ChooseIntent(tc.state, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTerminalTradeRecommendation(t *testing.T) {
	gs := president.GameState{
		Phase:      game.Trading,
		Players:    []president.PlayerState{{Name: "me", Role: president.Last, IsCurrent: true}},
		LegalPlays: cards.Cards{cards.Cah, cards.C2s},
	}
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\n"), &out)
	got, err := term.ChooseIntent(gs, 0)
	require.NoError(t, err)
	assert.Equal(t, cards.Cards{cards.Cah, cards.C2s}, got.Cards)
	assert.Contains(t, out.String(), "Cards to trade")
}

func TestTerminalEOF(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)
	_, err := term.ChooseIntent(playingState(nil, cards.Cards{cards.C3h}), 0)
	assert.ErrorIs(t, err, io.EOF)
}
