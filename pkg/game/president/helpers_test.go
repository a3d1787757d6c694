package president

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s ...string) cards.Cards {
	t.Helper()
	cs, err := cards.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func playerWithHand(name string, role Role, hand cards.Cards) *Player {
	p := NewPlayer(name)
	p.role = role
	p.hand = hand.Sorted()
	return p
}

func trickOf(plays ...cards.Cards) *cards.Trick {
	trick := cards.NewTrick()
	for i, cs := range plays {
		trick.AddCards(cs, i)
	}
	return trick
}

// newGameWithHands starts a game of human players and replaces the dealt
// hands. Seat 0 holds the turn.
func newGameWithHands(t *testing.T, rounds int, hands ...cards.Cards) *Game {
	t.Helper()
	players := make([]*Player, len(hands))
	for i := range hands {
		players[i] = NewPlayer(fmt.Sprintf("p%d", i))
	}
	logger, _ := test.NewNullLogger()
	g, err := NewGame(logger, players, Options{Rounds: rounds, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	for i, h := range hands {
		players[i].hand = h.Sorted()
	}
	g.currentPlayerIndex = 0
	g.roundOpenerIndex = 0
	return g
}

func play(seat int, cs cards.Cards) Intent {
	return Intent{PlayerIndex: seat, Cards: cs}
}

func skip(seat int) Intent {
	return Intent{PlayerIndex: seat, Skip: true}
}

func totalCards(g *Game) int {
	total := 0
	for _, p := range g.players {
		total += p.HandSize() + len(p.tradeOffer)
	}
	return total
}
