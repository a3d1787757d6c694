package president

import (
	"fmt"

	"github.com/mpsalisbury/president/pkg/cards"
)

// Intent is a move requested on behalf of a player: either a skip or a set of
// cards, played or offered depending on the phase.
type Intent struct {
	PlayerIndex int
	Skip        bool
	Cards       cards.Cards
}

func (in Intent) String() string {
	if in.Skip {
		return fmt.Sprintf("player %d skips", in.PlayerIndex)
	}
	return fmt.Sprintf("player %d: %s", in.PlayerIndex, in.Cards)
}

// Validate checks an intent against the current state without changing it.
// Shape problems wrap ErrMalformedRequest; broken rules wrap ErrRuleViolation.
func (g *Game) Validate(in Intent) error {
	if in.PlayerIndex < 0 || in.PlayerIndex >= len(g.players) {
		return malformed("no player at seat %d", in.PlayerIndex)
	}
	if in.Skip && len(in.Cards) > 0 {
		return malformed("a skip carries no cards")
	}
	if !in.Skip && len(in.Cards) == 0 {
		return malformed("name at least one card or skip")
	}
	for i, c := range in.Cards {
		if !c.Valid() {
			return malformed("invalid card at position %d", i)
		}
		if in.Cards[:i].ContainsCard(c) {
			return malformed("%s named twice", c)
		}
	}

	if g.IsGameEnded() {
		return violation("the game is over")
	}
	if in.PlayerIndex != g.currentPlayerIndex {
		return violation("it is %s's turn, not %s's", g.CurrentPlayer().name, g.players[in.PlayerIndex].name)
	}
	p := g.players[in.PlayerIndex]
	if g.tradePhaseActive {
		if in.Skip {
			return violation("%s must offer %d cards", p.name, p.role.TradeCount())
		}
		return p.CheckTrade(in.Cards)
	}
	if in.Skip {
		if g.currentTrick.IsEmpty() {
			return violation("%s opens this turn and cannot skip", p.name)
		}
		return nil
	}
	return p.CheckPlay(in.Cards, g.currentTrick)
}

// SubmitIntent applies an intent that already passed Validate and advances
// the game to the next player who must act.
func (g *Game) SubmitIntent(in Intent) {
	switch {
	case g.tradePhaseActive:
		g.OfferTrade(in.Cards)
		return
	case in.Skip:
		g.SkipTurn()
	default:
		g.Play(in.Cards)
	}
	g.advance()
}

// Process validates and applies a human move, then lets automated players
// act until a human must move again or the game ends.
func (g *Game) Process(in Intent) error {
	if err := g.Validate(in); err != nil {
		g.log.WithError(err).WithField("intent", in).Debug("rejected")
		return err
	}
	g.SubmitIntent(in)
	return g.RunAutomated()
}

// RunAutomated plays automated players' moves while one of them holds the turn.
func (g *Game) RunAutomated() error {
	for !g.IsGameEnded() {
		p := g.CurrentPlayer()
		if !p.IsAutomated() {
			return nil
		}
		in, err := g.automatedIntent(p)
		if err != nil {
			return fmt.Errorf("automated player %s: %w", p.name, err)
		}
		if err := g.Validate(in); err != nil {
			return fmt.Errorf("%w: automated player %s chose %s: %v", ErrInvariantViolation, p.name, in, err)
		}
		g.SubmitIntent(in)
	}
	return nil
}

func (g *Game) automatedIntent(p *Player) (Intent, error) {
	idx := g.indexOf(p)
	if g.tradePhaseActive {
		cs, err := p.ChooseTrade()
		return Intent{PlayerIndex: idx, Cards: cs}, err
	}
	cs, err := p.ChoosePlay(g.currentTrick)
	return Intent{PlayerIndex: idx, Skip: len(cs) == 0, Cards: cs}, err
}
