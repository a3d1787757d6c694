package president

import (
	"fmt"

	"github.com/mpsalisbury/president/pkg/cards"
)

// Decision is everything a strategy sees when choosing a move.
type Decision struct {
	Hand          cards.Cards
	Role          Role
	Trick         cards.Cards
	RequiredCount int
	// Options holds every legal choice. An empty entry means pass.
	Options []cards.Cards
}

// Strategy picks one of the options offered to an automated player.
type Strategy interface {
	ChoosePlay(Decision) cards.Cards
	ChooseTrade(Decision) cards.Cards
}

// PlayOptions lists every legal play. Opening a trick allows any non-empty
// same-rank subset; following allows every subset of exactly the required
// size from a beating group, plus passing.
func PlayOptions(p *Player, trick *cards.Trick) []cards.Cards {
	var options []cards.Cards
	groups := p.LegalCardsToPlay(trick).RankGroups()
	if trick.IsEmpty() {
		for _, g := range groups {
			for k := 1; k <= len(g); k++ {
				options = append(options, cards.Combinations(g, k)...)
			}
		}
		return options
	}
	for _, g := range groups {
		options = append(options, cards.Combinations(g, trick.RequiredCount())...)
	}
	return append(options, cards.Cards{})
}

// TradeOptions lists every legal trade offer. Groups are taken whole from the
// role's end of the hand (lowest first for the top roles, highest first for
// the bottom roles) and the group that straddles the count contributes every
// combination of the cards still needed.
func TradeOptions(p *Player) ([]cards.Cards, error) {
	need := p.role.TradeCount()
	if need == 0 {
		return nil, fmt.Errorf("%w: %s (%s) does not trade", ErrNoLegalOption, p.name, p.role)
	}
	groups := p.LegalCardsToTrade().RankGroups()
	if p.role.GivesBest() {
		for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
			groups[i], groups[j] = groups[j], groups[i]
		}
	}
	fixed := cards.Cards{}
	for _, g := range groups {
		remaining := need - len(fixed)
		if len(g) >= remaining {
			var options []cards.Cards
			for _, combo := range cards.Combinations(g, remaining) {
				options = append(options, cards.Combine(fixed, combo).Sorted())
			}
			return options, nil
		}
		fixed = append(fixed, g...)
	}
	return nil, fmt.Errorf("%w: %s holds %d cards but must trade %d", ErrNoLegalOption, p.name, p.HandSize(), need)
}
