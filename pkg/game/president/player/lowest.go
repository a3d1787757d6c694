package player

import (
	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game/president"
)

// LowestStrategy sheds its lowest cards first and keeps its high cards for
// later turns.

func NewLowestStrategy() president.Strategy {
	return &lowestStrategy{}
}

type lowestStrategy struct{}

func (lowestStrategy) ChoosePlay(d president.Decision) cards.Cards {
	return chooseLowestPlay(d.Options)
}

// Publicly expose the lowest strategy as a recommendation for humans.
func RecommendPlay(options []cards.Cards) cards.Cards {
	return chooseLowestPlay(options)
}

func chooseLowestPlay(options []cards.Cards) cards.Cards {
	var best cards.Cards
	for _, o := range options {
		// Pass only when nothing else is possible.
		if len(o) == 0 {
			if best == nil {
				best = o
			}
			continue
		}
		if len(best) == 0 || o[0].Rank < best[0].Rank ||
			(o[0].Rank == best[0].Rank && len(o) > len(best)) {
			best = o
		}
	}
	return best
}

// Options arrive ordered from the role's required end, so the first one is
// the cheapest legal offer.
func (lowestStrategy) ChooseTrade(d president.Decision) cards.Cards {
	if len(d.Options) == 0 {
		return nil
	}
	return d.Options[0]
}
