package player

import (
	"math/rand"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game/president"
)

// Picks uniformly among the legal options.

func NewRandomStrategy(r *rand.Rand) president.Strategy {
	return &randomStrategy{rng: r}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s randomStrategy) ChoosePlay(d president.Decision) cards.Cards {
	return s.pick(d.Options)
}

func (s randomStrategy) ChooseTrade(d president.Decision) cards.Cards {
	return s.pick(d.Options)
}

func (s randomStrategy) pick(options []cards.Cards) cards.Cards {
	if len(options) == 0 {
		return nil
	}
	return options[s.rng.Intn(len(options))]
}
