package cards

import (
	"errors"
	"fmt"
	"math/rand"
)

const DeckSize = 52

var ErrInvariantViolation = errors.New("invariant violation")

// Deck is the fixed 52-card universe, one card per rank and suit.
type Deck struct {
	Cards Cards
}

// NewDeck returns the deck in canonical rank-major order. Construction is
// deterministic; use Shuffle to randomize.
func NewDeck() (*Deck, error) {
	d := make(Cards, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			d = append(d, Card{r, s})
		}
	}
	if len(d) != DeckSize {
		return nil, fmt.Errorf("%w: deck has %d cards, want %d", ErrInvariantViolation, len(d), DeckSize)
	}
	return &Deck{Cards: d}, nil
}

// Shuffle permutes the deck in place with a uniform Fisher-Yates shuffle drawn from r.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) { d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i] })
}

func (d *Deck) Equals(other *Deck) bool {
	if len(d.Cards) != len(other.Cards) {
		return false
	}
	for i := range d.Cards {
		if d.Cards[i] != other.Cards[i] {
			return false
		}
	}
	return true
}

// Deal splits the deck round-robin into numHands hands, starting with hand 0,
// so earlier hands never hold fewer cards than later ones. Each hand is sorted.
func (d *Deck) Deal(numHands int) []Cards {
	hs := make([]Cards, numHands)
	for i := range hs {
		hs[i] = Cards{}
	}
	for i, c := range d.Cards {
		hi := i % numHands
		hs[hi] = append(hs[hi], c)
	}
	for _, h := range hs {
		h.Sort()
	}
	return hs
}

// Deal shuffles a fresh deck with r and deals it to numHands hands.
func Deal(numHands int, r *rand.Rand) ([]Cards, error) {
	d, err := NewDeck()
	if err != nil {
		return nil, err
	}
	d.Shuffle(r)
	return d.Deal(numHands), nil
}
