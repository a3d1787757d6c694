package cards

import (
	"fmt"
	"strings"
)

// A card's suit.
type Suit int8

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

var Suits = []Suit{
	Hearts,
	Spades,
	Diamonds,
	Clubs,
}

func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♡"
	case Spades:
		return "♤"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♧"
	}
	return "?"
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "h", "♡", "♥":
		return Hearts, nil
	case "s", "♤", "♠":
		return Spades, nil
	case "d", "♢", "♦":
		return Diamonds, nil
	case "c", "♧", "♣":
		return Clubs, nil
	}
	return Hearts, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank, lowest to highest: 3-10,J,Q,K,A,2.
type Rank int8

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

var Ranks = []Rank{
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
	Two,
}

// TopRank ends a turn as soon as it is played.
const TopRank = Two

func (r Rank) Valid() bool {
	return r >= Three && r <= Two
}

func (r Rank) String() string {
	switch r {
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case Two:
		return "2"
	}
	return "?"
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	case "2":
		return Two, nil
	}
	return Three, fmt.Errorf("no such rank '%s'", r)
}

// Card is an immutable rank and suit pair. Two cards are the same physical
// card only when both fields match; ordering uses the rank alone.
type Card struct {
	Rank
	Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// ParseCard reads a rank followed by a suit symbol or letter, e.g. "10♡", "qs", "2c".
func ParseCard(c string) (Card, error) {
	c = strings.TrimSpace(c)
	runes := []rune(c)
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := parseRank(string(runes[:len(runes)-1]))
	s, serr := parseSuit(string(runes[len(runes)-1:]))
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

// Compare orders cards by rank only: -1 if a ranks below b, 1 if above, 0 on equal rank.
func Compare(a, b Card) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	}
	return 0
}

func (c1 Card) LessThan(c2 Card) bool {
	return Compare(c1, c2) < 0
}
