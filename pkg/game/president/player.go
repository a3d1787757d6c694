package president

import (
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/president/pkg/cards"
	"golang.org/x/exp/slices"
)

// Names handed out to players created without one.
var Names = []string{
	"Robert", "Françoise", "Michel", "Isabelle", "Damien", "Fatima",
	"Alphonse", "Brigitte", "Kevin", "Gilles", "Mehdi",
}

// Player is a seat at the table. Only the game mutates its hand.
type Player struct {
	name       string
	hand       cards.Cards
	role       Role
	tradeOffer cards.Cards
	strategy   Strategy
}

// NewPlayer creates a human-controlled player. An empty name picks one from Names.
func NewPlayer(name string) *Player {
	if name == "" {
		name = Names[rand.Intn(len(Names))]
	}
	return &Player{name: name, hand: cards.Cards{}}
}

// NewAutomatedPlayer creates a player whose moves are chosen by strategy.
func NewAutomatedPlayer(name string, strategy Strategy) *Player {
	p := NewPlayer(name)
	p.strategy = strategy
	return p
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) String() string {
	return p.name
}

// Hand returns a copy of the held cards, sorted by rank.
func (p *Player) Hand() cards.Cards {
	return p.hand.Sorted()
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

func (p *Player) Role() Role {
	return p.role
}

// TradeOffer returns a copy of the cards set aside for the partner this trade phase.
func (p *Player) TradeOffer() cards.Cards {
	return p.tradeOffer.Copy()
}

func (p *Player) HasOffered() bool {
	return len(p.tradeOffer) > 0
}

func (p *Player) IsAutomated() bool {
	return p.strategy != nil
}

func (p *Player) addCards(cs cards.Cards) {
	p.hand = append(p.hand, cs...)
	p.hand.Sort()
}

func (p *Player) removeCards(cs cards.Cards) {
	p.hand = p.hand.RemoveAll(cs)
}

// LegalCardsToPlay returns every held card that could take part in a legal play
// on trick. Any held card may open an empty trick.
func (p *Player) LegalCardsToPlay(trick *cards.Trick) cards.Cards {
	if trick.IsEmpty() {
		return p.hand.Sorted()
	}
	top, _ := trick.Highest()
	legal := cards.Cards{}
	for _, g := range p.hand.RankGroups() {
		if g[0].Rank > top.Rank && len(g) >= trick.RequiredCount() {
			legal = append(legal, g...)
		}
	}
	return legal
}

// LegalCardsToTrade returns the cards the player's role may offer. The top two
// roles may offer anything; the bottom two must give from their highest ranks,
// reaching into lower groups only when the highest is too small.
func (p *Player) LegalCardsToTrade() cards.Cards {
	switch p.role {
	case Leader, RunnerUp:
		return p.hand.Sorted()
	case SecondToLast, Last:
		groups := p.hand.RankGroups()
		legal := cards.Cards{}
		for i := len(groups) - 1; i >= 0 && len(legal) < p.role.TradeCount(); i-- {
			legal = append(legal, groups[i]...)
		}
		return legal.Sorted()
	}
	return cards.Cards{}
}

// CheckPlay explains why cs is not a legal play on trick, or returns nil.
func (p *Player) CheckPlay(cs cards.Cards, trick *cards.Trick) error {
	if !p.hand.ContainsAll(cs) {
		return violation("%s does not hold %s", p.name, cs)
	}
	if !cs.SameRank() {
		return violation("cards played together must share a rank, got %s", cs)
	}
	if trick.IsEmpty() {
		return nil
	}
	if len(cs) != trick.RequiredCount() {
		return violation("this turn takes %d cards at a time, got %d", trick.RequiredCount(), len(cs))
	}
	if !p.LegalCardsToPlay(trick).ContainsAll(cs) {
		top, _ := trick.Highest()
		return violation("%s does not beat %s", cs, top)
	}
	return nil
}

func (p *Player) IsLegalPlay(cs cards.Cards, trick *cards.Trick) bool {
	return p.CheckPlay(cs, trick) == nil
}

// CheckTrade explains why cs is not a legal trade offer, or returns nil.
func (p *Player) CheckTrade(cs cards.Cards) error {
	n := p.role.TradeCount()
	if n == 0 {
		return violation("%s (%s) does not trade", p.name, p.role)
	}
	if p.HasOffered() {
		return violation("%s already offered %s", p.name, p.tradeOffer)
	}
	if len(cs) != n {
		return violation("%s must trade %d cards, got %d", p.role, n, len(cs))
	}
	if !p.hand.ContainsAll(cs) {
		return violation("%s does not hold %s", p.name, cs)
	}
	if !p.LegalCardsToTrade().ContainsAll(cs) {
		return violation("%s must give their best cards, not %s", p.role, cs)
	}
	if !p.role.GivesBest() {
		return nil
	}
	// Within the eligible groups, nothing kept may outrank what is given.
	lowestOffered, _ := cs.Lowest()
	kept := p.hand.RemoveAll(cs)
	if best, ok := kept.Highest(); ok && best.Rank > lowestOffered.Rank {
		return violation("%s must give their best cards but keeps %s", p.role, best)
	}
	return nil
}

func (p *Player) IsLegalTrade(cs cards.Cards) bool {
	return p.CheckTrade(cs) == nil
}

// ChoosePlay asks the player's strategy for a move on trick. An empty result is a pass.
func (p *Player) ChoosePlay(trick *cards.Trick) (cards.Cards, error) {
	if !p.IsAutomated() {
		return nil, fmt.Errorf("%w: %s is not automated", ErrInvariantViolation, p.name)
	}
	options := PlayOptions(p, trick)
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %s has nothing to play", ErrNoLegalOption, p.name)
	}
	choice := p.strategy.ChoosePlay(p.decision(trick, options))
	return p.checkChoice(choice, options)
}

// ChooseTrade asks the player's strategy which cards to offer.
func (p *Player) ChooseTrade() (cards.Cards, error) {
	if !p.IsAutomated() {
		return nil, fmt.Errorf("%w: %s is not automated", ErrInvariantViolation, p.name)
	}
	options, err := TradeOptions(p)
	if err != nil {
		return nil, err
	}
	choice := p.strategy.ChooseTrade(p.decision(cards.NewTrick(), options))
	return p.checkChoice(choice, options)
}

func (p *Player) decision(trick *cards.Trick, options []cards.Cards) Decision {
	return Decision{
		Hand:          p.Hand(),
		Role:          p.role,
		Trick:         trick.Cards(),
		RequiredCount: trick.RequiredCount(),
		Options:       options,
	}
}

func (p *Player) checkChoice(choice cards.Cards, options []cards.Cards) (cards.Cards, error) {
	i := slices.IndexFunc(options, func(o cards.Cards) bool { return o.Equals(choice) })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s chose %q, not one of its options", ErrInvariantViolation, p.name, choice)
	}
	return options[i].Copy(), nil
}
