package cards

// Trick holds the cards played during the current turn. The first play into
// an empty trick fixes how many cards every later play must contain.
type Trick struct {
	cards           Cards
	requiredCount   int
	lastPlayerIndex int
}

func NewTrick() *Trick {
	return &Trick{cards: Cards{}, lastPlayerIndex: -1}
}

func (t *Trick) String() string {
	return t.cards.String()
}

// AddCards appends a play. Legality is checked by the caller beforehand.
func (t *Trick) AddCards(cs Cards, playerIndex int) {
	if len(t.cards) == 0 {
		t.requiredCount = len(cs)
	}
	t.cards = append(t.cards, cs...)
	t.lastPlayerIndex = playerIndex
}

// Cards returns a copy of the played cards in play order.
func (t *Trick) Cards() Cards {
	return t.cards.Copy()
}

func (t *Trick) IsEmpty() bool {
	return len(t.cards) == 0
}

func (t *Trick) Size() int {
	return len(t.cards)
}

// RequiredCount is 0 until the first play.
func (t *Trick) RequiredCount() int {
	return t.requiredCount
}

// LastPlayerIndex is -1 until the first play.
func (t *Trick) LastPlayerIndex() int {
	return t.lastPlayerIndex
}

// Highest returns the highest-ranked card played; false when nothing was played.
func (t *Trick) Highest() (Card, bool) {
	return t.cards.Highest()
}

// IsKilled reports whether the top rank has been played into the trick.
func (t *Trick) IsKilled() bool {
	return t.cards.ContainsRank(TopRank)
}
