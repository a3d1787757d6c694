package cards

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cards is an ordered collection: a hand, the contents of a trick, a trade offer.
type Cards []Card

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Equals reports whether both collections hold the same physical cards, in any order.
func (cs Cards) Equals(other Cards) bool {
	if len(cs) != len(other) {
		return false
	}
	counts := make(map[Card]int, len(cs))
	for _, c := range cs {
		counts[c]++
	}
	for _, c := range other {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

func (cs Cards) Contains(match func(Card) bool) bool {
	return slices.IndexFunc(cs, match) >= 0
}

// ContainsCard requires both rank and suit to match. Holding another suit of
// the same rank does not count.
func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

func (cs Cards) ContainsRank(r Rank) bool {
	return cs.Contains(func(c Card) bool { return c.Rank == r })
}

// ContainsAll reports whether every card of other is held, counting duplicates.
func (cs Cards) ContainsAll(other Cards) bool {
	remaining := cs.Copy()
	for _, c := range other {
		i := slices.Index(remaining, c)
		if i < 0 {
			return false
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	return true
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

func (cs Cards) CountRank(r Rank) int {
	return cs.Count(func(c Card) bool { return c.Rank == r })
}

// Remove returns a copy of cs without the first occurrence of c.
func (cs Cards) Remove(c Card) Cards {
	out := cs.Copy()
	if i := slices.Index(out, c); i >= 0 {
		return slices.Delete(out, i, i+1)
	}
	return out
}

// RemoveAll returns a copy of cs without one occurrence of each card of other.
func (cs Cards) RemoveAll(other Cards) Cards {
	out := cs.Copy()
	for _, c := range other {
		if i := slices.Index(out, c); i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
	}
	return out
}

// Sort orders the cards by rank. Cards of equal rank keep their relative order.
func (cs Cards) Sort() {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

func (cs Cards) Sorted() Cards {
	sorted := cs.Copy()
	sorted.Sort()
	return sorted
}

// Returns a card that is better than all other cards according to the better func (is c1 better than c2).
// The bool is false for an empty collection.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) (Card, bool) {
	if len(cs) == 0 {
		return Card{}, false
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best, true
}
func (cs Cards) Lowest() (Card, bool) {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Rank < c2.Rank })
}
func (cs Cards) Highest() (Card, bool) {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Rank > c2.Rank })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	filtered := Cards{}
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterRank(r Rank) Cards {
	return cs.Filter(func(c Card) bool { return c.Rank == r })
}

// SameRank reports whether the collection is non-empty and every card shares one rank.
func (cs Cards) SameRank() bool {
	if len(cs) == 0 {
		return false
	}
	r := cs[0].Rank
	return !cs.Contains(func(c Card) bool { return c.Rank != r })
}

// GroupByRank maps each rank present to its cards, in collection order.
func (cs Cards) GroupByRank() map[Rank]Cards {
	cbr := make(map[Rank]Cards)
	for _, c := range cs {
		cbr[c.Rank] = append(cbr[c.Rank], c)
	}
	return cbr
}

// RankGroups returns the rank groups ordered from lowest rank to highest.
func (cs Cards) RankGroups() []Cards {
	cbr := cs.GroupByRank()
	ranks := maps.Keys(cbr)
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	groups := make([]Cards, 0, len(ranks))
	for _, r := range ranks {
		groups = append(groups, cbr[r])
	}
	return groups
}

func Combine(cardss ...Cards) Cards {
	cs := Cards{}
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

// HandString renders the cards sorted by rank with a gap between rank groups.
func (cs Cards) HandString() string {
	groupStrings := []string{}
	for _, g := range cs.RankGroups() {
		groupStrings = append(groupStrings, g.String())
	}
	return strings.Join(groupStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Combinations returns every k-card subset of cs, each in collection order.
func Combinations(cs Cards, k int) []Cards {
	if k <= 0 || k > len(cs) {
		return nil
	}
	var out []Cards
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make(Cards, k)
		for i, j := range idx {
			combo[i] = cs[j]
		}
		out = append(out, combo)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == len(cs)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
