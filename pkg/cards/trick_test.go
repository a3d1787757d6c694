package cards

import "testing"

func TestNewTrickIsEmpty(t *testing.T) {
	trick := NewTrick()
	if !trick.IsEmpty() || trick.RequiredCount() != 0 || trick.LastPlayerIndex() != -1 {
		t.Errorf("NewTrick()=%+v, want empty trick", trick)
	}
	if _, ok := trick.Highest(); ok {
		t.Errorf("empty trick should have no highest card")
	}
}

func TestTrickAddCards(t *testing.T) {
	trick := NewTrick()
	trick.AddCards(Cards{Cah}, 2)
	if trick.RequiredCount() != 1 {
		t.Errorf("first play of 1 card: RequiredCount()=%d, want 1", trick.RequiredCount())
	}
	trick.AddCards(Cards{C2h}, 0)
	if trick.RequiredCount() != 1 {
		t.Errorf("second play changed RequiredCount() to %d", trick.RequiredCount())
	}
	if trick.LastPlayerIndex() != 0 {
		t.Errorf("LastPlayerIndex()=%d, want 0", trick.LastPlayerIndex())
	}
	if !trick.Cards().Equals(Cards{Cah, C2h}) {
		t.Errorf("Cards()=%s, want %s", trick.Cards(), Cards{Cah, C2h})
	}
	if hi, _ := trick.Highest(); hi != C2h {
		t.Errorf("Highest()=%s, want %s", hi, C2h)
	}
	if !trick.IsKilled() {
		t.Errorf("a trick holding a 2 should be killed")
	}
}

func TestTrickRequiredCountFromPair(t *testing.T) {
	trick := NewTrick()
	trick.AddCards(Cards{C5h, C5s}, 1)
	trick.AddCards(Cards{C9h, C9c}, 2)
	if trick.RequiredCount() != 2 {
		t.Errorf("RequiredCount()=%d, want 2", trick.RequiredCount())
	}
	if trick.Size()%trick.RequiredCount() != 0 {
		t.Errorf("Size()=%d is not a multiple of %d", trick.Size(), trick.RequiredCount())
	}
	if trick.IsKilled() {
		t.Errorf("trick without a 2 should not be killed")
	}
}

func TestTrickCardsIsACopy(t *testing.T) {
	trick := NewTrick()
	trick.AddCards(Cards{C5h}, 1)
	cs := trick.Cards()
	cs[0] = C2c
	if hi, _ := trick.Highest(); hi != C5h {
		t.Errorf("mutating Cards() changed the trick: %s", trick)
	}
}
