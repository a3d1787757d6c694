package cards

import "testing"

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"3h", Card{Three, Hearts}},
		{"4s", Card{Four, Spades}},
		{"5d", Card{Five, Diamonds}},
		{"6c", Card{Six, Clubs}},
		{"7♡", Card{Seven, Hearts}},
		{"8♤", Card{Eight, Spades}},
		{"9♢", Card{Nine, Diamonds}},
		{"10♧", Card{Ten, Clubs}},
		{"tc", Card{Ten, Clubs}},
		{"jc", Card{Jack, Clubs}},
		{"qc", Card{Queen, Clubs}},
		{"kc", Card{King, Clubs}},
		{"ac", Card{Ace, Clubs}},
		{"2c", Card{Two, Clubs}},
		{"TS", Card{Ten, Spades}},
		{"jH", Card{Jack, Hearts}},
		{" ad ", Card{Ace, Diamonds}},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	tests := []string{"xc", "7x", "2cc", "22c", "", "5", "1h", "11♡"}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
		}
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	d, err := NewDeck()
	if err != nil {
		t.Fatalf("NewDeck()=error(%s)", err)
	}
	for _, c := range d.Cards {
		got, err := ParseCard(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCard(%s)=%s,%v, want %s", c, got, err, c)
		}
	}
}

func TestCompareIsRankOnly(t *testing.T) {
	for i, ri := range Ranks {
		for j, rj := range Ranks {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			for _, si := range Suits {
				for _, sj := range Suits {
					a, b := Card{ri, si}, Card{rj, sj}
					if got := Compare(a, b); got != want {
						t.Errorf("Compare(%s,%s)=%d, want %d", a, b, got, want)
					}
				}
			}
		}
	}
}

func TestTwoIsTopRank(t *testing.T) {
	if C2c.LessThan(Cah) || !Cah.LessThan(C2h) {
		t.Errorf("2 should outrank A")
	}
	if !C3s.LessThan(C4h) {
		t.Errorf("3 should be the lowest rank")
	}
	if TopRank != Ranks[len(Ranks)-1] {
		t.Errorf("TopRank=%s, want %s", TopRank, Ranks[len(Ranks)-1])
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		c    Card
		want bool
	}{
		{C3h, true},
		{C2c, true},
		{Card{Rank(13), Hearts}, false},
		{Card{Rank(-1), Hearts}, false},
		{Card{Ace, Suit(4)}, false},
	}
	for _, tc := range tests {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("%v.Valid()=%t, want %t", tc.c, got, tc.want)
		}
	}
}
