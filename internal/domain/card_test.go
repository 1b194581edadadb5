package domain

import (
	"math/rand"
	"testing"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		card string
		want int
	}{
		{"AH", 1},
		{"2D", 2},
		{"9C", 9},
		{"10S", 10},
		{"JH", 10},
		{"QD", 10},
		{"KC", 10},
	}
	for _, tt := range tests {
		if got := mustCard(t, tt.card).Value(); got != tt.want {
			t.Errorf("%s.Value() = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, s := range []string{"AH", "10S", "JD", "QC", "KH", "7D"} {
		c, err := ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		if c.String() != s {
			t.Errorf("ParseCard(%q).String() = %q", s, c.String())
		}
	}

	for _, s := range []string{"", "H", "XZ", "14H", "0D", "5X"} {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q) succeeded, want error", s)
		}
	}
}

func TestRemoveCards(t *testing.T) {
	hand := cards(t, "5H", "5D", "KC")
	got := RemoveCards(hand, cards(t, "5H"))
	if len(got) != 2 || !ContainsCard(got, mustCard(t, "5D")) || !ContainsCard(got, mustCard(t, "KC")) {
		t.Errorf("RemoveCards = %v", got)
	}
}

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if d.Remaining() != 52 {
		t.Fatalf("deck has %d cards, want 52", d.Remaining())
	}
	drawn, err := d.Draw(52)
	if err != nil {
		t.Fatalf("Draw(52): %v", err)
	}
	seen := make(map[Card]bool, 52)
	for _, c := range drawn {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if _, err := d.DrawOne(); err != ErrEmptyDeck {
		t.Errorf("draw from empty deck: err = %v, want ErrEmptyDeck", err)
	}
}

func TestDeckShuffleDraw(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(1)))
	first, err := d.Draw(6)
	if err != nil {
		t.Fatalf("Draw(6): %v", err)
	}
	if len(first) != 6 || d.Remaining() != 46 {
		t.Fatalf("after Draw(6): drawn=%d remaining=%d", len(first), d.Remaining())
	}
	if _, err := d.Draw(47); err != ErrEmptyDeck {
		t.Errorf("overdraw err = %v, want ErrEmptyDeck", err)
	}
	if d.Remaining() != 46 {
		t.Errorf("failed draw consumed cards: remaining=%d", d.Remaining())
	}
}
