package domain

import (
	"testing"
)

func TestPeggingFifteen(t *testing.T) {
	// Whoever completes 15 scores 2, regardless of who played the 5.
	p := NewPegging()
	if pts, err := p.PlayCard("a", mustCard(t, "5H")); err != nil || pts != 0 {
		t.Fatalf("first play: pts=%d err=%v", pts, err)
	}
	pts, err := p.PlayCard("b", mustCard(t, "10D"))
	if err != nil {
		t.Fatalf("second play: %v", err)
	}
	if pts != 2 {
		t.Errorf("completing 15 scored %d, want 2", pts)
	}
	if p.Value() != 15 {
		t.Errorf("running value = %d, want 15", p.Value())
	}
}

func TestPeggingPair(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "10H"))
	pts, err := p.PlayCard("b", mustCard(t, "10D"))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if pts != 2 {
		t.Errorf("pair scored %d, want 2", pts)
	}
}

func TestPeggingTripleAndQuad(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "3H"))
	p.PlayCard("b", mustCard(t, "3D"))
	if pts, _ := p.PlayCard("a", mustCard(t, "3C")); pts != 6 {
		t.Errorf("triple scored %d, want 6", pts)
	}
	if pts, _ := p.PlayCard("b", mustCard(t, "3S")); pts != 12 {
		t.Errorf("quad scored %d, want 12", pts)
	}
}

func TestPeggingTrailingRun(t *testing.T) {
	tests := []struct {
		name  string
		plays []string
		want  int // points for the final play only
	}{
		{"run of three in order", []string{"4H", "5D", "6C"}, 3 + 2}, // run + fifteen
		{"run of three out of order", []string{"6C", "4H", "5D"}, 3 + 2},
		{"run of four", []string{"AH", "3D", "2C", "4S"}, 4},
		{"interrupted run does not score", []string{"4H", "9D", "5C", "6S"}, 0},
		{"longest trailing run wins", []string{"2H", "3D", "4C", "5S"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPegging()
			var pts int
			var err error
			for _, s := range tt.plays {
				pts, err = p.PlayCard("a", mustCard(t, s))
				if err != nil {
					t.Fatalf("play %s: %v", s, err)
				}
			}
			if pts != tt.want {
				t.Errorf("final play scored %d, want %d", pts, tt.want)
			}
		})
	}
}

func TestPeggingThirtyOne(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "KH"))
	p.PlayCard("b", mustCard(t, "QD"))
	p.PlayCard("a", mustCard(t, "10C"))
	pts, err := p.PlayCard("b", mustCard(t, "AH"))
	if err != nil {
		t.Fatalf("play to 31: %v", err)
	}
	if pts != 2 {
		t.Errorf("hitting 31 scored %d, want 2", pts)
	}

	// The closer also takes the last-card point when the sequence ends.
	player, bonus := p.EndSequence()
	if player != "b" || bonus != 1 {
		t.Errorf("EndSequence() = (%q, %d), want (b, 1)", player, bonus)
	}
	if p.Value() != 0 {
		t.Errorf("value after reset = %d, want 0", p.Value())
	}
	if len(p.Plays()) != 4 {
		t.Errorf("history length = %d, want 4 (history is never cleared mid-round)", len(p.Plays()))
	}
}

func TestPeggingIllegalPlay(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "KH"))
	p.PlayCard("b", mustCard(t, "QD"))
	p.PlayCard("a", mustCard(t, "10C"))
	if _, err := p.PlayCard("b", mustCard(t, "2H")); err != ErrIllegalPlay {
		t.Fatalf("expected ErrIllegalPlay, got %v", err)
	}
	// A failed play must not touch state.
	if p.Value() != 30 || len(p.Plays()) != 3 {
		t.Errorf("state mutated by illegal play: value=%d plays=%d", p.Value(), len(p.Plays()))
	}
}

func TestPeggingLegalMoves(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "KH"))
	p.PlayCard("b", mustCard(t, "KD"))
	p.PlayCard("a", mustCard(t, "4C")) // value 24

	hand := cards(t, "9H", "7D", "AC", "5S")
	moves := p.LegalMoves(hand)
	want := []int{1, 2, 3} // 9 would exceed 31
	if len(moves) != len(want) {
		t.Fatalf("LegalMoves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("LegalMoves = %v, want %v", moves, want)
		}
	}

	if p.CanPlay(cards(t, "9H", "8D")) {
		t.Error("CanPlay should be false when every card busts 31")
	}
}

func TestPeggingNoPairAcrossSequenceReset(t *testing.T) {
	p := NewPegging()
	p.PlayCard("a", mustCard(t, "8H"))
	p.EndSequence()
	if pts, _ := p.PlayCard("b", mustCard(t, "8D")); pts != 0 {
		t.Errorf("pair across reset scored %d, want 0", pts)
	}
}
