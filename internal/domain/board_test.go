package domain

import "testing"

func TestBoardAward(t *testing.T) {
	b := NewBoard([]string{"human", "computer"}, 0)
	if b.WinningScore != DefaultWinningScore {
		t.Fatalf("WinningScore = %d, want %d", b.WinningScore, DefaultWinningScore)
	}

	b.Award("human", 6)
	b.Award("human", 4)
	pegs := b.PegsFor("human")
	if pegs.Front != 10 || pegs.Rear != 6 {
		t.Errorf("pegs = %+v, want front=10 rear=6", pegs)
	}
	if pegs.Front < pegs.Rear {
		t.Error("front peg behind rear peg")
	}

	// Zero awards never move the pegs.
	b.Award("human", 0)
	if got := b.PegsFor("human"); got != pegs {
		t.Errorf("zero award moved pegs: %+v", got)
	}
}

func TestBoardWinnerAndCap(t *testing.T) {
	b := NewBoard([]string{"human", "computer"}, 121)
	if _, ok := b.Winner(); ok {
		t.Fatal("fresh board has a winner")
	}

	b.SetPegs("computer", Pegs{Front: 119, Rear: 115})
	b.Award("computer", 12)
	if got := b.Score("computer"); got != 121 {
		t.Errorf("score = %d, want capped at 121", got)
	}
	winner, ok := b.Winner()
	if !ok || winner != "computer" {
		t.Errorf("Winner() = (%q, %v), want (computer, true)", winner, ok)
	}
}
