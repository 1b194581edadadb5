package crib

import (
	"testing"
)

func TestNewWiresDefaults(t *testing.T) {
	engine, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := engine.NewGame("", "")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	snap := s.State()
	if snap.Opponent != "deeppeg" {
		t.Errorf("default opponent = %q, want deeppeg", snap.Opponent)
	}
	if snap.ActionRequired != ActionSelectCribCards {
		t.Errorf("action = %q, want %q", snap.ActionRequired, ActionSelectCribCards)
	}

	got, ok := engine.Game(s.ID)
	if !ok || got != s {
		t.Fatalf("Game(%q) = (%v, %v)", s.ID, got, ok)
	}
	if n := engine.EvictIdle(); n != 0 {
		t.Errorf("EvictIdle removed %d fresh sessions", n)
	}
	if !engine.EndGame(s.ID) {
		t.Error("EndGame reported missing session")
	}
	if _, ok := engine.Game(s.ID); ok {
		t.Error("session survived EndGame")
	}
}

func TestNewGameUnknownOpponent(t *testing.T) {
	engine, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.NewGame("chessmaster", ""); err == nil {
		t.Error("unknown opponent id accepted")
	}
}

func TestUserStatsWithoutDatabase(t *testing.T) {
	engine, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rows, err := engine.UserStats("someone")
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("UserStats = %v, want none without a database", rows)
	}
}

func TestOpponents(t *testing.T) {
	ids := Opponents()
	if len(ids) != 4 {
		t.Fatalf("Opponents() = %v, want 4 ids", ids)
	}
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	for _, want := range []string{"linearb", "nonlinearb", "deeppeg", "myrmidon"} {
		if !found[want] {
			t.Errorf("missing opponent %q in %v", want, ids)
		}
	}
}
