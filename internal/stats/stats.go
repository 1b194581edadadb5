// Package stats tracks win/loss history per user and opponent. Recording
// is fire-and-forget: callers log failures and keep playing.
package stats

// Recorder receives game outcomes and answers aggregate queries.
type Recorder interface {
	// Record tallies one finished game for the user against the given
	// opponent. Users without an id are not tracked.
	Record(userID, opponentID string, won bool) error
	// UserStats returns the user's per-opponent totals.
	UserStats(userID string) ([]OpponentStats, error)
}

// OpponentStats is a user's record against one opponent.
type OpponentStats struct {
	OpponentID string  `json:"opponent_id"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	TotalGames int     `json:"total_games"`
	WinRate    float64 `json:"win_rate"`
}

// NewOpponentStats derives the aggregate fields from raw counters.
func NewOpponentStats(opponentID string, wins, losses int) OpponentStats {
	s := OpponentStats{
		OpponentID: opponentID,
		Wins:       wins,
		Losses:     losses,
		TotalGames: wins + losses,
	}
	if s.TotalGames > 0 {
		s.WinRate = float64(wins) / float64(s.TotalGames)
	}
	return s
}

// Noop discards everything; used when no database is configured.
type Noop struct{}

func (Noop) Record(userID, opponentID string, won bool) error { return nil }

func (Noop) UserStats(userID string) ([]OpponentStats, error) { return nil, nil }
