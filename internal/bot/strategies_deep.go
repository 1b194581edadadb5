package bot

import (
	"github.com/johnmiko/crib/internal/bot/internal"
	"github.com/johnmiko/crib/internal/domain"
)

// DeepPegBot keeps the discard split with the best rank-averaged hand
// score and pegs greedily: it plays whichever legal card earns the most
// points right now, breaking ties toward cheaper cards to save high ones.
type DeepPegBot struct{}

func (b *DeepPegBot) SelectCrib(hand []domain.Card) ([]domain.Card, error) {
	best := internal.Keeps(hand)[0]
	bestScore := internal.StaticScore(best.Kept)
	for _, keep := range internal.Keeps(hand)[1:] {
		if score := internal.StaticScore(keep.Kept); score > bestScore {
			best, bestScore = keep, score
		}
	}
	return best.Discard, nil
}

func (b *DeepPegBot) SelectPlay(hand []domain.Card, table []domain.Play, tableValue int) (Move, error) {
	move, _ := bestGreedyPlay(hand, table, tableValue, nil)
	return move, nil
}

// bestGreedyPlay selects the legal card with the highest immediate pegging
// points; ties go to the lowest counting value. The optional penalty hook
// lets stronger strategies steer between equally scoring plays.
func bestGreedyPlay(hand []domain.Card, table []domain.Play, tableValue int, penalty func(newValue int) int) (Move, int) {
	bestIdx := -1
	bestScore := 0
	for i, c := range hand {
		if tableValue+c.Value() > domain.MaxCount {
			continue
		}
		score := domain.PlayPoints(table, c) * 100
		if penalty != nil {
			score -= penalty(tableValue + c.Value())
		}
		score -= c.Value() // prefer spending low cards
		if bestIdx == -1 || score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx == -1 {
		return Move{Go: true}, 0
	}
	return Move{Card: hand[bestIdx]}, bestScore
}
