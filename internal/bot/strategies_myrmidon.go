package bot

import (
	"github.com/johnmiko/crib/internal/bot/internal"
	"github.com/johnmiko/crib/internal/domain"
)

// MyrmidonBot is the strongest stock opponent. Discards maximize the
// exact expected kept-hand score over every unseen starter; pegging plays
// greedily like DeepPegBot but avoids leaving counts the opponent can
// turn into a fifteen or thirty-one with a single ten-card.
type MyrmidonBot struct{}

func (b *MyrmidonBot) SelectCrib(hand []domain.Card) ([]domain.Card, error) {
	keeps := internal.Keeps(hand)
	best := keeps[0]
	bestScore := internal.ExpectedScore(best.Kept, hand)
	for _, keep := range keeps[1:] {
		if score := internal.ExpectedScore(keep.Kept, hand); score > bestScore {
			best, bestScore = keep, score
		}
	}
	return best.Discard, nil
}

func (b *MyrmidonBot) SelectPlay(hand []domain.Card, table []domain.Play, tableValue int) (Move, error) {
	move, _ := bestGreedyPlay(hand, table, tableValue, func(newValue int) int {
		// Leaving 5 or 21 invites a ten-card fifteen or thirty-one.
		if newValue == 5 || newValue == 21 {
			return 10
		}
		return 0
	})
	return move, nil
}
