package internal

import (
	"github.com/johnmiko/crib/internal/domain"
)

// Keep is one way to split a dealt hand into four kept cards and the
// discard destined for the crib.
type Keep struct {
	Kept    []domain.Card
	Discard []domain.Card
}

// Keeps enumerates every 4-card keep from a dealt hand (C(6,4) splits for
// the standard two-player deal).
func Keeps(hand []domain.Card) []Keep {
	n := len(hand)
	var keeps []Keep
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			keep := Keep{}
			for k, c := range hand {
				if k == i || k == j {
					keep.Discard = append(keep.Discard, c)
				} else {
					keep.Kept = append(keep.Kept, c)
				}
			}
			keeps = append(keeps, keep)
		}
	}
	return keeps
}

// StaticScore rates four kept cards on what they score without knowing the
// starter, by averaging the hand score over the thirteen starter ranks
// with a fixed probe suit. Suit interactions (flush, nobs) are only
// approximated; ExpectedScore is the exact version.
func StaticScore(kept []domain.Card) float64 {
	total := 0
	for r := domain.Ace; r <= domain.King; r++ {
		probe := domain.Card{Rank: r, Suit: domain.Spades}
		total += domain.ScoreHand(kept, probe, false).Total()
	}
	return float64(total) / 13
}

// ExpectedScore averages the kept hand's score over every card not in the
// dealt hand, weighting starter ranks by how many of each remain unseen.
func ExpectedScore(kept []domain.Card, dealt []domain.Card) float64 {
	seen := make(map[domain.Card]bool, len(dealt))
	for _, c := range dealt {
		seen[c] = true
	}

	total, count := 0, 0
	for _, s := range domain.Suits {
		for r := domain.Ace; r <= domain.King; r++ {
			starter := domain.Card{Rank: r, Suit: s}
			if seen[starter] {
				continue
			}
			total += domain.ScoreHand(kept, starter, false).Total()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
