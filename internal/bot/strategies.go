package bot

import (
	"math/rand"

	"github.com/johnmiko/crib/internal/domain"
)

// LinearBot is the baseline opponent: it discards the first two cards of
// its hand and plays the first legal card. Deterministic given hand order.
type LinearBot struct{}

func (b *LinearBot) SelectCrib(hand []domain.Card) ([]domain.Card, error) {
	return append([]domain.Card(nil), hand[:2]...), nil
}

func (b *LinearBot) SelectPlay(hand []domain.Card, table []domain.Play, tableValue int) (Move, error) {
	for _, c := range hand {
		if tableValue+c.Value() <= domain.MaxCount {
			return Move{Card: c}, nil
		}
	}
	return Move{Go: true}, nil
}

// NonLinearBot discards and plays uniformly at random among legal choices.
type NonLinearBot struct {
	rng *rand.Rand
}

func (b *NonLinearBot) SelectCrib(hand []domain.Card) ([]domain.Card, error) {
	i := b.rng.Intn(len(hand))
	j := b.rng.Intn(len(hand) - 1)
	if j >= i {
		j++
	}
	return []domain.Card{hand[i], hand[j]}, nil
}

func (b *NonLinearBot) SelectPlay(hand []domain.Card, table []domain.Play, tableValue int) (Move, error) {
	var legal []domain.Card
	for _, c := range hand {
		if tableValue+c.Value() <= domain.MaxCount {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return Move{Go: true}, nil
	}
	return Move{Card: legal[b.rng.Intn(len(legal))]}, nil
}
