package bot

import (
	"github.com/johnmiko/crib/internal/domain"
)

// Move is a pegging decision. Go reports that no card is played.
type Move struct {
	Go   bool
	Card domain.Card
}

// Brain is the interface every opponent strategy must implement. The
// session consults it for the two decisions a side makes in a round:
// which cards to give to the crib and which card to play during pegging.
// Table holds the current sequence only; its values sum to tableValue.
type Brain interface {
	SelectCrib(hand []domain.Card) ([]domain.Card, error)
	SelectPlay(hand []domain.Card, table []domain.Play, tableValue int) (Move, error)
}
