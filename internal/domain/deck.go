package domain

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck indicates a draw was attempted with too few cards remaining.
// With correct deal sizing this never fires; treat it as fatal.
var ErrEmptyDeck = errors.New("not enough cards left in deck")

// Deck is an ordered stack of cards, consumed from the top by Draw.
type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck in suit-then-rank order.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the remaining cards uniformly using the given source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top n cards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrEmptyDeck
	}
	drawn := d.cards[:n]
	d.cards = d.cards[n:]
	return drawn, nil
}

// DrawOne removes and returns the top card.
func (d *Deck) DrawOne() (Card, error) {
	drawn, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return drawn[0], nil
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
