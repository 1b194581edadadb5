package domain

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four suits. Suit order never affects scoring.
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits lists all suits in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank is the ordinal rank of a card, Ace=1 through King=13.
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Card is a single playing card. Value semantics, equality by rank+suit.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Value returns the counting value used for fifteens and the pegging total:
// Ace=1, pip cards face value, Jack/Queen/King=10.
func (c Card) Value() int {
	if c.Rank >= 10 {
		return 10
	}
	return int(c.Rank)
}

// RankName returns the spelled-out rank, e.g. "ace", "nine", "king".
func (c Card) RankName() string {
	names := [...]string{"", "ace", "two", "three", "four", "five", "six",
		"seven", "eight", "nine", "ten", "jack", "queen", "king"}
	if c.Rank < 1 || c.Rank > 13 {
		return "unknown"
	}
	return names[c.Rank]
}

// SuitName returns the spelled-out suit, e.g. "hearts".
func (c Card) SuitName() string {
	switch c.Suit {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	}
	return "unknown"
}

// Symbol returns a compact display form such as "5♥" or "J♠".
func (c Card) Symbol() string {
	glyphs := map[Suit]string{Spades: "♠", Hearts: "♥", Diamonds: "♦", Clubs: "♣"}
	return c.rankLetter() + glyphs[c.Suit]
}

func (c Card) rankLetter() string {
	switch c.Rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(c.Rank))
	}
}

func (c Card) String() string {
	return c.rankLetter() + string(c.Suit)
}

// ParseCard parses forms like "5H", "10s", "JD" back into a Card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	suit := Suit(s[len(s)-1:])
	switch suit {
	case Spades, Hearts, Diamonds, Clubs:
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch rankStr := s[:len(s)-1]; rankStr {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		var v int
		if _, err := fmt.Sscanf(rankStr, "%d", &v); err != nil || v < 1 || v > 13 {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		rank = Rank(v)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// RemoveCards removes the given cards from a hand, one occurrence each,
// and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}
	return updated
}

// ContainsCard reports whether the hand holds the exact card.
func ContainsCard(hand []Card, c Card) bool {
	for _, hc := range hand {
		if hc == c {
			return true
		}
	}
	return false
}
