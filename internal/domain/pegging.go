package domain

import (
	"errors"
	"sort"
)

// ErrIllegalPlay indicates the chosen card would push the running value
// past 31.
var ErrIllegalPlay = errors.New("illegal play")

// MaxCount is the pegging ceiling; the running value never exceeds it.
const MaxCount = 31

// Play is one card laid on the table during pegging.
type Play struct {
	Player string `json:"player"`
	Card   Card   `json:"card"`
}

// Pegging tracks the shared table during the play phase. The full play
// history is kept for the whole round; only the running value and the
// trailing scoring window reset when a sequence ends.
type Pegging struct {
	plays      []Play
	seqStart   int    // index of the first play in the current sequence
	lastPlayer string // last player to lay a card this sequence, "" if none
}

// NewPegging returns an empty pegging table.
func NewPegging() *Pegging {
	return &Pegging{}
}

// Plays returns the full play history for the round.
func (p *Pegging) Plays() []Play {
	return p.plays
}

// SequencePlays returns only the plays in the current sequence.
func (p *Pegging) SequencePlays() []Play {
	return p.plays[p.seqStart:]
}

// Value returns the running count of the current sequence.
func (p *Pegging) Value() int {
	total := 0
	for _, play := range p.plays[p.seqStart:] {
		total += play.Card.Value()
	}
	return total
}

// LastPlayer returns who laid the most recent card in the current
// sequence, or "" if the sequence is empty.
func (p *Pegging) LastPlayer() string {
	return p.lastPlayer
}

// LegalMoves returns the indices of hand cards playable at the current
// running value. An empty result means the holder must declare go.
func (p *Pegging) LegalMoves(hand []Card) []int {
	value := p.Value()
	var moves []int
	for i, c := range hand {
		if value+c.Value() <= MaxCount {
			moves = append(moves, i)
		}
	}
	return moves
}

// CanPlay reports whether any card in the hand is a legal move.
func (p *Pegging) CanPlay(hand []Card) bool {
	return len(p.LegalMoves(hand)) > 0
}

// PlayCard lays a card on the table and returns the points this exact play
// earns: fifteen, thirty-one, trailing pair/triple/quad, and trailing run.
// The last-card point is awarded separately by EndSequence.
func (p *Pegging) PlayCard(player string, c Card) (int, error) {
	if p.Value()+c.Value() > MaxCount {
		return 0, ErrIllegalPlay
	}
	points := PlayPoints(p.plays[p.seqStart:], c)
	p.plays = append(p.plays, Play{Player: player, Card: c})
	p.lastPlayer = player
	return points, nil
}

// PlayPoints computes the pegging points earned by laying card at the end
// of the given sequence: fifteen, thirty-one, trailing same-rank set and
// trailing run. The last-card point is not included. Strategies use this
// to evaluate candidate plays without touching engine state.
func PlayPoints(sequence []Play, card Card) int {
	value := 0
	for _, play := range sequence {
		value += play.Card.Value()
	}
	value += card.Value()

	points := 0
	if value == 15 {
		points += 2
	}
	if value == MaxCount {
		points += 2
	}
	points += trailingPairPoints(sequence, card)
	points += trailingRunPoints(sequence, card)
	return points
}

// EndSequence closes the current sequence, awarding 1 point to whoever
// played last. The running value resets to zero; history is retained.
func (p *Pegging) EndSequence() (player string, points int) {
	player = p.lastPlayer
	if player != "" {
		points = 1
	}
	p.seqStart = len(p.plays)
	p.lastPlayer = ""
	return player, points
}

// trailingPairPoints walks backward from the newest card while ranks match:
// pair 2, triple 6, quad 12.
func trailingPairPoints(sequence []Play, card Card) int {
	matched := 1
	for i := len(sequence) - 1; i >= 0 && sequence[i].Card.Rank == card.Rank; i-- {
		matched++
	}
	switch matched {
	case 2:
		return 2
	case 3:
		return 6
	case 4:
		return 12
	}
	return 0
}

// trailingRunPoints checks the longest trailing window of size >= 3 whose
// ranks, sorted, form a consecutive sequence. Played order is irrelevant.
func trailingRunPoints(sequence []Play, card Card) int {
	for window := len(sequence) + 1; window >= 3; window-- {
		tail := sequence[len(sequence)-(window-1):]
		ranks := make([]int, 0, window)
		for _, play := range tail {
			ranks = append(ranks, int(play.Card.Rank))
		}
		ranks = append(ranks, int(card.Rank))
		if isConsecutive(ranks) {
			return window
		}
	}
	return 0
}

func isConsecutive(ranks []int) bool {
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}
