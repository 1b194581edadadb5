package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

// Phase is the lifecycle stage of a round.
type Phase string

const (
	// PhaseCribSelection waits for both players to discard into the crib.
	PhaseCribSelection Phase = "crib_selection"
	// PhaseStarterCut waits for the starter to be cut from the deck.
	PhaseStarterCut Phase = "starter_cut"
	// PhasePlay is the alternating pegging phase.
	PhasePlay Phase = "play"
	// PhaseScoring waits for hands and crib to be counted.
	PhaseScoring Phase = "scoring"
	// PhaseComplete means the round is fully scored.
	PhaseComplete Phase = "complete"
)

const (
	// DealSize is the cards dealt to each player in the two-player game.
	DealSize = 6
	// CribDiscardCount is the cards each player gives to the crib.
	CribDiscardCount = 2
)

var (
	ErrWrongPhase       = errors.New("action not valid in current phase")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrAlreadyDiscarded = errors.New("player already discarded to crib")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrMustPlay         = errors.New("cannot declare go with a legal move available")
)

// Award is a point grant emitted by a round transition. Callers fold
// awards into the board in order, checking for a winner after each.
type Award struct {
	Player string
	Points int
	Reason string
}

// Award reasons.
const (
	ReasonHisHeels = "his heels"
	ReasonPegging  = "pegging"
	ReasonLastCard = "last card"
	ReasonHand     = "hand"
	ReasonCrib     = "crib"
)

// Round owns the state of a single hand: both hands, the crib, the
// starter, the pegging table and whose turn it is. The dealer owns the
// crib; the non-dealer leads the play and counts first.
type Round struct {
	Players [2]string
	Dealer  string
	Phase   Phase

	Deck    *Deck
	Hands   map[string][]Card
	Kept    map[string][]Card // 4-card snapshots taken at the cut, used for counting
	Crib    []Card
	Starter *Card
	Peg     *Pegging

	Turn      string
	Discarded map[string]bool
	GoPending bool // the non-acting side declared go this sequence
}

// NewRound deals a fresh shuffled deck: six cards to each player.
func NewRound(players [2]string, dealer string, rng *rand.Rand) (*Round, error) {
	if dealer != players[0] && dealer != players[1] {
		return nil, fmt.Errorf("dealer %q is not a player", dealer)
	}

	deck := NewDeck()
	deck.Shuffle(rng)

	r := &Round{
		Players:   players,
		Dealer:    dealer,
		Phase:     PhaseCribSelection,
		Deck:      deck,
		Hands:     make(map[string][]Card, 2),
		Kept:      make(map[string][]Card, 2),
		Peg:       NewPegging(),
		Discarded: make(map[string]bool, 2),
	}

	// Non-dealer is dealt to first.
	for _, p := range []string{r.NonDealer(), dealer} {
		hand, err := deck.Draw(DealSize)
		if err != nil {
			return nil, err
		}
		r.Hands[p] = append([]Card(nil), hand...)
	}
	return r, nil
}

// NonDealer returns the player who is not dealing this round.
func (r *Round) NonDealer() string {
	return r.Opponent(r.Dealer)
}

// Opponent returns the other player.
func (r *Round) Opponent(player string) string {
	if player == r.Players[0] {
		return r.Players[1]
	}
	return r.Players[0]
}

// DiscardToCrib moves exactly two cards from the player's hand into the
// crib. Once both players have discarded the round awaits the starter cut.
// Validation failures leave all state unchanged.
func (r *Round) DiscardToCrib(player string, cards []Card) error {
	if r.Phase != PhaseCribSelection {
		return ErrWrongPhase
	}
	if r.Discarded[player] {
		return ErrAlreadyDiscarded
	}
	if len(cards) != CribDiscardCount {
		return fmt.Errorf("need exactly %d cards for the crib, got %d", CribDiscardCount, len(cards))
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("crib cards must be distinct")
	}
	for _, c := range cards {
		if !ContainsCard(r.Hands[player], c) {
			return ErrCardNotInHand
		}
	}

	r.Hands[player] = RemoveCards(r.Hands[player], cards)
	r.Crib = append(r.Crib, cards...)
	r.Discarded[player] = true

	if r.Discarded[r.Players[0]] && r.Discarded[r.Players[1]] {
		r.Phase = PhaseStarterCut
	}
	return nil
}

// CutStarter cuts one card from the remaining deck. A jack scores the
// dealer two points immediately (his heels). Play then begins with the
// non-dealer leading.
func (r *Round) CutStarter() ([]Award, error) {
	if r.Phase != PhaseStarterCut {
		return nil, ErrWrongPhase
	}
	starter, err := r.Deck.DrawOne()
	if err != nil {
		return nil, err
	}
	r.Starter = &starter

	for _, p := range r.Players {
		r.Kept[p] = append([]Card(nil), r.Hands[p]...)
	}

	r.Phase = PhasePlay
	r.Turn = r.NonDealer()

	if starter.Rank == Jack {
		return []Award{{Player: r.Dealer, Points: 2, Reason: ReasonHisHeels}}, nil
	}
	return nil, nil
}

// LegalMoves returns the indices of the player's cards playable at the
// current running value.
func (r *Round) LegalMoves(player string) []int {
	if r.Phase != PhasePlay {
		return nil
	}
	return r.Peg.LegalMoves(r.Hands[player])
}

// PlayCard plays the card at the given hand index for the acting player
// and advances the turn. Returned awards cover pegging points and any
// last-card point triggered by this play.
func (r *Round) PlayCard(player string, idx int) ([]Award, error) {
	if r.Phase != PhasePlay {
		return nil, ErrWrongPhase
	}
	if player != r.Turn {
		return nil, ErrNotYourTurn
	}
	if idx < 0 || idx >= len(r.Hands[player]) {
		return nil, ErrCardNotInHand
	}

	card := r.Hands[player][idx]
	points, err := r.Peg.PlayCard(player, card)
	if err != nil {
		return nil, err
	}
	r.Hands[player] = RemoveCards(r.Hands[player], []Card{card})

	var awards []Award
	if points > 0 {
		awards = append(awards, Award{Player: player, Points: points, Reason: ReasonPegging})
	}

	other := r.Opponent(player)
	switch {
	case r.Peg.Value() == MaxCount:
		// 31 always ends the sequence; the closer also takes the
		// last-card point on top of the two for 31.
		awards = r.endSequence(awards)
	case len(r.Hands[player]) == 0 && len(r.Hands[other]) == 0:
		awards = r.endSequence(awards)
	case r.GoPending:
		// Opponent already said go: keep playing while able.
		if r.Peg.CanPlay(r.Hands[player]) {
			r.Turn = player
		} else {
			awards = r.endSequence(awards)
		}
	case len(r.Hands[other]) > 0:
		r.Turn = other
	default:
		// Opponent has no cards left at all.
		if r.Peg.CanPlay(r.Hands[player]) {
			r.Turn = player
		} else {
			awards = r.endSequence(awards)
		}
	}
	return awards, nil
}

// DeclareGo records that the acting player has no legal move. If the
// opponent can still play, control passes to them; if neither side can
// extend the sequence it stops and the last player to lay a card scores.
func (r *Round) DeclareGo(player string) ([]Award, error) {
	if r.Phase != PhasePlay {
		return nil, ErrWrongPhase
	}
	if player != r.Turn {
		return nil, ErrNotYourTurn
	}
	if r.Peg.CanPlay(r.Hands[player]) {
		return nil, ErrMustPlay
	}

	other := r.Opponent(player)
	if r.Peg.CanPlay(r.Hands[other]) {
		r.GoPending = true
		r.Turn = other
		return nil, nil
	}
	return r.endSequence(nil), nil
}

// endSequence stops the current sequence, awards the last-card point, and
// either starts the next sequence or moves the round into scoring when
// both hands are exhausted. The play history is retained for display.
func (r *Round) endSequence(awards []Award) []Award {
	last, points := r.Peg.EndSequence()
	if points > 0 {
		awards = append(awards, Award{Player: last, Points: points, Reason: ReasonLastCard})
	}
	r.GoPending = false

	if len(r.Hands[r.Players[0]]) == 0 && len(r.Hands[r.Players[1]]) == 0 {
		r.Phase = PhaseScoring
		r.Turn = ""
		return awards
	}

	// The side that did not play the last card leads the new sequence,
	// falling back to the last player if the other hand is empty.
	next := r.Opponent(last)
	if len(r.Hands[next]) == 0 {
		next = last
	}
	r.Turn = next
	return awards
}

// ScoreHands counts the kept hands and the crib in the fixed order:
// non-dealer hand, dealer hand, then the dealer's crib.
func (r *Round) ScoreHands() ([]Award, error) {
	if r.Phase != PhaseScoring {
		return nil, ErrWrongPhase
	}
	if r.Starter == nil {
		return nil, fmt.Errorf("scoring without a starter cut")
	}

	nonDealer := r.NonDealer()
	awards := []Award{
		{Player: nonDealer, Points: ScoreHand(r.Kept[nonDealer], *r.Starter, false).Total(), Reason: ReasonHand},
		{Player: r.Dealer, Points: ScoreHand(r.Kept[r.Dealer], *r.Starter, false).Total(), Reason: ReasonHand},
		{Player: r.Dealer, Points: ScoreHand(r.Crib, *r.Starter, true).Total(), Reason: ReasonCrib},
	}
	r.Phase = PhaseComplete
	return awards, nil
}

// CardsAccountedFor sums every card location within the round: both hands,
// the crib, the starter, played cards and the undrawn deck. It equals 52
// at every state transition.
func (r *Round) CardsAccountedFor() int {
	total := len(r.Hands[r.Players[0]]) + len(r.Hands[r.Players[1]])
	total += len(r.Crib)
	total += len(r.Peg.Plays())
	total += r.Deck.Remaining()
	if r.Starter != nil {
		total++
	}
	return total
}
