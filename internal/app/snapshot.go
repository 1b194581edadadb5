package app

import (
	"github.com/johnmiko/crib/internal/domain"
)

// CardView is a display-friendly card.
type CardView struct {
	Rank   string `json:"rank"`
	Suit   string `json:"suit"`
	Symbol string `json:"symbol"`
	Value  int    `json:"value"`
}

// TableCardView is one played card on the table.
type TableCardView struct {
	Player string   `json:"player"`
	Card   CardView `json:"card"`
}

// Snapshot is the observable state handed to external callers. The
// computer's cards stay hidden (size only) unless the session runs in
// debug mode. Table cards cover the whole round; table value only the
// current sequence.
type Snapshot struct {
	GameID            string                 `json:"game_id"`
	Opponent          string                 `json:"opponent"`
	YourHand          []CardView             `json:"your_hand"`
	ComputerHandCount int                    `json:"computer_hand_count"`
	ComputerHand      []CardView             `json:"computer_hand,omitempty"`
	StarterCard       *CardView              `json:"starter_card,omitempty"`
	TableCards        []TableCardView        `json:"table_cards"`
	TableValue        int                    `json:"table_value"`
	CribCount         int                    `json:"crib_count"`
	Dealer            string                 `json:"dealer"`
	Scores            map[string]int         `json:"scores"`
	Pegs              map[string]domain.Pegs `json:"pegs"`
	ActionRequired    ActionType             `json:"action_required"`
	ValidCardIndices  []int                  `json:"valid_card_indices"`
	Message           string                 `json:"message"`
	GameOver          bool                   `json:"game_over"`
	Winner            string                 `json:"winner,omitempty"`
}

func cardView(c domain.Card) CardView {
	return CardView{
		Rank:   c.RankName(),
		Suit:   c.SuitName(),
		Symbol: c.Symbol(),
		Value:  c.Value(),
	}
}

func cardViews(cards []domain.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, cardView(c))
	}
	return views
}

func (s *Session) snapshot() *Snapshot {
	r := s.round
	snap := &Snapshot{
		GameID:            s.ID,
		Opponent:          s.opponentID,
		YourHand:          cardViews(r.Hands[PlayerHuman]),
		ComputerHandCount: len(r.Hands[PlayerComputer]),
		TableCards:        []TableCardView{},
		ValidCardIndices:  []int{},
		TableValue:        r.Peg.Value(),
		CribCount:         len(r.Crib),
		Dealer:            r.Dealer,
		Scores: map[string]int{
			PlayerHuman:    s.board.Score(PlayerHuman),
			PlayerComputer: s.board.Score(PlayerComputer),
		},
		Pegs: map[string]domain.Pegs{
			PlayerHuman:    s.board.PegsFor(PlayerHuman),
			PlayerComputer: s.board.PegsFor(PlayerComputer),
		},
		ActionRequired: s.waiting,
		Message:        s.message,
		GameOver:       s.gameOver,
		Winner:         s.winner,
	}

	if s.debug {
		snap.ComputerHand = cardViews(r.Hands[PlayerComputer])
	}
	if r.Starter != nil {
		view := cardView(*r.Starter)
		snap.StarterCard = &view
	}
	for _, play := range r.Peg.Plays() {
		snap.TableCards = append(snap.TableCards, TableCardView{
			Player: play.Player,
			Card:   cardView(play.Card),
		})
	}
	if s.waiting == ActionSelectCardToPlay {
		// LegalMoves yields nil when only go is legal; the indices must
		// still serialize as an empty list.
		snap.ValidCardIndices = append(snap.ValidCardIndices, r.LegalMoves(PlayerHuman)...)
	}
	return snap
}
