package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/johnmiko/crib/internal/bot"
	"github.com/johnmiko/crib/internal/domain"
	"github.com/johnmiko/crib/internal/log"
	"github.com/johnmiko/crib/internal/stats"
)

// Player identities within a session.
const (
	PlayerHuman    = "human"
	PlayerComputer = "computer"
)

// ActionType names the decision a session is waiting on.
type ActionType string

const (
	// ActionSelectCribCards asks for exactly two crib discards.
	ActionSelectCribCards ActionType = "select_crib_cards"
	// ActionSelectCardToPlay asks for one pegging card, or none for go.
	ActionSelectCardToPlay ActionType = "select_card_to_play"
	// ActionNone means the game is over and no input is expected.
	ActionNone ActionType = "none"
)

var (
	// ErrValidation covers wrong cardinality, out-of-range indices and
	// selections that do not match the pending action. State unchanged.
	ErrValidation = errors.New("invalid selection")
	// ErrGameOver rejects actions submitted after a winner is decided.
	ErrGameOver = errors.New("game already over")
)

// Options configures a new session. Zero values select sensible defaults:
// deeppeg opponent, time-seeded rng, 121-point board, no stats recording.
type Options struct {
	OpponentID   string
	UserID       string
	WinningScore int
	Rand         *rand.Rand
	Recorder     stats.Recorder
	Logger       logrus.FieldLogger
	// Debug exposes the computer's cards in snapshots.
	Debug bool
}

// Session drives one game: it owns the board, the current round and the
// pending-action marker, pausing before every human decision and playing
// the computer's moves automatically after each one. Not safe for
// concurrent use; callers serialize access per session.
type Session struct {
	ID        string
	CreatedAt time.Time

	log        logrus.FieldLogger
	rng        *rand.Rand
	brain      bot.Brain
	opponentID string
	userID     string
	recorder   stats.Recorder
	debug      bool

	board    *domain.Board
	round    *domain.Round
	dealer   string
	waiting  ActionType
	message  string
	gameOver bool
	winner   string
	recorded bool
}

// NewSession starts a game against the chosen opponent and deals the
// first round. The computer deals first, so the human leads the play.
func NewSession(opts Options) (*Session, error) {
	if opts.OpponentID == "" {
		opts.OpponentID = bot.OpponentDeepPeg
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	brain, err := bot.New(opts.OpponentID, rng)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = stats.Noop{}
	}

	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		rng:        rng,
		brain:      brain,
		opponentID: opts.OpponentID,
		userID:     opts.UserID,
		recorder:   recorder,
		debug:      opts.Debug,
		board:      domain.NewBoard([]string{PlayerHuman, PlayerComputer}, opts.WinningScore),
		dealer:     PlayerComputer,
	}
	s.log = logger.WithField("game_id", s.ID)

	if err := s.startRound(); err != nil {
		return nil, err
	}
	s.log.WithField("opponent", s.opponentID).Info("game created")
	return s, nil
}

// startRound deals a new round, applies the computer's crib discard and
// leaves the session waiting for the human's.
func (s *Session) startRound() error {
	round, err := domain.NewRound([2]string{PlayerHuman, PlayerComputer}, s.dealer, s.rng)
	if err != nil {
		return err
	}
	s.round = round

	discard, err := s.brain.SelectCrib(round.Hands[PlayerComputer])
	if err != nil {
		return fmt.Errorf("opponent crib selection: %w", err)
	}
	if err := round.DiscardToCrib(PlayerComputer, discard); err != nil {
		return fmt.Errorf("opponent crib selection: %w", err)
	}

	s.waiting = ActionSelectCribCards
	s.message = "Select 2 cards for the crib"
	return nil
}

// State returns the current observable snapshot without mutating
// anything; fetching it twice yields identical results.
func (s *Session) State() *Snapshot {
	return s.snapshot()
}

// SubmitAction validates and applies one human decision, then plays
// computer turns until the next human decision point or game end. The
// submitted indices refer to the human hand's current ordering: exactly
// two for crib selection, one or none (go) during pegging. Any
// validation failure leaves all state unchanged.
func (s *Session) SubmitAction(indices []int) (*Snapshot, error) {
	if s.gameOver {
		return nil, ErrGameOver
	}

	var err error
	switch s.waiting {
	case ActionSelectCribCards:
		err = s.submitCribSelection(indices)
	case ActionSelectCardToPlay:
		err = s.submitPlay(indices)
	default:
		err = fmt.Errorf("%w: no action is pending", ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	s.resolve()
	return s.snapshot(), nil
}

func (s *Session) submitCribSelection(indices []int) error {
	if len(indices) != domain.CribDiscardCount {
		return fmt.Errorf("%w: must select exactly 2 cards for the crib", ErrValidation)
	}
	hand := s.round.Hands[PlayerHuman]
	cards, err := s.cardsAt(hand, indices)
	if err != nil {
		return err
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("%w: crib cards must be distinct", ErrValidation)
	}
	if err := s.round.DiscardToCrib(PlayerHuman, cards); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (s *Session) submitPlay(indices []int) error {
	switch len(indices) {
	case 0:
		// An empty selection declares go.
		_, err := s.declareAndApply(PlayerHuman)
		return err
	case 1:
		hand := s.round.Hands[PlayerHuman]
		if indices[0] < 0 || indices[0] >= len(hand) {
			return fmt.Errorf("%w: card index %d out of range", ErrValidation, indices[0])
		}
		awards, err := s.round.PlayCard(PlayerHuman, indices[0])
		if err != nil {
			return err
		}
		s.applyAwards(awards)
		return nil
	default:
		return fmt.Errorf("%w: play takes at most one card", ErrValidation)
	}
}

func (s *Session) declareAndApply(player string) ([]domain.Award, error) {
	awards, err := s.round.DeclareGo(player)
	if err != nil {
		if errors.Is(err, domain.ErrMustPlay) && player == PlayerHuman {
			return nil, fmt.Errorf("%w: cannot say go with a legal move available", ErrValidation)
		}
		return nil, err
	}
	s.applyAwards(awards)
	return awards, nil
}

func (s *Session) cardsAt(hand []domain.Card, indices []int) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(hand) {
			return nil, fmt.Errorf("%w: card index %d out of range", ErrValidation, idx)
		}
		cards = append(cards, hand[idx])
	}
	return cards, nil
}

// resolve advances the game until the human must act again or the game
// ends. Every computer iteration removes a card from some hand or closes
// a phase, so the loop always terminates within a round's card count.
func (s *Session) resolve() {
	for !s.gameOver {
		switch s.round.Phase {
		case domain.PhaseCribSelection:
			s.waiting = ActionSelectCribCards
			s.message = "Select 2 cards for the crib"
			return

		case domain.PhaseStarterCut:
			awards, err := s.round.CutStarter()
			if err != nil {
				// Only reachable through an internal invariant break.
				s.log.WithError(err).Error("starter cut failed")
				return
			}
			s.applyAwards(awards)

		case domain.PhasePlay:
			if s.round.Turn == PlayerHuman {
				s.waiting = ActionSelectCardToPlay
				if len(s.round.LegalMoves(PlayerHuman)) == 0 {
					s.message = "No legal moves, say go"
				} else {
					s.message = "Play a card"
				}
				return
			}
			s.playComputerTurn()

		case domain.PhaseScoring:
			awards, err := s.round.ScoreHands()
			if err != nil {
				s.log.WithError(err).Error("hand scoring failed")
				return
			}
			s.applyAwards(awards)

		case domain.PhaseComplete:
			s.dealer = s.round.Opponent(s.dealer)
			if err := s.startRound(); err != nil {
				s.log.WithError(err).Error("dealing next round failed")
			}
			return
		}
	}
}

// playComputerTurn asks the strategy for one decision and applies it. A
// non-compliant move is logged and replaced with the first legal card so
// a faulty strategy can never wedge the game.
func (s *Session) playComputerTurn() {
	hand := s.round.Hands[PlayerComputer]
	move, err := s.brain.SelectPlay(hand, s.round.Peg.SequencePlays(), s.round.Peg.Value())
	if err != nil {
		s.log.WithError(err).Warn("strategy error, falling back to first legal move")
		move = bot.Move{Go: true}
	}

	if !move.Go {
		if idx := indexOfCard(hand, move.Card); idx >= 0 {
			if awards, err := s.round.PlayCard(PlayerComputer, idx); err == nil {
				s.applyAwards(awards)
				return
			}
			s.log.WithField("card", move.Card.String()).Warn("strategy chose an illegal card")
		} else {
			s.log.WithField("card", move.Card.String()).Warn("strategy chose a card it does not hold")
		}
	}

	if _, err := s.declareAndApply(PlayerComputer); err == nil {
		return
	}
	// The strategy said go while holding a legal move; play it instead.
	moves := s.round.LegalMoves(PlayerComputer)
	if len(moves) == 0 {
		s.log.Error("no legal move available for fallback play")
		return
	}
	awards, err := s.round.PlayCard(PlayerComputer, moves[0])
	if err != nil {
		s.log.WithError(err).Error("fallback play failed")
		return
	}
	s.applyAwards(awards)
}

func indexOfCard(hand []domain.Card, c domain.Card) int {
	for i, hc := range hand {
		if hc == c {
			return i
		}
	}
	return -1
}

// applyAwards folds point awards into the board in order, ending the game
// the moment a player reaches the winning score.
func (s *Session) applyAwards(awards []domain.Award) {
	for _, a := range awards {
		if a.Points <= 0 {
			continue
		}
		s.board.Award(a.Player, a.Points)
		s.log.WithFields(logrus.Fields{
			"player": a.Player,
			"points": a.Points,
			"reason": a.Reason,
		}).Debug("points awarded")

		if winner, ok := s.board.Winner(); ok {
			s.gameOver = true
			s.winner = winner
			s.waiting = ActionNone
			s.message = fmt.Sprintf("Game over, %s wins", winner)
			s.recordResult()
			return
		}
	}
}

// recordResult reports the outcome to the stats recorder once. Failures
// are logged and ignored; they never affect gameplay.
func (s *Session) recordResult() {
	if s.recorded || s.userID == "" {
		return
	}
	s.recorded = true
	if err := s.recorder.Record(s.userID, s.opponentID, s.winner == PlayerHuman); err != nil {
		s.log.WithError(err).Warn("recording match result failed")
	}
}
