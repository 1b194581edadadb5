package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// Opponent identifiers selectable when creating a game.
const (
	OpponentLinearB    = "linearb"
	OpponentNonLinearB = "nonlinearb"
	OpponentDeepPeg    = "deeppeg"
	OpponentMyrmidon   = "myrmidon"
)

// Opponents lists all selectable opponent ids.
func Opponents() []string {
	return []string{OpponentLinearB, OpponentNonLinearB, OpponentDeepPeg, OpponentMyrmidon}
}

// New creates the strategy for the given opponent id. A nil rng gets a
// time-seeded default.
func New(id string, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch id {
	case OpponentLinearB:
		return &LinearBot{}, nil
	case OpponentNonLinearB:
		return &NonLinearBot{rng: rng}, nil
	case OpponentDeepPeg:
		return &DeepPegBot{}, nil
	case OpponentMyrmidon:
		return &MyrmidonBot{}, nil
	default:
		return nil, fmt.Errorf("unknown opponent id %q", id)
	}
}
