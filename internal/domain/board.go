package domain

// DefaultWinningScore is the classic game target.
const DefaultWinningScore = 121

// Pegs models one player's pair of board markers. Front is the current
// score, Rear the score before the latest award. Front >= Rear always.
type Pegs struct {
	Front int `json:"front"`
	Rear  int `json:"rear"`
}

// Board is the persistent score track shared by all rounds of a game.
type Board struct {
	WinningScore int
	pegs         map[string]*Pegs
}

// NewBoard creates a board for the given players. A winningScore of 0
// selects the default of 121.
func NewBoard(players []string, winningScore int) *Board {
	if winningScore <= 0 {
		winningScore = DefaultWinningScore
	}
	pegs := make(map[string]*Pegs, len(players))
	for _, p := range players {
		pegs[p] = &Pegs{}
	}
	return &Board{WinningScore: winningScore, pegs: pegs}
}

// Award moves the player's rear peg to the front peg, then advances the
// front peg by points, capped at the winning score.
func (b *Board) Award(player string, points int) {
	if points <= 0 {
		return
	}
	pegs := b.pegs[player]
	if pegs == nil {
		return
	}
	pegs.Rear = pegs.Front
	pegs.Front += points
	if pegs.Front > b.WinningScore {
		pegs.Front = b.WinningScore
	}
}

// Score returns the player's current (front peg) score.
func (b *Board) Score(player string) int {
	if pegs := b.pegs[player]; pegs != nil {
		return pegs.Front
	}
	return 0
}

// PegsFor returns a copy of the player's peg positions.
func (b *Board) PegsFor(player string) Pegs {
	if pegs := b.pegs[player]; pegs != nil {
		return *pegs
	}
	return Pegs{}
}

// SetPegs overwrites a player's peg positions. Intended for tests and
// state restoration.
func (b *Board) SetPegs(player string, pegs Pegs) {
	b.pegs[player] = &Pegs{Front: pegs.Front, Rear: pegs.Rear}
}

// Winner returns the first player at or beyond the winning score.
func (b *Board) Winner() (string, bool) {
	for player, pegs := range b.pegs {
		if pegs.Front >= b.WinningScore {
			return player, true
		}
	}
	return "", false
}
