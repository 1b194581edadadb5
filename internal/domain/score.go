package domain

import "sort"

// HandScore is the point breakdown for a counted hand or crib.
type HandScore struct {
	Fifteens int // 2 per distinct subset summing to 15
	Pairs    int // 2 per unordered same-rank pair
	Runs     int // run length times multiplicity
	Flush    int // 4 or 5; crib requires all five suited
	Nobs     int // 1 for holding the jack of the starter suit
}

// Total returns the combined score.
func (s HandScore) Total() int {
	return s.Fifteens + s.Pairs + s.Runs + s.Flush + s.Nobs
}

// ScoreHand counts a 4-card hand (or crib) against the starter. The isCrib
// flag tightens the flush rule: a crib flush needs the starter suited too.
// The result is a pure function of the inputs, independent of card order.
func ScoreHand(hand []Card, starter Card, isCrib bool) HandScore {
	all := make([]Card, 0, len(hand)+1)
	all = append(all, hand...)
	all = append(all, starter)

	return HandScore{
		Fifteens: scoreFifteens(all),
		Pairs:    scorePairs(all),
		Runs:     scoreRuns(all),
		Flush:    scoreFlush(hand, starter, isCrib),
		Nobs:     scoreNobs(hand, starter),
	}
}

// scoreFifteens awards 2 points for every subset of two or more cards whose
// values sum to exactly 15. All subsets are enumerated; compound cases like
// two overlapping fifteens from the same five cards must each count.
func scoreFifteens(cards []Card) int {
	points := 0
	for mask := 1; mask < 1<<len(cards); mask++ {
		sum, size := 0, 0
		for i, c := range cards {
			if mask&(1<<i) != 0 {
				sum += c.Value()
				size++
			}
		}
		if size >= 2 && sum == 15 {
			points += 2
		}
	}
	return points
}

func scorePairs(cards []Card) int {
	points := 0
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Rank == cards[j].Rank {
				points += 2
			}
		}
	}
	return points
}

// scoreRuns finds maximal streaks of consecutive ranks with length >= 3 and
// awards length times the product of duplicate-rank counts. Sub-runs inside
// a longer streak are never counted separately.
func scoreRuns(cards []Card) int {
	counts := make(map[Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}
	ranks := make([]int, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)

	points := 0
	i := 0
	for i < len(ranks) {
		j := i
		multiplicity := counts[Rank(ranks[i])]
		for j+1 < len(ranks) && ranks[j+1] == ranks[j]+1 {
			j++
			multiplicity *= counts[Rank(ranks[j])]
		}
		if length := j - i + 1; length >= 3 {
			points += length * multiplicity
		}
		i = j + 1
	}
	return points
}

func scoreFlush(hand []Card, starter Card, isCrib bool) int {
	if len(hand) == 0 {
		return 0
	}
	suit := hand[0].Suit
	for _, c := range hand[1:] {
		if c.Suit != suit {
			return 0
		}
	}
	if starter.Suit == suit {
		return len(hand) + 1
	}
	if isCrib {
		return 0
	}
	return len(hand)
}

func scoreNobs(hand []Card, starter Card) int {
	for _, c := range hand {
		if c.Rank == Jack && c.Suit == starter.Suit {
			return 1
		}
	}
	return 0
}
