package yahtzee

import "github.com/suderio/emodice/internal/dice"

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	FiveOfAKindScore   = 50
)

// tally is the multiset view of a hand that every rule works from.
type tally struct {
	counts [dice.Sides + 1]int
	sum    int
}

func tallyOf(h Hand) tally {
	fs := h.Faces()
	return tally{counts: fs.Counts(), sum: fs.Sum()}
}

func (t tally) maxOfAKind() int {
	m := 0
	for _, n := range t.counts {
		if n > m {
			m = n
		}
	}
	return m
}

// longestRun is the longest stretch of consecutive values present in the hand.
func (t tally) longestRun() int {
	best, run := 0, 0
	for v := 0; v <= dice.Sides; v++ {
		if t.counts[v] == 0 {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

type rule func(t tally) int

func upper(face int) rule {
	return func(t tally) int { return t.counts[face] * face }
}

func ofAKind(n int) rule {
	return func(t tally) int {
		if t.maxOfAKind() >= n {
			return t.sum
		}
		return 0
	}
}

func fullHouse(t tally) int {
	pair, triple := false, false
	for _, n := range t.counts {
		switch n {
		case 0:
		case 2:
			pair = true
		case 3:
			triple = true
		default:
			return 0
		}
	}
	if pair && triple {
		return FullHouseScore
	}
	return 0
}

func smallStraight(t tally) int {
	if t.longestRun() >= 4 {
		return SmallStraightScore
	}
	return 0
}

const (
	lowStraight  = 1<<1 | 1<<2 | 1<<3 | 1<<4 | 1<<5
	highStraight = 1<<2 | 1<<3 | 1<<4 | 1<<5 | 1<<6
)

// present is a bitmask of the distinct values in the hand.
func (t tally) present() int {
	mask := 0
	for v, n := range t.counts {
		if n > 0 {
			mask |= 1 << v
		}
	}
	return mask
}

func largeStraight(t tally) int {
	if p := t.present(); p == lowStraight || p == highStraight {
		return LargeStraightScore
	}
	return 0
}

func fiveOfAKind(t tally) int {
	if t.maxOfAKind() == HandSize {
		return FiveOfAKindScore
	}
	return 0
}

func chance(t tally) int { return t.sum }

var ruleTable = [NumCategories]rule{
	Ones:          upper(1),
	Twos:          upper(2),
	Threes:        upper(3),
	Fours:         upper(4),
	Fives:         upper(5),
	Sixes:         upper(6),
	ThreeOfAKind:  ofAKind(3),
	FourOfAKind:   ofAKind(4),
	FullHouse:     fullHouse,
	SmallStraight: smallStraight,
	LargeStraight: largeStraight,
	FiveOfAKind:   fiveOfAKind,
	Chance:        chance,
}

// Score returns what h is worth in category c. Unknown categories score 0.
func Score(h Hand, c Category) int {
	if !c.Valid() {
		return 0
	}
	return ruleTable[c](tallyOf(h))
}
