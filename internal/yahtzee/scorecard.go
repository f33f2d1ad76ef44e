package yahtzee

import (
	"errors"
	"fmt"
)

const (
	// BonusThreshold is the upper subtotal that earns the bonus.
	BonusThreshold = 63
	// UpperBonus is awarded once the upper subtotal reaches BonusThreshold.
	UpperBonus = 35
)

// ErrCategoryFilled rejects a second write to the same category.
var ErrCategoryFilled = errors.New("category already used")

type slot struct {
	score  int
	filled bool
}

// Scorecard holds one write-once slot per category.
// The zero value is an empty scorecard ready for use.
type Scorecard struct {
	slots [NumCategories]slot
}

// NewScorecard returns an empty scorecard.
func NewScorecard() *Scorecard {
	return &Scorecard{}
}

// Potential is the value a hand would score in an open category.
type Potential struct {
	Category Category
	Score    int
}

// Potentials scores h against every unfilled category, in scorecard order.
func (s *Scorecard) Potentials(h Hand) []Potential {
	out := make([]Potential, 0, NumCategories)
	for _, c := range Categories() {
		if s.slots[c].filled {
			continue
		}
		out = append(out, Potential{Category: c, Score: Score(h, c)})
	}
	return out
}

// Fill records score in c. It fails without side effects if c is unknown,
// already filled, or score is negative.
func (s *Scorecard) Fill(c Category, score int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if score < 0 {
		return fmt.Errorf("negative score %d for %s", score, c)
	}
	if s.slots[c].filled {
		return fmt.Errorf("%w: %s", ErrCategoryFilled, c)
	}
	s.slots[c] = slot{score: score, filled: true}
	return nil
}

// Get returns the score recorded in c and whether c has been filled.
func (s *Scorecard) Get(c Category) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	sl := s.slots[c]
	return sl.score, sl.filled
}

// Filled reports whether c already holds a score.
func (s *Scorecard) Filled(c Category) bool {
	_, ok := s.Get(c)
	return ok
}

// FilledCount is the number of categories scored so far.
func (s *Scorecard) FilledCount() int {
	n := 0
	for _, sl := range s.slots {
		if sl.filled {
			n++
		}
	}
	return n
}

// IsComplete reports whether all thirteen categories are filled.
func (s *Scorecard) IsComplete() bool { return s.FilledCount() == NumCategories }

func (s *Scorecard) sectionTotal(upper bool) int {
	total := 0
	for _, c := range Categories() {
		if c.Upper() == upper && s.slots[c].filled {
			total += s.slots[c].score
		}
	}
	return total
}

// UpperTotal sums the filled upper categories.
func (s *Scorecard) UpperTotal() int { return s.sectionTotal(true) }

// LowerTotal sums the filled lower categories.
func (s *Scorecard) LowerTotal() int { return s.sectionTotal(false) }

// Bonus is UpperBonus once the filled upper categories reach BonusThreshold.
func (s *Scorecard) Bonus() int {
	if s.UpperTotal() >= BonusThreshold {
		return UpperBonus
	}
	return 0
}

// GrandTotal is upper subtotal plus bonus plus lower subtotal.
func (s *Scorecard) GrandTotal() int {
	return s.UpperTotal() + s.Bonus() + s.LowerTotal()
}

// Clone returns an independent copy for read-only display.
func (s *Scorecard) Clone() *Scorecard {
	cp := *s
	return &cp
}
