package yahtzee

import (
	"fmt"

	"github.com/suderio/emodice/internal/dice"
)

// HandSize is the number of dice in a Yahtzee hand.
const HandSize = 5

// Hand is the five dice a player holds. Order only matters for display and
// for keeping dice by position.
type Hand [HandSize]dice.Face

// NewHand builds a hand from exactly five faces.
func NewHand(faces dice.Faces) (Hand, error) {
	var h Hand
	if len(faces) != HandSize {
		return h, fmt.Errorf("a hand holds %d dice, got %d", HandSize, len(faces))
	}
	copy(h[:], faces)
	return h, nil
}

// HandOf builds a hand from numeric values. Out of range values become bust faces.
func HandOf(a, b, c, d, e int) Hand {
	var h Hand
	for i, v := range [HandSize]int{a, b, c, d, e} {
		h[i], _ = dice.FaceOf(v)
	}
	return h
}

// Faces returns the hand as a slice.
func (h Hand) Faces() dice.Faces {
	out := make(dice.Faces, HandSize)
	copy(out, h[:])
	return out
}

// Sum totals the numeric values of the hand.
func (h Hand) Sum() int { return h.Faces().Sum() }

func (h Hand) String() string { return h.Faces().String() }
