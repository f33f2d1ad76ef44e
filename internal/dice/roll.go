package dice

import (
	"errors"
	"fmt"
)

// DefaultMaxDice is the largest single roll the collection allows unless configured otherwise.
const DefaultMaxDice = 28

// ErrDiceCount rejects a requested number of dice outside the allowed range.
var ErrDiceCount = errors.New("invalid number of dice")

// Roller produces independent, uniformly random faces from an injected Source.
type Roller struct {
	src Source
}

// NewRoller binds a Roller to src. A nil src uses crypto randomness.
func NewRoller(src Source) *Roller {
	if src == nil {
		src = CryptoSource{}
	}
	return &Roller{src: src}
}

// Roll throws count dice. With includeBust the skull face is a seventh possible outcome.
// Callers validate count beforehand; a non-positive count yields no dice.
func (r *Roller) Roll(count int, includeBust bool) Faces {
	if count <= 0 {
		return Faces{}
	}
	out := make(Faces, count)
	for i := range out {
		out[i] = r.face(includeBust)
	}
	return out
}

func (r *Roller) face(includeBust bool) Face {
	if includeBust {
		return Face(r.src.IntN(Sides + 1))
	}
	return Face(r.src.IntN(Sides) + 1)
}

// ValidateCount checks that count lies in 1..max.
func ValidateCount(count, max int) error {
	if count < 1 || count > max {
		return fmt.Errorf("%w: must be between 1 and %d, got %d", ErrDiceCount, max, count)
	}
	return nil
}
