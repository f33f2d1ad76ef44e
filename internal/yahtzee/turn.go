package yahtzee

import (
	"errors"

	"github.com/suderio/emodice/internal/dice"
)

// MaxRolls is the number of rolls allowed per turn.
const MaxRolls = 3

var (
	// ErrTurnOver rejects a retention choice once the roll phase has ended.
	ErrTurnOver = errors.New("no rolls left this turn")
	// ErrTurnInProgress rejects starting a turn twice.
	ErrTurnInProgress = errors.New("turn already started")
	// ErrTurnNotStarted rejects a retention choice before the first roll.
	ErrTurnNotStarted = errors.New("turn not started")
)

// Phase is the state of a turn's roll sequence.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseRolled
	PhaseFinal
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseRolled:
		return "rolled"
	case PhaseFinal:
		return "final"
	}
	return "unknown"
}

// RetentionKind says which dice a player keeps between rolls.
type RetentionKind int

const (
	KeepNone RetentionKind = iota
	KeepAll
	KeepPositions
)

// Retention is the player's answer to "which dice do you keep?".
// Positions are 1-based indices into the current hand.
type Retention struct {
	Kind      RetentionKind
	Positions []int
}

// RerollAll keeps nothing.
func RerollAll() Retention { return Retention{Kind: KeepNone} }

// KeepEverything ends the roll phase with the current hand.
func KeepEverything() Retention { return Retention{Kind: KeepAll} }

// Keep holds the dice at the given 1-based positions.
func Keep(positions ...int) Retention {
	return Retention{Kind: KeepPositions, Positions: positions}
}

// normalize drops out of range and repeated positions, keeping the order
// the player listed them in, and returns 0-based indices.
func (r Retention) normalize() []int {
	seen := [HandSize]bool{}
	out := make([]int, 0, HandSize)
	for _, p := range r.Positions {
		i := p - 1
		if i < 0 || i >= HandSize || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}

// Turn runs the up-to-three roll sequence of a single round.
type Turn struct {
	roller *dice.Roller
	phase  Phase
	roll   int
	hand   Hand
	held   int
}

// NewTurn returns a turn in its initial state.
func NewTurn(roller *dice.Roller) *Turn {
	return &Turn{roller: roller}
}

// Start throws all five dice for the first roll.
func (t *Turn) Start() error {
	if t.phase != PhaseInitial {
		return ErrTurnInProgress
	}
	t.hand, _ = NewHand(t.roller.Roll(HandSize, false))
	t.roll = 1
	t.held = 0
	t.phase = PhaseRolled
	return nil
}

// Keep applies a retention choice. Keeping every die ends the roll phase;
// otherwise the dice not kept are rerolled and placed after the kept ones.
// The third roll always ends the roll phase.
func (t *Turn) Keep(r Retention) error {
	switch t.phase {
	case PhaseInitial:
		return ErrTurnNotStarted
	case PhaseFinal:
		return ErrTurnOver
	}

	var kept []int
	switch r.Kind {
	case KeepAll:
		t.phase = PhaseFinal
		return nil
	case KeepPositions:
		kept = r.normalize()
	}
	if len(kept) == HandSize {
		t.phase = PhaseFinal
		return nil
	}

	faces := make(dice.Faces, 0, HandSize)
	for _, i := range kept {
		faces = append(faces, t.hand[i])
	}
	faces = append(faces, t.roller.Roll(HandSize-len(kept), false)...)
	t.hand, _ = NewHand(faces)
	t.held = len(kept)
	t.roll++
	if t.roll >= MaxRolls {
		t.phase = PhaseFinal
	}
	return nil
}

// Phase returns the current state.
func (t *Turn) Phase() Phase { return t.phase }

// Final reports whether the roll phase is over.
func (t *Turn) Final() bool { return t.phase == PhaseFinal }

// Roll is the number of rolls made so far.
func (t *Turn) Roll() int { return t.roll }

// RollsLeft is how many rerolls remain.
func (t *Turn) RollsLeft() int {
	if t.phase != PhaseRolled {
		return 0
	}
	return MaxRolls - t.roll
}

// Hand is the current dice.
func (t *Turn) Hand() Hand { return t.hand }

// Held returns the dice carried over from the previous roll, for display.
func (t *Turn) Held() dice.Faces {
	return t.hand.Faces()[:t.held]
}
