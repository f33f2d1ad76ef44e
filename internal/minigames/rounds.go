package minigames

import (
	"fmt"

	"github.com/suderio/emodice/internal/dice"
)

// Target is a game of hitting an exact total within a number of attempts.
type Target struct {
	e           *Engine
	count       int
	target      int
	attempt     int
	maxAttempts int
	hit         bool
}

// Attempt is one roll at the target.
type Attempt struct {
	Number int
	Faces  dice.Faces
	Total  int
	Diff   int
	Hit    bool
	Close  bool
}

// NewTarget starts a target game. target must be reachable with count dice.
func (e *Engine) NewTarget(count, target int) (*Target, error) {
	if err := dice.ValidateCount(count, e.maxDice); err != nil {
		return nil, err
	}
	if target < count || target > count*dice.Sides {
		return nil, fmt.Errorf("%w: must be between %d and %d, got %d", ErrTargetRange, count, count*dice.Sides, target)
	}
	def, err := e.manifest.Game(KeyTarget)
	if err != nil {
		return nil, err
	}
	attempts := def.Attempts
	if attempts <= 0 {
		attempts = 10
	}
	return &Target{e: e, count: count, target: target, maxAttempts: attempts}, nil
}

// Roll makes the next attempt.
func (t *Target) Roll() (Attempt, error) {
	if t.Done() {
		return Attempt{}, ErrGameOver
	}
	a := Attempt{Number: t.attempt + 1, Faces: t.e.roller.Roll(t.count, false)}
	a.Total = a.Faces.Sum()
	a.Diff = a.Total - t.target
	if a.Diff < 0 {
		a.Diff = -a.Diff
	}

	vars := map[string]any{"total": a.Total, "target": t.target, "diff": a.Diff}
	hit, err := t.e.evalBool(KeyTarget, "hit", vars)
	if err != nil {
		return Attempt{}, err
	}
	a.Hit = hit
	if !hit {
		if a.Close, err = t.e.evalBool(KeyTarget, "close", vars); err != nil {
			return Attempt{}, err
		}
	}
	t.attempt = a.Number
	t.hit = hit
	return a, nil
}

// Target is the number to hit.
func (t *Target) Target() int { return t.target }

// Attempts is the number of rolls made so far.
func (t *Target) Attempts() int { return t.attempt }

// MaxAttempts is the number of rolls allowed.
func (t *Target) MaxAttempts() int { return t.maxAttempts }

// Done reports whether the target was hit or the attempts ran out.
func (t *Target) Done() bool { return t.hit || t.attempt >= t.maxAttempts }

// Won reports whether the target was hit.
func (t *Target) Won() bool { return t.hit }

// Survival is a push-your-luck game: roll with skulls until you stop or bust.
type Survival struct {
	e       *Engine
	dice    int
	round   int
	score   int
	skulls  int
	stopped bool
	busted  bool
}

// SurvivalRound is one roll of a survival game.
type SurvivalRound struct {
	Round       int
	Faces       dice.Faces
	Skulls      int
	Points      int
	TotalSkulls int
	Score       int
	Busted      bool
}

// NewSurvival starts a survival game.
func (e *Engine) NewSurvival() *Survival {
	return &Survival{e: e, dice: e.diceFor(KeySurvival, 5)}
}

// Roll throws the dice with the skull face and checks for a bust.
func (s *Survival) Roll() (SurvivalRound, error) {
	if s.Done() {
		return SurvivalRound{}, ErrGameOver
	}
	r := SurvivalRound{Round: s.round + 1, Faces: s.e.roller.Roll(s.dice, true)}
	r.Skulls = r.Faces.Busts()
	r.Points = r.Faces.Sum()
	r.TotalSkulls = s.skulls + r.Skulls
	r.Score = s.score + r.Points

	busted, err := s.e.evalBool(KeySurvival, "bust", map[string]any{"skulls": r.TotalSkulls})
	if err != nil {
		return SurvivalRound{}, err
	}
	r.Busted = busted
	s.round, s.skulls, s.score, s.busted = r.Round, r.TotalSkulls, r.Score, busted
	return r, nil
}

// Stop banks the current score.
func (s *Survival) Stop() { s.stopped = true }

// Done reports whether the player stopped or busted.
func (s *Survival) Done() bool { return s.stopped || s.busted }

// Busted reports whether the game ended on skulls.
func (s *Survival) Busted() bool { return s.busted }

// Score is the running total.
func (s *Survival) Score() int { return s.score }

// Skulls is the number of skulls rolled so far.
func (s *Survival) Skulls() int { return s.skulls }

// House is a best-of-N match against the computer.
type House struct {
	e          *Engine
	dice       int
	rounds     int
	round      int
	playerWins int
	houseWins  int
}

// HouseRound is one round against the house.
type HouseRound struct {
	Round       int
	Player      dice.Faces
	House       dice.Faces
	PlayerTotal int
	HouseTotal  int
	Outcome     Outcome
	PlayerWins  int
	HouseWins   int
}

// NewHouse starts a match against the house.
func (e *Engine) NewHouse() *House {
	rounds := 3
	if def, err := e.manifest.Game(KeyHouse); err == nil && def.Rounds > 0 {
		rounds = def.Rounds
	}
	return &House{e: e, dice: e.diceFor(KeyHouse, 5), rounds: rounds}
}

// Play rolls one round for the player and then for the house.
func (h *House) Play() (HouseRound, error) {
	if h.Done() {
		return HouseRound{}, ErrGameOver
	}
	r := HouseRound{
		Round:  h.round + 1,
		Player: h.e.roller.Roll(h.dice, false),
		House:  h.e.roller.Roll(h.dice, false),
	}
	r.PlayerTotal = r.Player.Sum()
	r.HouseTotal = r.House.Sum()

	out, err := h.e.compare(KeyHouse, "player_wins", "house_wins", r.PlayerTotal, r.HouseTotal)
	if err != nil {
		return HouseRound{}, err
	}
	r.Outcome = out
	h.round = r.Round
	switch out {
	case OutcomeFirst:
		h.playerWins++
	case OutcomeSecond:
		h.houseWins++
	}
	r.PlayerWins = h.playerWins
	r.HouseWins = h.houseWins
	return r, nil
}

// Rounds is the maximum number of rounds in the match.
func (h *House) Rounds() int { return h.rounds }

// Done reports whether someone reached a majority or the rounds ran out.
func (h *House) Done() bool {
	need := h.rounds/2 + 1
	return h.playerWins >= need || h.houseWins >= need || h.round >= h.rounds
}

// Winner is the match result once Done.
func (h *House) Winner() Outcome {
	switch {
	case h.playerWins > h.houseWins:
		return OutcomeFirst
	case h.houseWins > h.playerWins:
		return OutcomeSecond
	}
	return OutcomeTie
}
