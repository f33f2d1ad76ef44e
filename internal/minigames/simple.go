package minigames

import (
	"github.com/suderio/emodice/internal/dice"
)

// RollResult is a plain roll and its total.
type RollResult struct {
	Faces dice.Faces
	Total int
}

// Roll throws count dice, optionally with the skull face.
func (e *Engine) Roll(count int, bust bool) (RollResult, error) {
	if err := dice.ValidateCount(count, e.maxDice); err != nil {
		return RollResult{}, err
	}
	faces := e.roller.Roll(count, bust)
	return RollResult{Faces: faces, Total: faces.Sum()}, nil
}

// HighestResult is a two player highest-total contest.
type HighestResult struct {
	First       dice.Faces
	Second      dice.Faces
	FirstTotal  int
	SecondTotal int
	Outcome     Outcome
}

// MaxHighestDice is the largest per-player count for Highest: half the
// dice limit, and never less than one.
func (e *Engine) MaxHighestDice() int { return max(e.maxDice/2, 1) }

// Highest rolls count dice for each of two players and compares totals.
func (e *Engine) Highest(count int) (HighestResult, error) {
	if err := dice.ValidateCount(count, e.MaxHighestDice()); err != nil {
		return HighestResult{}, err
	}
	res := HighestResult{
		First:  e.roller.Roll(count, false),
		Second: e.roller.Roll(count, false),
	}
	res.FirstTotal = res.First.Sum()
	res.SecondTotal = res.Second.Sum()

	out, err := e.compare(KeyHighest, "player_one_wins", "player_two_wins", res.FirstTotal, res.SecondTotal)
	if err != nil {
		return HighestResult{}, err
	}
	res.Outcome = out
	return res, nil
}

// Match is one scoring group of equal dice.
type Match struct {
	Face   dice.Face
	Count  int
	Points int
}

// DoublesResult scores a roll by its groups of matching dice.
type DoublesResult struct {
	Faces   dice.Faces
	Matches []Match
	Score   int
}

// Doubles rolls six dice and scores every pair or better.
func (e *Engine) Doubles() (DoublesResult, error) {
	res := DoublesResult{Faces: e.roller.Roll(e.diceFor(KeyDoubles, 6), false)}
	counts := res.Faces.Counts()
	for v := 1; v <= dice.Sides; v++ {
		if counts[v] < 2 {
			continue
		}
		pts, err := e.evalInt(KeyDoubles, "group", map[string]any{"count": counts[v]})
		if err != nil {
			return DoublesResult{}, err
		}
		if pts == 0 {
			continue
		}
		res.Matches = append(res.Matches, Match{Face: dice.Face(v), Count: counts[v], Points: pts})
		res.Score += pts
	}
	return res, nil
}

// SequencesResult scores a roll by its longest run of consecutive values.
type SequencesResult struct {
	Faces   dice.Faces
	Longest int
	Score   int
}

// Label describes the run that was found.
func (r SequencesResult) Label() string {
	switch {
	case r.Longest >= dice.Sides:
		return "FULL SEQUENCE! ⚀⚁⚂⚃⚄⚅"
	case r.Longest >= 5:
		return "5 in a row!"
	case r.Longest >= 4:
		return "4 in a row!"
	case r.Longest >= 3:
		return "3 in a row"
	}
	return "No sequence"
}

// Sequences rolls six dice and scores the longest run.
func (e *Engine) Sequences() (SequencesResult, error) {
	res := SequencesResult{Faces: e.roller.Roll(e.diceFor(KeySequences, 6), false)}
	counts := res.Faces.Counts()
	distinct, run := 0, 0
	for v := 1; v <= dice.Sides; v++ {
		if counts[v] == 0 {
			run = 0
			continue
		}
		distinct++
		run++
		if run > res.Longest {
			res.Longest = run
		}
	}
	score, err := e.evalInt(KeySequences, "score", map[string]any{"longest": res.Longest, "distinct": distinct})
	if err != nil {
		return SequencesResult{}, err
	}
	res.Score = score
	return res, nil
}
