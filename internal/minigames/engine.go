package minigames

import (
	"errors"
	"fmt"

	"github.com/suderio/emodice/internal/data"
	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/rules"
)

// Game keys, in menu order.
const (
	KeyRoll      = "roll"
	KeyHighest   = "highest"
	KeyTarget    = "target"
	KeySurvival  = "survival"
	KeyDoubles   = "doubles"
	KeySequences = "sequences"
	KeyHouse     = "house"
)

// Keys lists every game in menu order.
var Keys = []string{KeyRoll, KeyHighest, KeyTarget, KeySurvival, KeyDoubles, KeySequences, KeyHouse}

var (
	// ErrGameOver rejects a roll after a game has ended.
	ErrGameOver = errors.New("game is over")
	// ErrTargetRange rejects a target the dice cannot produce.
	ErrTargetRange = errors.New("target out of range")
)

// Outcome of a head to head comparison.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeFirst
	OutcomeSecond
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirst:
		return "first"
	case OutcomeSecond:
		return "second"
	}
	return "tie"
}

// Engine plays the collection's smaller games from manifest formulas.
type Engine struct {
	roller   *dice.Roller
	manifest *data.Manifest
	rules    *rules.Registry
	maxDice  int
}

// New binds the games to a roller, a manifest and a formula registry.
func New(roller *dice.Roller, manifest *data.Manifest, reg *rules.Registry, maxDice int) *Engine {
	if maxDice <= 0 {
		maxDice = dice.DefaultMaxDice
	}
	return &Engine{roller: roller, manifest: manifest, rules: reg, maxDice: maxDice}
}

// MaxDice is the largest count a single roll accepts.
func (e *Engine) MaxDice() int { return e.maxDice }

// Validate compiles every formula in the manifest.
func (e *Engine) Validate() error {
	for _, key := range Keys {
		def, err := e.manifest.Game(key)
		if err != nil {
			return err
		}
		for name, expr := range def.Rules {
			if err := e.rules.Check(expr); err != nil {
				return fmt.Errorf("game %s rule %s: %w", key, name, err)
			}
		}
	}
	return nil
}

// Info returns the display title and summary of a game.
func (e *Engine) Info(key string) (data.GameDef, error) {
	return e.manifest.Game(key)
}

func (e *Engine) rule(key, name string) (string, error) {
	def, err := e.manifest.Game(key)
	if err != nil {
		return "", err
	}
	expr, ok := def.Rule(name)
	if !ok {
		return "", fmt.Errorf("game %s has no %q rule", key, name)
	}
	return expr, nil
}

func (e *Engine) evalBool(key, name string, vars map[string]any) (bool, error) {
	expr, err := e.rule(key, name)
	if err != nil {
		return false, err
	}
	return e.rules.EvalBool(expr, vars)
}

func (e *Engine) evalInt(key, name string, vars map[string]any) (int, error) {
	expr, err := e.rule(key, name)
	if err != nil {
		return 0, err
	}
	return e.rules.EvalInt(expr, vars)
}

// compare decides a head to head between two totals with a game's rules.
func (e *Engine) compare(key, firstRule, secondRule string, first, second int) (Outcome, error) {
	vars := map[string]any{"player": first, "house": second}
	won, err := e.evalBool(key, firstRule, vars)
	if err != nil {
		return OutcomeTie, err
	}
	if won {
		return OutcomeFirst, nil
	}
	lost, err := e.evalBool(key, secondRule, vars)
	if err != nil {
		return OutcomeTie, err
	}
	if lost {
		return OutcomeSecond, nil
	}
	return OutcomeTie, nil
}

func (e *Engine) diceFor(key string, fallback int) int {
	def, err := e.manifest.Game(key)
	if err != nil || def.Dice <= 0 {
		return fallback
	}
	return def.Dice
}
