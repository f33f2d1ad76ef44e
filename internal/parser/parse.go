package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/suderio/emodice/internal/yahtzee"
)

// ErrMalformedRetention marks a retention answer that could not be read.
// It wraps yahtzee.ErrInvalidInput so a session rerolls everything.
var ErrMalformedRetention = fmt.Errorf("malformed retention: %w", yahtzee.ErrInvalidInput)

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// position converts a lexed integer. Values that overflow int become 0,
// which no hand or menu accepts.
func position(tok string) int {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return n
}

// ParseRetention reads a retention answer. An empty answer or "none" rerolls
// every die, "all" keeps the hand, a list of positions keeps those dice.
// Numbers outside the hand are passed through for the turn to drop.
// Anything else returns RerollAll together with ErrMalformedRetention.
func ParseRetention(input string) (yahtzee.Retention, error) {
	input = normalize(input)
	if input == "" {
		return yahtzee.RerollAll(), nil
	}
	ast, err := retentionParser.ParseString("", input)
	if err != nil {
		return yahtzee.RerollAll(), fmt.Errorf("%w: %q", ErrMalformedRetention, input)
	}
	switch {
	case ast.All:
		return yahtzee.KeepEverything(), nil
	case ast.None:
		return yahtzee.RerollAll(), nil
	}
	positions := make([]int, len(ast.Positions))
	for i, tok := range ast.Positions {
		positions[i] = position(tok)
	}
	return yahtzee.Keep(positions...), nil
}

// ParseCategory reads a category by menu position or name. A position outside
// 1..13 is returned as an invalid Category for the scorecard to reject; a
// non-numeric answer that names no category wraps yahtzee.ErrInvalidInput.
func ParseCategory(input string) (yahtzee.Category, error) {
	input = normalize(input)
	ast, err := categoryParser.ParseString("", input)
	if err != nil {
		return 0, MapError(input, err)
	}
	if ast.Position != nil {
		return yahtzee.Category(position(*ast.Position) - 1), nil
	}
	c, err := yahtzee.CategoryNamed(strings.Join(ast.Name, " "))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", yahtzee.ErrInvalidInput, err)
	}
	return c, nil
}

// ParseNumber reads a single non-negative integer.
func ParseNumber(input string) (int, error) {
	input = normalize(input)
	ast, err := numberParser.ParseString("", input)
	if err != nil {
		return 0, MapError(input, err)
	}
	if ast.Value < 0 {
		return 0, MapError(input, fmt.Errorf("negative number %d", ast.Value))
	}
	return ast.Value, nil
}

// ParseConfirm reads a yes/no answer.
func ParseConfirm(input string) (bool, error) {
	input = normalize(input)
	ast, err := confirmParser.ParseString("", input)
	if err != nil {
		return false, MapError(input, err)
	}
	return ast.Yes, nil
}

// IsInvalidInput reports whether err came from an answer worth asking again.
func IsInvalidInput(err error) bool {
	return errors.Is(err, yahtzee.ErrInvalidInput)
}
