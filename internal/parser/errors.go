package parser

import (
	"fmt"

	"github.com/suderio/emodice/internal/yahtzee"
)

// MapError turns a participle failure into a human-friendly message.
// The result always wraps yahtzee.ErrInvalidInput.
func MapError(input string, err error) error {
	if input == "" {
		return fmt.Errorf("%w: please type an answer", yahtzee.ErrInvalidInput)
	}
	return fmt.Errorf("%w: I wasn't able to understand %q", yahtzee.ErrInvalidInput, input)
}

// Usage lines shown next to the prompts.
const (
	RetentionUsage = "Keep dice? (e.g., '1 3 5' or 'all' or press ENTER to reroll all)"
	CategoryUsage  = "Choose category to score (1-13)"
)
