package yahtzee

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned for a category outside the 13 scoring slots.
var ErrUnknownCategory = errors.New("unknown category")

// Category identifies one of the thirteen scoring slots. The zero value is Ones.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	FiveOfAKind
	Chance

	// NumCategories is the number of slots on a scorecard.
	NumCategories = int(Chance) + 1
)

type categoryDef struct {
	name  string
	key   string
	upper bool
}

var categoryTable = [NumCategories]categoryDef{
	Ones:          {"Ones", "ones", true},
	Twos:          {"Twos", "twos", true},
	Threes:        {"Threes", "threes", true},
	Fours:         {"Fours", "fours", true},
	Fives:         {"Fives", "fives", true},
	Sixes:         {"Sixes", "sixes", true},
	ThreeOfAKind:  {"Three of a Kind", "three_of_a_kind", false},
	FourOfAKind:   {"Four of a Kind", "four_of_a_kind", false},
	FullHouse:     {"Full House", "full_house", false},
	SmallStraight: {"Small Straight", "small_straight", false},
	LargeStraight: {"Large Straight", "large_straight", false},
	FiveOfAKind:   {"YAHTZEE!", "yahtzee", false},
	Chance:        {"Chance", "chance", false},
}

// Categories lists every category in scorecard order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the thirteen slots.
func (c Category) Valid() bool { return c >= Ones && c <= Chance }

// Name is the display name shown on the scorecard.
func (c Category) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryTable[c].name
}

// Key is the stable snake_case identifier.
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].key
}

// Position is the 1-based menu number.
func (c Category) Position() int { return int(c) + 1 }

// Upper reports whether c belongs to the upper section.
func (c Category) Upper() bool { return c.Valid() && categoryTable[c].upper }

func (c Category) String() string { return c.Name() }

// CategoryAt returns the category at a 1-based menu position.
func CategoryAt(position int) (Category, error) {
	c := Category(position - 1)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: position %d is not between 1 and %d", ErrUnknownCategory, position, NumCategories)
	}
	return c, nil
}

// CategoryNamed resolves a category from its key or display name.
// Matching ignores case, spaces, dashes and underscores; "yahtzee" and
// "five of a kind" both resolve to FiveOfAKind.
func CategoryNamed(name string) (Category, error) {
	norm := normalizeName(name)
	if norm == "fiveofakind" {
		return FiveOfAKind, nil
	}
	for i, def := range categoryTable {
		if normalizeName(def.key) == norm || normalizeName(def.name) == norm {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '!':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
