package yahtzee

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventDiceRolled     EventType = "DiceRolled"
	EventCategoryScored EventType = "CategoryScored"
	EventGameCompleted  EventType = "GameCompleted"
)

// Event records one state change of a session.
type Event interface {
	Type() EventType
	Apply(card *Scorecard) error
	Message() string
}

// DiceRolledEvent logs a roll within a turn.
type DiceRolledEvent struct {
	Round int
	Roll  int
	Hand  Hand
	Held  int
}

func (e *DiceRolledEvent) Type() EventType             { return EventDiceRolled }
func (e *DiceRolledEvent) Apply(card *Scorecard) error { return nil }
func (e *DiceRolledEvent) Message() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Roll %d/%d: %s", e.Roll, MaxRolls, e.Hand)
	if e.Held > 0 {
		fmt.Fprintf(&sb, " (kept %s)", e.Hand.Faces()[:e.Held])
	}
	return sb.String()
}

// CategoryScoredEvent commits a hand to a category.
type CategoryScoredEvent struct {
	Round    int
	Category Category
	Hand     Hand
	Score    int
}

func (e *CategoryScoredEvent) Type() EventType { return EventCategoryScored }
func (e *CategoryScoredEvent) Apply(card *Scorecard) error {
	return card.Fill(e.Category, e.Score)
}
func (e *CategoryScoredEvent) Message() string {
	return fmt.Sprintf("✓ Scored %d points in %s", e.Score, e.Category.Name())
}

// GameCompletedEvent closes the session after the last round.
type GameCompletedEvent struct {
	Result Result
}

func (e *GameCompletedEvent) Type() EventType { return EventGameCompleted }
func (e *GameCompletedEvent) Apply(card *Scorecard) error {
	if !card.IsComplete() {
		return fmt.Errorf("game completed with %d of %d categories filled", card.FilledCount(), NumCategories)
	}
	return nil
}
func (e *GameCompletedEvent) Message() string {
	return fmt.Sprintf("🏆 FINAL SCORE: %d points\n%s", e.Result.Grand, e.Result.Tier.Comment())
}

// Replay folds an event log into a fresh scorecard.
func Replay(events []Event) (*Scorecard, error) {
	card := NewScorecard()
	for _, evt := range events {
		if err := evt.Apply(card); err != nil {
			return nil, fmt.Errorf("replaying %s: %w", evt.Type(), err)
		}
	}
	return card, nil
}
