package yahtzee

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suderio/emodice/internal/dice"
)

func keepAll(TurnView) (Retention, error) { return KeepEverything(), nil }

func firstOpen(v ScoreView) (Category, error) { return v.Potentials[0].Category, nil }

func TestSessionFullGame(t *testing.T) {
	s := NewSession(dice.NewRoller(dice.NewSeededSource(1)), nil)
	assert.Equal(t, 1, s.Round())

	for round := 1; round <= Rounds; round++ {
		evt, err := s.PlayRound(keepAll, firstOpen)
		require.NoError(t, err)
		assert.Equal(t, round, evt.Round)
		assert.Equal(t, Category(round-1), evt.Category)
		assert.Equal(t, Score(evt.Hand, evt.Category), evt.Score)
	}

	assert.True(t, s.Complete())
	assert.Equal(t, Rounds+1, s.Round())

	_, err := s.PlayRound(keepAll, firstOpen)
	assert.ErrorIs(t, err, ErrSessionComplete)

	events := s.Events()
	require.Len(t, events, 2*Rounds+1)
	last, ok := events[len(events)-1].(*GameCompletedEvent)
	require.True(t, ok)

	res := s.Result()
	assert.Equal(t, res, last.Result)
	assert.Equal(t, res.Upper+res.Bonus+res.Lower, res.Grand)
	assert.Equal(t, Classify(res.Grand), res.Tier)

	replayed, err := Replay(events)
	require.NoError(t, err)
	assert.Equal(t, s.Scorecard(), replayed)
}

func TestSessionRepromptsUsedCategory(t *testing.T) {
	s := NewSession(dice.NewRoller(dice.NewSeededSource(3)), nil)

	_, err := s.PlayRound(keepAll, func(ScoreView) (Category, error) { return Chance, nil })
	require.NoError(t, err)

	var notices []string
	answers := []Category{Chance, Category(40), Ones}
	evt, err := s.PlayRound(keepAll, func(v ScoreView) (Category, error) {
		notices = append(notices, v.Notice)
		c := answers[0]
		answers = answers[1:]
		return c, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Ones, evt.Category)
	assert.Equal(t, []string{"", NoticeInvalidCategory, NoticeInvalidCategory}, notices)
	assert.Equal(t, 2, s.Scorecard().FilledCount())
}

func TestSessionRepromptsBadNumber(t *testing.T) {
	s := NewSession(dice.NewRoller(nil), nil)
	calls := 0
	evt, err := s.PlayRound(keepAll, func(v ScoreView) (Category, error) {
		calls++
		if calls == 1 {
			return 0, fmt.Errorf("%w: not a number", ErrInvalidInput)
		}
		assert.Equal(t, NoticeBadNumber, v.Notice)
		return Chance, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Chance, evt.Category)
	assert.Equal(t, 2, calls)
}

func TestSessionMalformedRetentionRerollsAll(t *testing.T) {
	src := dice.NewSequence(
		1, 1, 1, 1, 1,
		2, 3, 4, 5, 6,
	)
	s := NewSession(dice.NewRoller(src), nil)

	var views []TurnView
	evt, err := s.PlayRound(func(v TurnView) (Retention, error) {
		views = append(views, v)
		if len(views) == 1 {
			return Keep(1, 2), fmt.Errorf("%w: %q", ErrInvalidInput, "x y")
		}
		return KeepEverything(), nil
	}, func(ScoreView) (Category, error) { return LargeStraight, nil })
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, 1, views[0].Roll)
	assert.Equal(t, 2, views[1].Roll)
	assert.Equal(t, NoticeMalformedRetention, views[1].Notice)
	assert.Equal(t, HandOf(2, 3, 4, 5, 6), evt.Hand)
	assert.Equal(t, 40, evt.Score)
}

func TestSessionThreeRollsMax(t *testing.T) {
	s := NewSession(dice.NewRoller(nil), nil)
	asked := 0
	evt, err := s.PlayRound(func(v TurnView) (Retention, error) {
		asked++
		return RerollAll(), nil
	}, firstOpen)
	require.NoError(t, err)
	assert.Equal(t, 2, asked)

	rolls := 0
	for _, e := range s.Events() {
		if e.Type() == EventDiceRolled {
			rolls++
		}
	}
	assert.Equal(t, MaxRolls, rolls)
	assert.Equal(t, Ones, evt.Category)
}

func TestSessionProviderErrorLeavesStateIntact(t *testing.T) {
	s := NewSession(dice.NewRoller(nil), nil)

	_, err := s.PlayRound(func(TurnView) (Retention, error) { return Retention{}, io.EOF }, firstOpen)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, s.Scorecard().FilledCount())
	require.NotNil(t, s.Turn())
	hand := s.Turn().Hand()

	_, err = s.PlayRound(keepAll, func(ScoreView) (Category, error) { return 0, io.ErrUnexpectedEOF })
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 0, s.Scorecard().FilledCount())

	evt, err := s.PlayRound(keepAll, firstOpen)
	require.NoError(t, err)
	assert.Equal(t, hand, evt.Hand)
	assert.Equal(t, 1, evt.Round)
}

func TestSessionStepAPI(t *testing.T) {
	s := NewSession(dice.NewRoller(dice.NewSequence(6, 6, 6, 6, 6)), nil)

	_, err := s.Commit(Chance)
	assert.ErrorIs(t, err, ErrTurnNotFinal)

	turn, err := s.StartRound()
	require.NoError(t, err)
	again, err := s.StartRound()
	require.NoError(t, err)
	assert.Same(t, turn, again)

	_, err = s.Commit(Chance)
	assert.ErrorIs(t, err, ErrTurnNotFinal)

	require.NoError(t, s.Reroll(KeepEverything()))
	assert.Equal(t, 6, s.ScoreView().Potentials[5].Score/5)

	evt, err := s.Commit(FiveOfAKind)
	require.NoError(t, err)
	assert.Equal(t, 50, evt.Score)
	assert.Nil(t, s.Turn())
	assert.Equal(t, 2, s.Round())
	assert.Equal(t, "✓ Scored 50 points in YAHTZEE!", evt.Message())
}

func TestReplayRejectsDoubleFill(t *testing.T) {
	_, err := Replay([]Event{
		&CategoryScoredEvent{Category: Chance, Score: 20},
		&CategoryScoredEvent{Category: Chance, Score: 22},
	})
	assert.ErrorIs(t, err, ErrCategoryFilled)
}
