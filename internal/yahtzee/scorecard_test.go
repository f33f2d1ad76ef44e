package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillIsWriteOnce(t *testing.T) {
	for _, c := range Categories() {
		card := NewScorecard()
		require.NoError(t, card.Fill(c, 7))

		err := card.Fill(c, 12)
		assert.ErrorIs(t, err, ErrCategoryFilled)

		score, ok := card.Get(c)
		assert.True(t, ok)
		assert.Equal(t, 7, score)
	}
}

func TestFillRejectsBadInput(t *testing.T) {
	card := NewScorecard()
	assert.ErrorIs(t, card.Fill(Category(-1), 3), ErrUnknownCategory)
	assert.ErrorIs(t, card.Fill(Category(NumCategories), 3), ErrUnknownCategory)
	assert.Error(t, card.Fill(Chance, -1))
	assert.Equal(t, 0, card.FilledCount())
}

func TestBonusThreshold(t *testing.T) {
	fillUpper := func(scores [6]int) *Scorecard {
		card := NewScorecard()
		for i, s := range scores {
			require.NoError(t, card.Fill(Category(i), s))
		}
		return card
	}

	card := fillUpper([6]int{3, 6, 9, 12, 15, 18})
	assert.Equal(t, 63, card.UpperTotal())
	assert.Equal(t, UpperBonus, card.Bonus())
	assert.Equal(t, 98, card.GrandTotal())

	card = fillUpper([6]int{3, 6, 8, 12, 15, 18})
	assert.Equal(t, 62, card.UpperTotal())
	assert.Equal(t, 0, card.Bonus())
	assert.Equal(t, 62, card.GrandTotal())
}

func TestBonusCountsOnlyFilledCategories(t *testing.T) {
	card := NewScorecard()
	require.NoError(t, card.Fill(Sixes, 30))
	require.NoError(t, card.Fill(Fives, 25))
	assert.Equal(t, 0, card.Bonus())
	require.NoError(t, card.Fill(Fours, 8))
	assert.Equal(t, 63, card.UpperTotal())
	assert.Equal(t, UpperBonus, card.Bonus())
}

func TestTotalsStayConsistent(t *testing.T) {
	card := NewScorecard()
	hand := HandOf(6, 6, 6, 5, 5)
	prev := card.GrandTotal()
	for _, c := range Categories() {
		require.NoError(t, card.Fill(c, Score(hand, c)))
		grand := card.GrandTotal()
		assert.GreaterOrEqual(t, grand, prev)
		assert.Equal(t, card.UpperTotal()+card.Bonus()+card.LowerTotal(), grand)
		prev = grand
	}
	assert.True(t, card.IsComplete())
}

func TestPotentialsSkipFilled(t *testing.T) {
	card := NewScorecard()
	require.NoError(t, card.Fill(FullHouse, 25))
	require.NoError(t, card.Fill(Ones, 0))

	pots := card.Potentials(HandOf(2, 2, 2, 5, 5))
	require.Len(t, pots, NumCategories-2)
	assert.Equal(t, Twos, pots[0].Category)
	assert.Equal(t, 6, pots[0].Score)
	for _, p := range pots {
		assert.NotEqual(t, FullHouse, p.Category)
		assert.NotEqual(t, Ones, p.Category)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	card := NewScorecard()
	cp := card.Clone()
	require.NoError(t, cp.Fill(Chance, 20))
	assert.False(t, card.Filled(Chance))
}

func TestClassify(t *testing.T) {
	for _, tt := range []struct {
		total int
		want  Tier
	}{
		{0, TierKeepPracticing},
		{199, TierKeepPracticing},
		{200, TierGood},
		{249, TierGood},
		{250, TierGreat},
		{299, TierGreat},
		{300, TierExcellent},
		{1575, TierExcellent},
	} {
		assert.Equal(t, tt.want, Classify(tt.total), "total %d", tt.total)
	}
	assert.Equal(t, "keep practicing", TierKeepPracticing.String())
	assert.Equal(t, "EXCELLENT! You're a Yahtzee master!", TierExcellent.Comment())
}

func TestCategoryLookup(t *testing.T) {
	c, err := CategoryAt(9)
	require.NoError(t, err)
	assert.Equal(t, FullHouse, c)

	_, err = CategoryAt(14)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	_, err = CategoryAt(0)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	for in, want := range map[string]Category{
		"chance":          Chance,
		"Full House":      FullHouse,
		"three_of_a_kind": ThreeOfAKind,
		"YAHTZEE":         FiveOfAKind,
		"five of a kind":  FiveOfAKind,
		"sixes":           Sixes,
	} {
		got, err := CategoryNamed(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err = CategoryNamed("pair")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.Equal(t, 13, Chance.Position())
	assert.True(t, Sixes.Upper())
	assert.False(t, ThreeOfAKind.Upper())
}
