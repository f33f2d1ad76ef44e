package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/emodice/internal/config"
	"github.com/suderio/emodice/internal/data"
	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/logging"
	"github.com/suderio/emodice/internal/minigames"
	"github.com/suderio/emodice/internal/rules"
	"github.com/suderio/emodice/internal/yahtzee"
)

func testApp(t *testing.T, values ...int) *app {
	t.Helper()
	m, err := data.NewLoader(nil).LoadManifest()
	require.NoError(t, err)
	reg, err := rules.NewRegistry()
	require.NoError(t, err)
	log, closer, err := logging.New(logging.Options{Quiet: true})
	require.NoError(t, err)

	cfg := config.Config{MaxDice: dice.DefaultMaxDice, UI: config.UIPlain}
	roller := dice.NewRoller(dice.NewSequence(values...))
	return &app{
		cfg:    cfg,
		log:    log,
		closer: closer,
		roller: roller,
		games:  minigames.New(roller, m, reg, cfg.MaxDice),
	}
}

func testPrompter(input string) (*prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader(input), out)
	p.delay = 0
	return p, out
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestNewAppFromViper(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyUI, config.UIPlain)
	v.Set(config.KeySeed, 99)
	v.Set(config.KeyMaxDice, 10)

	a, err := newApp(v)
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, 10, a.games.MaxDice())

	v.Set(config.KeyMaxDice, 0)
	_, err = newApp(v)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewAppLogsToStderrByDefault(t *testing.T) {
	a, err := newApp(viper.New())
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, config.UITUI, a.cfg.UI)
	assert.Equal(t, os.Stderr, a.log.Out)
}

func TestPlayYahtzeeFullGame(t *testing.T) {
	var input strings.Builder
	for i := 1; i <= yahtzee.Rounds; i++ {
		fmt.Fprintf(&input, "all\n%d\n", i)
		if i < yahtzee.Rounds {
			input.WriteString("\n")
		}
	}
	a := testApp(t, repeat(1, 5*yahtzee.Rounds)...)
	p, out := testPrompter(input.String())

	s := a.newSession()
	require.NoError(t, playYahtzee(s, p))

	assert.True(t, s.Complete())
	assert.Equal(t, 70, s.Result().Grand)
	text := out.String()
	assert.Contains(t, text, "ROUND 13/13")
	assert.Contains(t, text, "✓ Scored 50 points in YAHTZEE!")
	assert.Contains(t, text, "🏆 FINAL SCORE: 70 points")
	assert.Contains(t, text, "Keep practicing - you'll improve!")
}

func TestPlayYahtzeeReprompts(t *testing.T) {
	a := testApp(t, repeat(2, 10)...)
	p, out := testPrompter("maybe\nall\n14\nfoo\n2\nq\n")

	s := a.newSession()
	require.NoError(t, playYahtzee(s, p))

	text := out.String()
	assert.Contains(t, text, yahtzee.NoticeMalformedRetention)
	assert.Contains(t, text, yahtzee.NoticeInvalidCategory)
	assert.Contains(t, text, yahtzee.NoticeBadNumber)
	assert.Contains(t, text, "✓ Scored 10 points in Twos")
	assert.Contains(t, text, "Game abandoned.")

	score, ok := s.Scorecard().Get(yahtzee.Twos)
	assert.True(t, ok)
	assert.Equal(t, 10, score)
}

func TestPlayYahtzeeNegativeAnswers(t *testing.T) {
	a := testApp(t, 6, 6, 1, 2, 3, 6, 6, 6)
	p, out := testPrompter("1 2 -1\nall\n-2\n12\nq\n")

	s := a.newSession()
	require.NoError(t, playYahtzee(s, p))

	text := out.String()
	assert.NotContains(t, text, yahtzee.NoticeMalformedRetention)
	assert.NotContains(t, text, yahtzee.NoticeBadNumber)
	assert.Contains(t, text, yahtzee.NoticeInvalidCategory)
	assert.Contains(t, text, "✓ Scored 50 points in YAHTZEE!")
}

func TestPlayYahtzeeClosedInput(t *testing.T) {
	a := testApp(t)
	p, _ := testPrompter("")

	s := a.newSession()
	err := playYahtzee(s, p)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, s.Scorecard().FilledCount())
}

func TestRunRoll(t *testing.T) {
	a := testApp(t, 0, 6, 6)
	p, out := testPrompter("zero\n3\ny\n")

	require.NoError(t, runRoll(a, p, nil))
	text := out.String()
	assert.Contains(t, text, "ERROR: Please enter a valid number!")
	assert.Contains(t, text, "☠ ⚅ ⚅")
	assert.Contains(t, text, "Total: 12")
}

func TestRunRollFlags(t *testing.T) {
	a := testApp(t, 4, 4)
	p, out := testPrompter("")
	require.NoError(t, rollCmd.Flags().Set("count", "2"))
	require.NoError(t, rollCmd.Flags().Set("bust", "false"))
	t.Cleanup(func() {
		rollCmd.Flags().Lookup("count").Changed = false
		rollCmd.Flags().Lookup("bust").Changed = false
	})

	require.NoError(t, runRoll(a, p, rollCmd))
	assert.Contains(t, out.String(), "Total: 8")
}

func TestRunHighest(t *testing.T) {
	a := testApp(t, 6, 6, 1, 2)
	p, out := testPrompter("2\n\n\n")

	require.NoError(t, runHighest(a, p, nil))
	assert.Contains(t, out.String(), "🏆 PLAYER 1 WINS! (12 vs 3)")
}

func TestRunTarget(t *testing.T) {
	a := testApp(t, 2, 6)
	p, out := testPrompter("1\n7\n6\n\n\n")

	require.NoError(t, runTarget(a, p, nil))
	text := out.String()
	assert.Contains(t, text, "ERROR: Must be between 1 and 6")
	assert.Contains(t, text, "Total: 2 (off by 4)")
	assert.Contains(t, text, "🎯 BULLSEYE! You hit 6 in 2 attempt(s)!")
}

func TestRunSurvival(t *testing.T) {
	t.Run("stop", func(t *testing.T) {
		a := testApp(t, 2, 2, 2, 2, 2)
		p, out := testPrompter("y\nn\n")
		require.NoError(t, runSurvival(a, p, nil))
		assert.Contains(t, out.String(), "✋ Stopped with score: 10")
	})
	t.Run("bust", func(t *testing.T) {
		a := testApp(t, 0, 0, 0, 5, 5)
		p, out := testPrompter("yes\n")
		require.NoError(t, runSurvival(a, p, nil))
		text := out.String()
		assert.Contains(t, text, "3 skull(s) this round!")
		assert.Contains(t, text, "💀 THREE SKULLS! GAME OVER!")
	})
}

func TestRunDoublesAndSequences(t *testing.T) {
	a := testApp(t, 3, 3, 3, 1, 1, 6, 1, 2, 3, 4, 5, 6)

	p, out := testPrompter("\n")
	require.NoError(t, runDoubles(a, p, nil))
	assert.Contains(t, out.String(), "🏆 Total Score: 12 points")

	p, out = testPrompter("\n")
	require.NoError(t, runSequences(a, p, nil))
	assert.Contains(t, out.String(), "🏆 Score: 200 points")
}

func TestRunHouse(t *testing.T) {
	a := testApp(t, append(append(repeat(6, 5), repeat(1, 5)...), append(repeat(5, 5), repeat(2, 5)...)...)...)
	p, out := testPrompter("\n\n")

	require.NoError(t, runHouse(a, p, nil))
	text := out.String()
	assert.Contains(t, text, "✓ You win round 1!")
	assert.Contains(t, text, "🏆 YOU WIN THE MATCH! (2-0)")
}

func TestRunMenu(t *testing.T) {
	a := testApp(t, 5, 5)
	p, out := testPrompter("9\n1\n2\nn\n0\n")

	require.NoError(t, runMenu(a, p))
	text := out.String()
	assert.Contains(t, text, "EMOJI DICE GAMES COLLECTION")
	assert.Contains(t, text, "ERROR: Must be between 0 and 8")
	assert.Contains(t, text, "Total: 10")
	assert.Contains(t, text, "Thanks for playing! Goodbye!")
}

func TestRenderScorecard(t *testing.T) {
	card := yahtzee.NewScorecard()
	require.NoError(t, card.Fill(yahtzee.Sixes, 30))
	require.NoError(t, card.Fill(yahtzee.Fives, 25))
	require.NoError(t, card.Fill(yahtzee.Fours, 12))

	text := renderScorecard(card)
	assert.Contains(t, text, "SCORECARD")
	assert.Contains(t, text, "Sixes")
	assert.Contains(t, text, "67")
	assert.Contains(t, text, "+35")
	assert.Contains(t, text, "102")
}

func TestTUIModelPlaysRound(t *testing.T) {
	s := yahtzee.NewSession(dice.NewRoller(dice.NewSequence(4, 4, 4, 4, 1, 4)), nil)
	m := newYahtzeeModel(s)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.NotEqual(t, "Initializing...", m.View())
	assert.False(t, m.scoring())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1 2 3 4")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.scoring())
	assert.Equal(t, yahtzee.HandOf(4, 4, 4, 4, 4), s.Turn().Hand())
	assert.Contains(t, m.logContent, "Roll 2/3")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("all")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.scoring())

	// the picker starts on the first open category
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, s.Round())
	score, ok := s.Scorecard().Get(yahtzee.Ones)
	assert.True(t, ok)
	assert.Equal(t, 0, score)
	assert.Contains(t, m.logContent, "✓ Scored 0 points in Ones")
	assert.False(t, m.scoring())
}

func TestTUIModelMalformedRetention(t *testing.T) {
	s := yahtzee.NewSession(dice.NewRoller(dice.NewSequence(repeat(3, 10)...)), nil)
	m := newYahtzeeModel(s)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, yahtzee.NoticeMalformedRetention, m.notice)
	assert.Equal(t, 2, s.Turn().Roll())
}
