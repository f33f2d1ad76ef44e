/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/emodice/internal/config"
	"github.com/suderio/emodice/internal/logging"
	"github.com/suderio/emodice/internal/parser"
	"github.com/suderio/emodice/internal/yahtzee"
)

var yahtzeeCmd = &cobra.Command{
	Use:   "yahtzee",
	Short: "Play a 13-round game of Yahtzee",
	Long: `Classic Yahtzee! 13 rounds, 3 rolls per turn.
Fill your scorecard to maximize your score.

Keep dice by position (e.g. '1 3 5'), 'all' to stop rolling, or press ENTER
to reroll everything. Score by category number (1-13) or name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			viper.Set(config.KeyUI, config.UIPlain)
		}
		a, err := newApp(viper.GetViper())
		if err != nil {
			return err
		}
		defer a.Close()
		return runYahtzee(a, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(yahtzeeCmd)
	yahtzeeCmd.Flags().Bool("plain", false, "play with line prompts instead of the full-screen interface")
}

func runYahtzee(a *app, p *prompter) error {
	if a.cfg.UI == config.UITUI {
		logging.Mute(a.log)
		return RunTUI(a.newSession())
	}
	return playYahtzee(a.newSession(), p)
}

// playYahtzee drives a session with line prompts until the card is full.
func playYahtzee(s *yahtzee.Session, p *prompter) error {
	p.banner("YAHTZEE")
	p.println("\nClassic Yahtzee! 13 rounds, 3 rolls per turn.")
	p.println("Fill your scorecard to maximize your score!")

	for !s.Complete() {
		p.printf("\n")
		p.banner(roundTitle(s.Round()))
		p.println(renderScorecard(s.Scorecard()))
		p.rolling()

		evt, err := s.PlayRound(p.keepDice, p.chooseCategory)
		if errors.Is(err, errQuit) {
			p.println("\nGame abandoned.")
			return nil
		}
		if err != nil {
			return err
		}
		p.printf("\n%s\n", evt.Message())

		if !s.Complete() {
			if err := p.pause("Press ENTER for next round..."); err != nil {
				if errors.Is(err, errQuit) {
					p.println("\nGame abandoned.")
					return nil
				}
				return err
			}
		}
	}

	res := s.Result()
	p.printf("\n")
	p.banner("GAME OVER!")
	p.println(renderScorecard(s.Scorecard()))
	p.printf("\n🏆 FINAL SCORE: %d points\n", res.Grand)
	p.printf("%s %s\n", tierBadge(res.Tier), res.Tier.Comment())
	return nil
}

func roundTitle(round int) string {
	return fmt.Sprintf("ROUND %d/%d", round, yahtzee.Rounds)
}

// keepDice is the retention provider for plain play.
func (p *prompter) keepDice(v yahtzee.TurnView) (yahtzee.Retention, error) {
	if v.Notice != "" {
		p.println(v.Notice)
	}
	p.printf("\n--- Roll %d/%d ---\n", v.Roll, yahtzee.MaxRolls)
	if len(v.Held) > 0 {
		p.printf("Kept: %s\n", v.Held)
	}
	p.printf("\nCurrent roll:\n%s\n", renderFaces(v.Hand.Faces()))

	line, err := p.ask("\n" + parser.RetentionUsage + ": ")
	if err != nil {
		return yahtzee.Retention{}, err
	}
	if isQuit(line) {
		return yahtzee.Retention{}, errQuit
	}
	return parser.ParseRetention(line)
}

// chooseCategory is the category provider for plain play.
func (p *prompter) chooseCategory(v yahtzee.ScoreView) (yahtzee.Category, error) {
	if v.Notice != "" {
		p.println(v.Notice)
	}
	if v.Notice == "" || v.Notice == yahtzee.NoticeMalformedRetention {
		p.printf("\nFINAL DICE:\n%s\n", renderFaces(v.Hand.Faces()))
		p.println(renderPotentials(v.Potentials))
	}

	line, err := p.ask("\n" + parser.CategoryUsage + ": ")
	if err != nil {
		return 0, err
	}
	if isQuit(line) {
		return 0, errQuit
	}
	return parser.ParseCategory(line)
}
