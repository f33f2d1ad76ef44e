/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/minigames"
)

// gameRunner plays one mini-game on a prompter. Flags that were not set are asked for.
type gameRunner func(a *app, p *prompter, cmd *cobra.Command) error

func gameCommand(use, short string, run gameRunner) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(viper.GetViper())
			if err != nil {
				return err
			}
			defer a.Close()
			err = run(a, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), cmd)
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		},
	}
}

var (
	rollCmd      = gameCommand(minigames.KeyRoll, "Just roll some dice", runRoll)
	highestCmd   = gameCommand(minigames.KeyHighest, "Two players compete for the highest total", runHighest)
	targetCmd    = gameCommand(minigames.KeyTarget, "Hit the exact target number", runTarget)
	survivalCmd  = gameCommand(minigames.KeySurvival, "Don't get 3 skulls!", runSurvival)
	doublesCmd   = gameCommand(minigames.KeyDoubles, "Match dice for points", runDoubles)
	sequencesCmd = gameCommand(minigames.KeySequences, "Roll consecutive numbers", runSequences)
	houseCmd     = gameCommand(minigames.KeyHouse, "Play best of 3 against the computer", runHouse)
)

func init() {
	rollCmd.Flags().IntP("count", "n", 0, "number of dice to roll")
	rollCmd.Flags().Bool("bust", false, "include the skull face")

	highestCmd.Flags().IntP("count", "n", 0, "dice per player")

	targetCmd.Flags().IntP("count", "n", 0, "number of dice")
	targetCmd.Flags().IntP("target", "t", 0, "number to hit")

	rootCmd.AddCommand(rollCmd, highestCmd, targetCmd, survivalCmd, doublesCmd, sequencesCmd, houseCmd)
}

// intFlag returns a flag value, or asks for it when the flag was not given.
func intFlag(cmd *cobra.Command, p *prompter, name, prompt string, min, max int) (int, error) {
	if cmd != nil && cmd.Flags().Changed(name) {
		n, _ := cmd.Flags().GetInt(name)
		if n < min || n > max {
			return 0, fmt.Errorf("%w: --%s must be between %d and %d, got %d", dice.ErrDiceCount, name, min, max, n)
		}
		return n, nil
	}
	return p.askNumber(prompt, min, max)
}

func (a *app) title(p *prompter, key string) {
	def, err := a.games.Info(key)
	if err != nil {
		return
	}
	p.banner(strings.ToUpper(def.Title))
	if def.Summary != "" {
		p.printf("\n%s\n", def.Summary)
	}
}

func runRoll(a *app, p *prompter, cmd *cobra.Command) error {
	a.title(p, minigames.KeyRoll)
	count, err := intFlag(cmd, p, "count", fmt.Sprintf("\nHow many dice to roll (1-%d)? ", a.games.MaxDice()), 1, a.games.MaxDice())
	if err != nil {
		return err
	}
	var bust bool
	if cmd != nil && cmd.Flags().Changed("bust") {
		bust, _ = cmd.Flags().GetBool("bust")
	} else if bust, err = p.confirm("Include skull face? (y/n): "); err != nil {
		return err
	}

	p.rolling()
	res, err := a.games.Roll(count, bust)
	if err != nil {
		return err
	}
	p.printf("\n  %s\n\nTotal: %d\n", res.Faces, res.Total)
	return nil
}

func runHighest(a *app, p *prompter, cmd *cobra.Command) error {
	a.title(p, minigames.KeyHighest)
	limit := a.games.MaxHighestDice()
	count, err := intFlag(cmd, p, "count", fmt.Sprintf("\nDice per player (1-%d)? ", limit), 1, limit)
	if err != nil {
		return err
	}

	if err := p.pause("Player 1 - Press ENTER to roll..."); err != nil {
		return err
	}
	res, err := a.games.Highest(count)
	if err != nil {
		return err
	}
	p.printf("\n  %s\nPlayer 1 Total: %d\n", res.First, res.FirstTotal)
	if err := p.pause("Player 2 - Press ENTER to roll..."); err != nil {
		return err
	}
	p.printf("\n  %s\nPlayer 2 Total: %d\n", res.Second, res.SecondTotal)

	p.printf("\n%s\n", rule)
	switch res.Outcome {
	case minigames.OutcomeFirst:
		p.printf("🏆 PLAYER 1 WINS! (%d vs %d)\n", res.FirstTotal, res.SecondTotal)
	case minigames.OutcomeSecond:
		p.printf("🏆 PLAYER 2 WINS! (%d vs %d)\n", res.SecondTotal, res.FirstTotal)
	default:
		p.printf("🤝 TIE GAME! (Both scored %d)\n", res.FirstTotal)
	}
	p.println(rule)
	return nil
}

func runTarget(a *app, p *prompter, cmd *cobra.Command) error {
	a.title(p, minigames.KeyTarget)
	count, err := intFlag(cmd, p, "count", fmt.Sprintf("\nHow many dice (1-%d)? ", a.games.MaxDice()), 1, a.games.MaxDice())
	if err != nil {
		return err
	}
	target, err := intFlag(cmd, p, "target", fmt.Sprintf("Target number (%d-%d)? ", count, count*dice.Sides), count, count*dice.Sides)
	if err != nil {
		return err
	}
	g, err := a.games.NewTarget(count, target)
	if err != nil {
		return err
	}

	p.printf("\nTarget: %d\nYou have %d attempts!\n", g.Target(), g.MaxAttempts())
	for !g.Done() {
		if err := p.pause(fmt.Sprintf("Attempt %d/%d - Press ENTER to roll...", g.Attempts()+1, g.MaxAttempts())); err != nil {
			return err
		}
		att, err := g.Roll()
		if err != nil {
			return err
		}
		p.printf("  %s\nTotal: %d (off by %d)\n", att.Faces, att.Total, att.Diff)
		switch {
		case att.Hit:
			p.printf("\n🎯 BULLSEYE! You hit %d in %d attempt(s)!\n", g.Target(), att.Number)
		case att.Close:
			p.println("🔥 So close!")
		}
	}
	if !g.Won() {
		p.printf("\n💔 Out of attempts! Target was %d\n", g.Target())
	}
	return nil
}

func runSurvival(a *app, p *prompter, _ *cobra.Command) error {
	a.title(p, minigames.KeySurvival)
	p.println("Try to get the highest score before busting!")
	g := a.games.NewSurvival()

	for round := 1; !g.Done(); round++ {
		p.printf("\n--- Round %d ---\nScore: %d | Skulls: %s\n", round, g.Score(), strings.Repeat(dice.Bust.String(), g.Skulls()))
		roll, err := p.confirm("Roll dice? (y/n or 'quit'): ")
		if err != nil {
			return err
		}
		if !roll {
			g.Stop()
			p.printf("\n✋ Stopped with score: %d\n", g.Score())
			return nil
		}

		r, err := g.Roll()
		if err != nil {
			return err
		}
		p.printf("\n  %s\n", r.Faces)
		if r.Skulls > 0 {
			p.printf("⚠️  %d skull(s) this round!\n", r.Skulls)
		}
		if r.Busted {
			p.printf("\n💀 THREE SKULLS! GAME OVER!\nFinal Score: %d\n", r.Score)
			return nil
		}
		p.printf("Round score: +%d\n", r.Points)
	}
	return nil
}

func runDoubles(a *app, p *prompter, _ *cobra.Command) error {
	a.title(p, minigames.KeyDoubles)
	p.println("  • Pair (2 matching) = 2 points")
	p.println("  • Three of a kind = 10 points")
	p.println("  • Four of a kind = 25 points")
	p.println("  • Five of a kind = 50 points")
	p.println("  • Six of a kind = 100 points")
	if err := p.pause("Press ENTER to roll 6 dice..."); err != nil {
		return err
	}

	res, err := a.games.Doubles()
	if err != nil {
		return err
	}
	p.printf("\n  %s\n\n--- Scoring ---\n", res.Faces)
	if len(res.Matches) == 0 {
		p.println("  No matches - 0 points")
		return nil
	}
	for _, m := range res.Matches {
		p.printf("  %d × %s = %d points\n", m.Count, m.Face, m.Points)
	}
	p.printf("\n🏆 Total Score: %d points\n", res.Score)
	return nil
}

func runSequences(a *app, p *prompter, _ *cobra.Command) error {
	a.title(p, minigames.KeySequences)
	p.println("  • 3 in a row (e.g., ⚀⚁⚂) = 20 points")
	p.println("  • 4 in a row (e.g., ⚂⚃⚄⚅) = 50 points")
	p.println("  • 5 in a row = 100 points")
	p.println("  • Full sequence (⚀⚁⚂⚃⚄⚅) = 200 points!")
	if err := p.pause("Press ENTER to roll 6 dice..."); err != nil {
		return err
	}

	res, err := a.games.Sequences()
	if err != nil {
		return err
	}
	p.printf("\n  %s\n\n🎯 %s\n🏆 Score: %d points\n", res.Faces, res.Label(), res.Score)
	return nil
}

func runHouse(a *app, p *prompter, _ *cobra.Command) error {
	a.title(p, minigames.KeyHouse)
	g := a.games.NewHouse()

	playerWins, houseWins := 0, 0
	for round := 1; !g.Done(); round++ {
		p.printf("\n%s\nROUND %d\nScore: You %d - House %d\n%s\n", rule, round, playerWins, houseWins, rule)
		if err := p.pause("Press ENTER to roll your dice..."); err != nil {
			return err
		}
		r, err := g.Play()
		if err != nil {
			return err
		}
		p.printf("\nYour roll:\n  %s\nYour total: %d\n", r.Player, r.PlayerTotal)
		p.printf("\n🎰 House is rolling...\n  %s\nHouse total: %d\n", r.House, r.HouseTotal)
		switch r.Outcome {
		case minigames.OutcomeFirst:
			p.printf("\n✓ You win round %d!\n", r.Round)
		case minigames.OutcomeSecond:
			p.printf("\n✗ House wins round %d\n", r.Round)
		default:
			p.printf("\n🤝 Round %d is a tie (no points)\n", r.Round)
		}
		playerWins, houseWins = r.PlayerWins, r.HouseWins
	}

	switch g.Winner() {
	case minigames.OutcomeFirst:
		p.printf("\n🏆 YOU WIN THE MATCH! (%d-%d)\n", playerWins, houseWins)
	case minigames.OutcomeSecond:
		p.printf("\n💔 HOUSE WINS THE MATCH (%d-%d)\n", playerWins, houseWins)
	default:
		p.printf("\n🤝 THE MATCH IS A DRAW (%d-%d)\n", playerWins, houseWins)
	}
	return nil
}

// menuEntries are the games reachable from the menu, by choice number.
var menuEntries = []struct {
	label string
	run   gameRunner
}{
	{"Simple Roller       - Just roll some dice", runRoll},
	{"Highest Wins        - Two players compete", runHighest},
	{"Target Number       - Hit the exact target", runTarget},
	{"Skull Survival      - Don't get 3 skulls!", runSurvival},
	{"Doubles (Pairs)     - Match dice for points", runDoubles},
	{"Sequences           - Roll consecutive numbers", runSequences},
	{"Beat the House      - Play vs computer", runHouse},
	{"Yahtzee             - 13 rounds, fill the scorecard", func(a *app, p *prompter, _ *cobra.Command) error {
		return runYahtzee(a, p)
	}},
}

// runMenu loops over the game menu until the player picks 0 or input ends.
func runMenu(a *app, p *prompter) error {
	for {
		p.printf("\n")
		p.banner("🎲  EMOJI DICE GAMES COLLECTION  🎲")
		p.println("\nSelect a game:")
		for i, e := range menuEntries {
			p.printf("  %d. %s\n", i+1, e.label)
		}
		p.printf("\n  0. Quit\n\n%s\n", rule)

		choice, err := p.askNumber(fmt.Sprintf("Enter your choice (0-%d): ", len(menuEntries)), 0, len(menuEntries))
		if errors.Is(err, errQuit) || choice == 0 && err == nil {
			p.println("\n👋 Thanks for playing! Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		if err := menuEntries[choice-1].run(a, p, nil); err != nil && !errors.Is(err, errQuit) {
			return err
		}
	}
}
