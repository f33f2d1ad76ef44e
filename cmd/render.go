package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/yahtzee"
)

// renderFaces prints dice glyphs over their 1-based positions.
func renderFaces(faces dice.Faces) string {
	header := make(table.Row, len(faces))
	row := make(table.Row, len(faces))
	for i, f := range faces {
		header[i] = strconv.Itoa(i + 1)
		row[i] = f.String()
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRow(row)
	return t.Render()
}

func renderScorecard(card *yahtzee.Scorecard) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("SCORECARD")
	t.AppendHeader(table.Row{"#", "Category", "Score"})

	section := func(upper bool) {
		for _, c := range yahtzee.Categories() {
			if c.Upper() != upper {
				continue
			}
			display := "-"
			if score, ok := card.Get(c); ok {
				display = strconv.Itoa(score)
			}
			t.AppendRow(table.Row{c.Position(), c.Name(), display})
		}
	}

	section(true)
	t.AppendSeparator()
	t.AppendRow(table.Row{"", "Upper Total", card.UpperTotal()})
	if bonus := card.Bonus(); bonus > 0 {
		t.AppendRow(table.Row{"", fmt.Sprintf("Bonus (%d+)", yahtzee.BonusThreshold), fmt.Sprintf("+%d", bonus)})
	}
	t.AppendSeparator()
	section(false)
	t.AppendSeparator()
	t.AppendRow(table.Row{"", "Lower Total", card.LowerTotal()})
	t.AppendFooter(table.Row{"", "Grand Total", card.GrandTotal()})
	return t.Render()
}

func renderPotentials(ps []yahtzee.Potential) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("AVAILABLE CATEGORIES")
	for _, p := range ps {
		t.AppendRow(table.Row{p.Category.Position(), p.Category.Name(), fmt.Sprintf("%3d points", p.Score)})
	}
	return t.Render()
}

func tierBadge(t yahtzee.Tier) string {
	switch t {
	case yahtzee.TierExcellent:
		return "🌟"
	case yahtzee.TierGreat:
		return "👏"
	case yahtzee.TierGood:
		return "👍"
	}
	return "🎲"
}
