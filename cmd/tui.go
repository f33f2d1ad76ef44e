package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suderio/emodice/internal/parser"
	"github.com/suderio/emodice/internal/yahtzee"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94")).
			Bold(true)

	diceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F25D94"))
)

// categoryItem is one open category in the scoring picker.
type categoryItem yahtzee.Potential

func (c categoryItem) Title() string {
	return fmt.Sprintf("%2d. %-16s %3d", c.Category.Position(), c.Category.Name(), c.Score)
}
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.Category.Name() }

type yahtzeeModel struct {
	session    *yahtzee.Session
	textInput  textinput.Model
	viewport   viewport.Model
	categories list.Model
	logContent string
	seen       int
	notice     string
	err        error
	width      int
	height     int
}

func newYahtzeeModel(s *yahtzee.Session) *yahtzeeModel {
	ti := textinput.New()
	ti.Placeholder = "1 3 5, all, or ENTER to reroll all"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40

	vp := viewport.New(0, 0)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	picker := list.New([]list.Item{}, delegate, 40, yahtzee.NumCategories+2)
	picker.SetShowTitle(false)
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)

	m := &yahtzeeModel{
		session:    s,
		textInput:  ti,
		viewport:   vp,
		categories: picker,
		logContent: "Classic Yahtzee! 13 rounds, 3 rolls per turn.",
	}
	m.startRound()
	return m
}

func (m *yahtzeeModel) Init() tea.Cmd {
	return textinput.Blink
}

// scoring reports whether the turn is waiting for a category.
func (m *yahtzeeModel) scoring() bool {
	t := m.session.Turn()
	return t != nil && t.Final()
}

func (m *yahtzeeModel) startRound() {
	if m.session.Complete() {
		m.syncLog()
		return
	}
	if _, err := m.session.StartRound(); err != nil {
		m.err = err
	}
	m.syncLog()
	m.refreshPicker()
}

// syncLog appends the messages of events recorded since the last call.
func (m *yahtzeeModel) syncLog() {
	events := m.session.Events()
	for _, evt := range events[m.seen:] {
		if msg := evt.Message(); msg != "" {
			m.logContent += "\n" + msg
		}
	}
	m.seen = len(events)
	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
}

func (m *yahtzeeModel) refreshPicker() {
	var items []list.Item
	if m.scoring() {
		for _, p := range m.session.ScoreView().Potentials {
			items = append(items, categoryItem(p))
		}
	}
	m.categories.SetItems(items)
	m.categories.ResetSelected()
}

func (m *yahtzeeModel) reroll() tea.Cmd {
	val := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if isQuit(val) {
		return tea.Quit
	}

	m.notice = ""
	r, err := parser.ParseRetention(val)
	if err != nil {
		m.notice = yahtzee.NoticeMalformedRetention
	}
	if err := m.session.Reroll(r); err != nil {
		m.err = err
		return nil
	}
	m.syncLog()
	m.refreshPicker()
	return nil
}

func (m *yahtzeeModel) commit() {
	item, ok := m.categories.SelectedItem().(categoryItem)
	if !ok {
		return
	}
	m.notice = ""
	if _, err := m.session.Commit(item.Category); err != nil {
		if errors.Is(err, yahtzee.ErrCategoryFilled) || errors.Is(err, yahtzee.ErrUnknownCategory) {
			m.notice = yahtzee.NoticeInvalidCategory
			return
		}
		m.err = err
		return
	}
	m.startRound()
}

func (m *yahtzeeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
		cmd   tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch {
			case m.session.Complete() || m.err != nil:
				return m, tea.Quit
			case m.scoring():
				m.commit()
			default:
				cmd = m.reroll()
			}

		case tea.KeyUp, tea.KeyDown:
			if m.scoring() {
				m.categories, lsCmd = m.categories.Update(msg)
			} else {
				m.viewport, vpCmd = m.viewport.Update(msg)
			}

		default:
			if !m.scoring() {
				m.textInput, tiCmd = m.textInput.Update(msg)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.categories.SetWidth(msg.Width/2 - 4)
	}

	overhead := lipgloss.Height(titleStyle.Render("Dummy")) +
		lipgloss.Height(m.renderBoard()) +
		lipgloss.Height(m.renderControls()) +
		lipgloss.Height(infoStyle.Render("Dummy")) + 4
	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd, cmd)
}

// renderBoard places the dice next to the scorecard.
func (m *yahtzeeModel) renderBoard() string {
	var dice string
	if t := m.session.Turn(); t != nil {
		dice = fmt.Sprintf("Roll %d/%d\n\n%s", t.Roll(), yahtzee.MaxRolls, renderFaces(t.Hand().Faces()))
		if held := t.Held(); len(held) > 0 {
			dice += fmt.Sprintf("\n\nKept: %s", held)
		}
	} else {
		dice = "No dice in play."
	}
	card := renderScorecard(m.session.Scorecard())
	return lipgloss.JoinHorizontal(lipgloss.Top, diceStyle.Render(dice), cardStyle.Render(card))
}

func (m *yahtzeeModel) renderControls() string {
	var lines []string
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	if m.err != nil {
		lines = append(lines, noticeStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	switch {
	case m.session.Complete():
		res := m.session.Result()
		lines = append(lines,
			fmt.Sprintf("🏆 FINAL SCORE: %d points", res.Grand),
			fmt.Sprintf("%s %s", tierBadge(res.Tier), res.Tier.Comment()))
	case m.scoring():
		lines = append(lines, parser.CategoryUsage+":", pickerStyle.Render(m.categories.View()))
	default:
		lines = append(lines, parser.RetentionUsage, m.textInput.View())
	}
	return strings.Join(lines, "\n")
}

func (m *yahtzeeModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := "YAHTZEE | Game over"
	if !m.session.Complete() {
		header = fmt.Sprintf("YAHTZEE | Round %d/%d", m.session.Round(), yahtzee.Rounds)
	}
	help := "(esc to quit, enter to confirm, up/down to choose)"

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		m.renderBoard(),
		logBoxStyle.Width(m.width-4).Render(m.viewport.View()),
		m.renderControls(),
		infoStyle.Render(help),
	)
}

// RunTUI plays a session in a full-screen terminal interface.
func RunTUI(s *yahtzee.Session) error {
	m := newYahtzeeModel(s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
