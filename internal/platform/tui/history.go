package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/storage"
)

var historyTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// historyColumns is the column set for the session table.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Started", Width: 16},
		{Title: "User", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Ticks", Width: 9},
		{Title: "Hits", Width: 5},
		{Title: "Launched", Width: 8},
		{Title: "Duration", Width: 10},
	}
}

// SessionRows converts sessions into table rows.
func SessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		user := s.User
		if user == "" {
			user = "local"
		}
		launched := "no"
		if s.Launched {
			launched = "yes"
		}
		rows[i] = table.Row{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			user,
			strconv.FormatInt(s.Seed, 10),
			strconv.FormatUint(s.Ticks, 10),
			strconv.Itoa(s.BricksHit),
			launched,
			s.Duration().Truncate(time.Second).String(),
		}
	}
	return rows
}

func newHistoryTable(sessions []storage.Session, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(SessionRows(sessions)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

// RenderHistory renders sessions as a static table for non-interactive output.
func RenderHistory(sessions []storage.Session) string {
	if len(sessions) == 0 {
		return "No sessions recorded yet.\n"
	}
	t := newHistoryTable(sessions, len(sessions)+3, false)
	return t.View() + "\n"
}

type historyKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k historyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k historyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HistoryModel is a scrollable view of the session journal.
type HistoryModel struct {
	sessions []storage.Session
	table    table.Model
	keys     historyKeyMap
	help     help.Model
	height   int
}

// NewHistoryModel creates a history view over the given sessions.
func NewHistoryModel(sessions []storage.Session, height int) HistoryModel {
	return HistoryModel{
		sessions: sessions,
		table:    newHistoryTable(sessions, tableHeight(height), true),
		keys: historyKeyMap{
			Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:   help.New(),
		height: height,
	}
}

// tableHeight leaves room for the title and help lines.
func tableHeight(h int) int {
	return max(h-4, 3)
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and quit keys.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table.SetHeight(tableHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m HistoryModel) View() string {
	title := historyTitleStyle.Render(fmt.Sprintf("Sessions (%d)", len(m.sessions)))
	if len(m.sessions) == 0 {
		return title + "\nNo sessions recorded yet.\n\n" + m.help.View(m.keys)
	}
	return title + "\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunHistory shows the journal interactively.
func RunHistory(sessions []storage.Session, height int) error {
	p := tea.NewProgram(NewHistoryModel(sessions, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
