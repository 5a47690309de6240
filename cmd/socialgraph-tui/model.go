package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/socialgraph/pkg/network"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	tableBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			MarginRight(2)

	detailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2).
			Width(36)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	mutedStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// model browses a snapshot of the network: people on the left, the selected
// person's friends on the right.
type model struct {
	entries []network.Entry
	stats   network.Stats
	people  table.Model
	help    help.Model
	keys    keyMap
	width   int
	height  int
}

func initialModel(entries []network.Entry, stats network.Stats) model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Friends", Width: 8},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{e.Name, strconv.Itoa(len(e.Friends))}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(rows), 1), 15)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)

	return model{
		entries: entries,
		stats:   stats,
		people:  t,
		help:    help.New(),
		keys:    keys,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.people, cmd = m.people.Update(msg)
	return m, cmd
}

// selected returns the entry under the cursor.
func (m model) selected() (network.Entry, bool) {
	i := m.people.Cursor()
	if i < 0 || i >= len(m.entries) {
		return network.Entry{}, false
	}
	return m.entries[i], true
}

func (m model) detailView() string {
	e, ok := m.selected()
	if !ok {
		return mutedStyle.Render("The network is empty")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(e.Name))
	b.WriteString("\n\n")
	if len(e.Friends) == 0 {
		b.WriteString(mutedStyle.Render("(no friends)"))
	}
	for i, f := range e.Friends {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f)
	}
	return b.String()
}

func (m model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Social Network  %d people · %d friendships",
		m.stats.People, m.stats.Friendships))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		tableBoxStyle.Render(m.people.View()),
		detailBoxStyle.Render(m.detailView()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.NewStyle().MarginLeft(2).MarginTop(1).Render(body),
		helpStyle.Render(m.help.View(m.keys)),
	)
}
