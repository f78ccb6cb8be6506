package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hypermaze/internal/maze"
	"github.com/vovakirdan/hypermaze/internal/storage"
)

// maxHistoryRows is how many recent runs to load per variant.
const maxHistoryRows = 50

// HistoryKeyMap defines the key bindings for the run-history view.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextVariant, k.PrevVariant, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows recorded runs and per-variant stats.
type HistoryModel struct {
	store    *storage.Store
	variants []maze.Variant
	current  int
	table    table.Model
	keys     HistoryKeyMap
	help     help.Model
	stats    storage.RunStats
	loadErr  error
	quitting bool
}

// NewHistoryModel creates the history view over the given store.
func NewHistoryModel(store *storage.Store) HistoryModel {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Outcome", Width: 8},
		{Title: "Turns", Width: 6},
		{Title: "Cells", Width: 6},
		{Title: "Size", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m := HistoryModel{
		store:    store,
		variants: maze.Variants(),
		table:    t,
		keys:     DefaultHistoryKeyMap(),
		help:     help.New(),
	}
	m.reload()
	return m
}

// variant returns the currently selected variant.
func (m HistoryModel) variant() maze.Variant {
	return m.variants[m.current]
}

// reload fetches rows and stats for the current variant.
func (m *HistoryModel) reload() {
	m.loadErr = nil

	runs, err := m.store.RecentRuns(m.variant().ID, maxHistoryRows)
	if err != nil {
		m.loadErr = err
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.CellsVisited),
			fmt.Sprintf("%d", r.Size),
		})
	}
	m.table.SetRows(rows)

	stats, err := m.store.Stats(m.variant().ID)
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats = stats
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and table navigation.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.NextVariant):
			m.current = (m.current + 1) % len(m.variants)
			m.reload()
			return m, nil
		case key.Matches(keyMsg, m.keys.PrevVariant):
			m.current = (m.current - 1 + len(m.variants)) % len(m.variants)
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("Run history — %s", m.variant().Title))

	statsLine := statusStyle.Render(fmt.Sprintf(
		"plays %d  wins %d  trapped %d  quit %d  best win %s",
		m.stats.Plays, m.stats.Wins, m.stats.Traps, m.stats.Quits, bestTurns(m.stats),
	))

	body := m.table.View()
	if m.loadErr != nil {
		body = errorStyle.Render(fmt.Sprintf("cannot load history: %v", m.loadErr))
	} else if len(m.table.Rows()) == 0 {
		body = dimStyle.Render("No runs recorded yet.")
	}

	return header + "\n" + statsLine + "\n\n" + body + "\n\n" + m.help.View(m.keys) + "\n"
}

// bestTurns formats the best winning turn count.
func bestTurns(s storage.RunStats) string {
	if s.BestTurns == 0 {
		return "-"
	}
	return fmt.Sprintf("%d turns", s.BestTurns)
}

// RunHistory starts the history viewer.
func RunHistory(store *storage.Store) error {
	p := tea.NewProgram(NewHistoryModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
