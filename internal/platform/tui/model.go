// Package tui provides the Bubble Tea integration for hypermaze.
// It owns the interaction loop: reading command tokens, dispatching them to
// the maze engine, and rendering results. The engine itself never decides
// when the session ends; terminal outcomes are handled here.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hypermaze/internal/config"
	"github.com/vovakirdan/hypermaze/internal/core"
	"github.com/vovakirdan/hypermaze/internal/maze"
	"github.com/vovakirdan/hypermaze/internal/storage"
)

// SessionState tracks the whole-game state machine.
type SessionState int

const (
	StateActive SessionState = iota
	StateTrapped
	StateExited
	StateQuit
)

// maxLogLines is how many recent messages stay visible.
const maxLogLines = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the Bubble Tea model for one maze session.
type Model struct {
	cfg     config.Config
	variant maze.Variant
	store   *storage.Store
	eng     *maze.Engine
	markers maze.Markers

	input     textinput.Model
	screen    *core.Screen
	log       []string
	state     SessionState
	showSlice bool
	showMap   bool
	showHelp  bool
	width     int
	height    int
	saved     bool
	quitting  bool
}

// NewModel creates a model and a fresh engine for the given variant.
// The starting cell is drawn from the secure sampler.
func NewModel(variant maze.Variant, cfg config.Config, store *storage.Store, width, height int) (Model, error) {
	eng, err := maze.New(variant, cfg.SizeFor(variant.ID), core.CryptoSampler())
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "command (try 'help')"
	input.Prompt = "> "
	input.CharLimit = 16
	input.Focus()

	defaults := maze.DefaultMarkers()
	markers := maze.Markers{
		Player:  config.FirstRune(cfg.Markers.Player, defaults.Player),
		Exit:    config.FirstRune(cfg.Markers.Exit, defaults.Exit),
		Trap:    config.FirstRune(cfg.Markers.Trap, defaults.Trap),
		Safe:    config.FirstRune(cfg.Markers.Safe, defaults.Safe),
		Unknown: config.FirstRune(cfg.Markers.Unknown, defaults.Unknown),
	}

	m := Model{
		cfg:       cfg,
		variant:   variant,
		store:     store,
		eng:       eng,
		markers:   markers,
		input:     input,
		screen:    core.NewScreen(eng.SliceWidth(), eng.SliceHeight()),
		showSlice: variant.Temporal,
		width:     width,
		height:    height,
	}
	m.pushLog(fmt.Sprintf("You wake up at %s. The exit is at %s.", eng.Position(), eng.Exit()))
	return m, nil
}

// Engine exposes the underlying engine, mainly for tests.
func (m Model) Engine() *maze.Engine {
	return m.eng
}

// State returns the session state.
func (m Model) State() SessionState {
	return m.state
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.finish(StateQuit)
	}

	// Terminal banner: restart or leave
	if m.state != StateActive {
		switch msg.String() {
		case "r":
			return m.restart()
		case "q", "enter", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		token := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		return m.dispatch(token)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch executes one command token.
func (m Model) dispatch(token string) (tea.Model, tea.Cmd) {
	switch token {
	case "":
		return m, nil

	case "exit":
		return m.finish(StateQuit)

	case "help":
		m.showHelp = !m.showHelp
		return m, nil

	case "view":
		if m.variant.Temporal {
			m.showSlice = !m.showSlice
			return m, nil
		}

	case "map":
		if m.variant.Temporal {
			m.showMap = !m.showMap
			return m, nil
		}
	}

	result, err := m.eng.Move(token)
	switch {
	case errors.Is(err, maze.ErrOutOfBounds):
		m.pushLog(errorStyle.Render("You hit a wall."))
		return m, nil
	case errors.Is(err, maze.ErrInvalidDirection):
		m.pushLog(errorStyle.Render(fmt.Sprintf("Unknown command %q. Type 'help'.", token)))
		return m, nil
	case err != nil:
		m.pushLog(errorStyle.Render(err.Error()))
		return m, nil
	}

	return m.applyMove(result)
}

// applyMove turns a successful MoveResult into log output and, for trap or
// exit cells, a terminal state.
func (m Model) applyMove(result maze.MoveResult) (tea.Model, tea.Cmd) {
	switch {
	case result.Trap:
		m.pushLog(loseStyle.Render(fmt.Sprintf("Turn %d: %s is a trap. You are dead.", result.Turn, result.Position)))
		return m.finish(StateTrapped)
	case result.Exit:
		m.pushLog(winStyle.Render(fmt.Sprintf("Turn %d: you reached the exit at %s!", result.Turn, result.Position)))
		return m.finish(StateExited)
	default:
		m.pushLog(fmt.Sprintf("Turn %d: moved to %s. Safe, for now.", result.Turn, result.Position))
		return m, nil
	}
}

// finish transitions to a terminal state and records the run.
func (m Model) finish(state SessionState) (tea.Model, tea.Cmd) {
	m.state = state
	m.saveRun()
	if state == StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// restart discards the finished engine and starts a fresh run.
func (m Model) restart() (tea.Model, tea.Cmd) {
	fresh, err := NewModel(m.variant, m.cfg, m.store, m.width, m.height)
	if err != nil {
		m.pushLog(errorStyle.Render(fmt.Sprintf("Restart failed: %v", err)))
		return m, nil
	}
	return fresh, fresh.Init()
}

// saveRun records the finished run once, best effort.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	outcome := storage.OutcomeQuit
	switch m.state {
	case StateExited:
		outcome = storage.OutcomeWon
	case StateTrapped:
		outcome = storage.OutcomeTrapped
	}

	//nolint:errcheck // Best-effort save, session ends regardless
	m.store.SaveRun(storage.RunRecord{
		Variant:      m.variant.ID,
		Size:         m.eng.Size(),
		Outcome:      outcome,
		Turns:        m.eng.Turn(),
		CellsVisited: m.eng.VisitedCount(),
	})
}

// pushLog appends a message, keeping the log to its last lines.
func (m *Model) pushLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render(m.variant.Title))
	sections = append(sections, statusStyle.Render(fmt.Sprintf(
		"size %d  position %s  exit %s  turn %d",
		m.eng.Size(), m.eng.Position(), m.eng.Exit(), m.eng.Turn(),
	)))

	if m.showHelp {
		sections = append(sections, helpText(m.variant))
	}

	if m.variant.Temporal && m.showSlice {
		m.screen.Clear()
		m.eng.RenderSlice(m.screen, m.markers)
		sections = append(sections, RenderScreen(m.screen))
	}

	if m.variant.Temporal && m.showMap {
		sections = append(sections, m.visitedReport())
	}

	sections = append(sections, strings.Join(m.log, "\n"))

	switch m.state {
	case StateActive:
		sections = append(sections, m.input.View())
	case StateExited:
		sections = append(sections, winStyle.Render("You escaped the hypercube!")+dimStyle.Render("  r: new maze  q: leave"))
	case StateTrapped:
		sections = append(sections, loseStyle.Render("The maze keeps you.")+dimStyle.Render("  r: new maze  q: leave"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// visitedReport formats the visited-memory entries, oldest discovery first.
func (m Model) visitedReport() string {
	visits := m.eng.Visits()
	if len(visits) == 0 {
		return dimStyle.Render("No cells visited yet.")
	}

	var sb strings.Builder
	sb.WriteString("Visited cells:\n")
	for _, v := range visits {
		line := fmt.Sprintf("  %s  turn %-3d safe", v.Cell, v.Turn)
		if v.Trap {
			line = errorStyle.Render(fmt.Sprintf("  %s  turn %-3d trap", v.Cell, v.Turn))
		}
		sb.WriteString(line)
		sb.WriteRune('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Run starts the Bubble Tea program for one interactive session.
func Run(variant maze.Variant, cfg config.Config, store *storage.Store, width, height int) error {
	model, err := NewModel(variant, cfg, store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
