package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/platform"
)

// Model is the Bubble Tea model running one game.
type Model struct {
	driver   *platform.Driver
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a terminal of the given size. The size is
// updated from WindowSizeMsg once the program starts.
func NewModel(d *platform.Driver, tickRate, width, height int) Model {
	m := Model{
		driver:   d,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
	}
	m.resize(width, height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.driver.Push(m.keys.MapKey(msg))
		return m, nil

	case tea.MouseMsg:
		m.driver.Push(MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick steps the game once. Queued input is consumed by the driver.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.driver.Step(time.Time(msg))
	if m.driver.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// resize keeps the last row free for the help footer.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	playH := core.Max(height-1, 0)
	if m.screen == nil {
		m.screen = core.NewScreen(width, playH)
		return
	}
	m.screen.Resize(width, playH)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Snapshot().Render(m.screen)
	return fmt.Sprintf("%s\n%s", RenderScreen(m.screen), m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(d *platform.Driver, tickRate, width, height int) error {
	p := tea.NewProgram(
		NewModel(d, tickRate, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
