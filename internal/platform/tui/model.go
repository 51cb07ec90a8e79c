package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// footerRows is the number of screen rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model driving one simulation.
type Model struct {
	sim        *arkanoid.Simulation
	screen     *core.Screen
	journal    *sessionJournal
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	period     time.Duration
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given simulation.
// store may be nil, in which case the session is not recorded.
func NewModel(sim *arkanoid.Simulation, store *storage.Store, cfg core.RuntimeConfig, user string) Model {
	keys := DefaultKeyMap()
	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		journal:    newSessionJournal(sim, store, user),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		period:     sim.Config().TickPeriod,
	}
}

func playfieldRows(h int) int {
	return max(h-footerRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.period)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.journal.record()
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse maps the pointer column onto the playfield. Dragging moves the
// paddle under the pointer; a left click also launches the ball.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.inputFrame.Set(core.ActionLaunch)
		m.dragTo(msg.X)
	case tea.MouseActionMotion:
		m.dragTo(msg.X)
	}

	return m, nil
}

func (m *Model) dragTo(col int) {
	if m.screen.Width() == 0 {
		return
	}
	vp := m.sim.Viewport(m.screen.Width(), m.screen.Height())
	m.inputFrame.DragTo(vp.PlayfieldX(col))
}

// handleResize rescales the view. The playfield keeps its geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the input gathered since the last tick and advances
// the simulation by exactly one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	res := m.sim.Step(m.inputFrame)
	if !res.Attached {
		m.journal.markLaunched()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.period)
}

// Finish records the session in the journal if that has not happened yet.
// Hosts call it when the program ends, however it ended.
func (m Model) Finish() {
	m.journal.record()
}

// Session summarizes the play so far.
func (m Model) Session() storage.Session {
	return m.journal.session()
}

// IsQuitting returns true once the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the playfield and a status footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	status := statusStyle.Render(fmt.Sprintf("hits %d  left %d  tick %d  seed %d  ",
		m.sim.BricksHit(), m.sim.BricksRemaining(), m.sim.Ticks(), m.sim.Seed()))
	return status + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(sim *arkanoid.Simulation, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sim, store, cfg, "")
	defer model.Finish()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
