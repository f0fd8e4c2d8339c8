package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/sim"
	"github.com/vovakirdan/tui-racer/internal/storage"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// KeyboardDriver is the driver name recorded for human runs.
const KeyboardDriver = "keyboard"

// Model is the Bubble Tea model for driving one vehicle around a track.
type Model struct {
	def     track.Definition
	params  vehicle.Params
	session *sim.Session
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig

	keyMapper *KeyMapper
	held      *heldKeys
	help      help.Model

	frame      uint64 // UI ticks, advances while paused
	last       sim.StepResult
	paused     bool
	runSaved   bool // Whether the current run has been recorded
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given track.
func NewModel(def track.Definition, p vehicle.Params, store *storage.Store, cfg core.RuntimeConfig) Model {
	session := sim.NewSession(def.Track, p, def.Start)

	return Model{
		def:       def,
		params:    p,
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      newHeldKeys(holdWindow(cfg.TickRate)),
		help:      help.New(),
		last:      session.Last(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMapper.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys.Back):
		m.recordRun()
		m.backToMenu = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
		m.held.Release()
	case core.ActionRestart:
		m.recordRun()
		m.session.Reset()
		m.last = m.session.Last()
		m.runSaved = false
		m.paused = false
		m.held.Release()
	case core.ActionNone:
	default:
		m.held.Press(action, m.frame)
	}

	return m, nil
}

// handleTick advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame++

	if m.paused || m.session.Dead() {
		return m, tickCmd(m.config.TickRate)
	}

	controls := sim.KeyboardControls(m.held.Frame(m.frame), m.params)
	m.last = m.session.Step(controls)

	if m.last.Dead {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the current run once. Runs that never moved are skipped.
func (m *Model) recordRun() {
	if m.runSaved || m.session.Tick() == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, driving continues regardless
	m.store.SaveRun(storage.Run{
		TrackID:  m.def.ID,
		Driver:   KeyboardDriver,
		Ticks:    int64(m.session.Tick()),
		Distance: m.session.Travelled(),
		Crashed:  m.session.Dead(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	sim.Render(m.session, m.last, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.def.ID, timestamp))

	//nolint:errcheck // Best-effort save, driving continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	sim.Render(m.session, m.last, m.screen)

	var footer string
	switch {
	case m.session.Dead():
		footer = statusStyle.Render(fmt.Sprintf(" CRASHED after %.0f units ", m.session.Travelled())) +
			" " + helpStyle.Render("r restart • esc back • q quit")
	case m.paused:
		footer = statusStyle.Render(" PAUSED ") + " " + helpStyle.Render(m.help.View(m.keyMapper.Keys))
	default:
		footer = helpStyle.Render(m.def.Name + " • " + m.help.View(m.keyMapper.Keys))
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// Session returns the underlying simulation session.
func (m Model) Session() *sim.Session {
	return m.session
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the track menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single drive.
func Run(def track.Definition, p vehicle.Params, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(def, p, store, cfg)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := prog.Run()
	return err
}
