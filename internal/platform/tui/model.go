package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
	"github.com/vovakirdan/quadpong/internal/game"
	"github.com/vovakirdan/quadpong/internal/settings"
)

// Layout constants
const (
	minArenaRows = 10
	chromeRows   = 3 // Border top, border bottom, help line
)

// Options configures a play session.
type Options struct {
	Config      config.GameConfig
	ConfigPath  string // Re-read on reload; empty uses the loader search order
	RefreshRate int    // Host refresh rate in Hz
	Seed        int64
	Logger      *log.Logger
	Width       int // Initial terminal size
	Height      int
}

// Model is the Bubble Tea model hosting a quadpong session.
type Model struct {
	opts    Options
	manager *game.Manager
	store   *settings.Store
	unsub   func()

	screen   *core.Screen
	canvas   *Canvas
	panel    *ScorePanel
	loading  *Loading
	confetti *Confetti
	rotator  *Rotator
	audio    *AudioCue
	hold     *KeyHold

	keys     PlayKeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel wires a settings store, the collaborators and a game manager.
func NewModel(opts Options) (Model, error) {
	if opts.RefreshRate <= 0 {
		opts.RefreshRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:     opts,
		store:    settings.NewStore(opts.Config.Players),
		screen:   core.NewScreen(0, 0),
		panel:    NewScorePanel(),
		loading:  NewLoading(),
		confetti: NewConfetti(opts.Seed),
		rotator:  NewRotator(),
		audio:    NewAudioCue(time.Now),
		hold:     NewKeyHold(),
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
	m.canvas = NewCanvas(m.screen, opts.Config.Arena.Size)
	m.resize(opts.Width, opts.Height)

	col := game.Collaborators{
		Surface:    m.canvas,
		Scoreboard: m.panel,
		Loading:    m.loading,
		Confetti:   m.confetti,
		Rotator:    m.rotator,
		Audio:      m.audio,
	}
	mgr, err := game.New(opts.Config, m.store, col, game.Options{
		Logger: logger,
		Seed:   opts.Seed,
	})
	if err != nil {
		return Model{}, err
	}
	m.manager = mgr
	m.unsub = m.store.Subscribe(mgr.OnSettingsChange)
	return m, nil
}

// Manager returns the hosted simulation.
func (m Model) Manager() *game.Manager {
	return m.manager
}

// Init starts the refresh loop and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.RefreshRate), m.loading.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, m.loading.Update(msg)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.manager.Stop()
		if m.unsub != nil {
			m.unsub()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.AddPlayer):
		m.addPlayer()
		return m, nil

	case key.Matches(msg, m.keys.RemovePlayer):
		if m.store.RemoveLast() {
			m.status = "player removed"
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k, ok := GameKey(msg); ok {
		// A session rebuild clears the manager's keys while the hold goes on
		if first := m.hold.Seen(k, now); first || !m.manager.Keys().IsDown(k) {
			m.manager.Keys().Press(k)
		}
	}
	return m, nil
}

// addPlayer appends the next roster entry that is not yet playing.
func (m *Model) addPlayer() {
	roster := config.DefaultPlayers()
	if len(m.opts.Config.Players) > 0 {
		roster = m.opts.Config.Players
	}
	n := m.store.Len()
	if n >= len(roster) {
		m.status = "no more players in roster"
		return
	}
	if err := m.store.AddPlayer(roster[n]); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "added " + roster[n].Name
}

// reload re-reads the configuration file and replaces the roster.
// Only the player list is applied; other settings need a restart.
func (m *Model) reload() {
	cfg, err := config.Load(m.opts.ConfigPath)
	if err != nil {
		m.status = "reload failed"
		m.logger.Warn("config reload failed", "error", err)
		return
	}
	m.opts.Config.Players = cfg.Players
	if err := m.store.SetPlayers(cfg.Players); err != nil {
		m.status = "reload failed"
		m.logger.Warn("roster rejected", "error", err)
		return
	}
	m.status = fmt.Sprintf("reloaded %d players", len(cfg.Players))
}

// handleTick advances the simulation, releases expired keys and re-arms
// the refresh loop.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.manager.Update(now) {
		m.confetti.Step(m.screen.Width(), m.screen.Height())
		m.confetti.Draw(m.screen)
	}

	// Released after the update so a short tap is still seen once
	for _, k := range m.hold.Expire(now) {
		m.manager.Keys().Release(k)
	}

	if m.manager.State() == game.StateStopped {
		if err := m.manager.Err(); err != nil {
			m.status = err.Error()
		}
	}

	return m, tickCmd(m.opts.RefreshRate)
}

// resize fits a square-looking arena into the terminal next to the panel.
// Terminal cells are about twice as tall as wide, so the arena is twice as
// many columns as rows.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	rows := height - chromeRows
	if cols := (width - panelWidth - 2) / 2; cols < rows {
		rows = cols
	}
	rows = max(rows, minArenaRows)
	m.screen.Resize(rows*2, rows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	h, v := m.rotator.Mirror()
	arena := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(RenderMirrored(m.screen, h, v))

	status := m.status
	if sound := m.audio.Current(); sound != "" {
		status = "♪ " + sound
	}
	if m.loading.Visible() {
		status = m.loading.View()
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, arena, m.panel.View(status)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
