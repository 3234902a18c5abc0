package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/loop"
)

// Lifecycle is the host-facing side of the simulation loop.
type Lifecycle interface {
	Start() error
	Stop() error
}

// Model is the Bubble Tea model for a running level.
//
// It never touches the world directly. Touches go to the controller, frames
// arrive as messages, and Start/Stop run inside commands because Stop waits
// for a tick that may itself be waiting to deliver a frame to this program.
type Model struct {
	title   string
	loop    Lifecycle
	reset   func()
	ctrl    *input.Controller
	keys    PlayKeyMap
	help    help.Model
	theme   Theme
	keyHold time.Duration

	holdSeq uint64 // Identifies the latest synthetic key touch
	view    string
	state   core.GameState
	width   int
	height  int

	paused   bool // Paused by the player
	blurred  bool // Terminal lost focus
	running  bool
	pending  bool // A Start or Stop command is in flight
	quitting bool
	err      error
}

// ModelOptions configures a play model.
type ModelOptions struct {
	Title   string
	Loop    Lifecycle
	Reset   func() // Called between Stop and Start on restart; may be nil
	Input   *input.Controller
	KeyHold time.Duration
	Theme   Theme
	Width   int
	Height  int
}

// NewModel creates a play model.
func NewModel(opts ModelOptions) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		title:   opts.Title,
		loop:    opts.Loop,
		reset:   opts.Reset,
		ctrl:    opts.Input,
		keys:    DefaultPlayKeyMap(),
		help:    h,
		theme:   opts.Theme,
		keyHold: opts.KeyHold,
		pending: true, // Init issues the first Start
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the simulation loop.
func (m Model) Init() tea.Cmd {
	return m.startCmd()
}

// Running reports whether the model believes the loop is running.
func (m Model) Running() bool {
	return m.running
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.blurred = false
		return m.reconcile()

	case tea.BlurMsg:
		m.blurred = true
		m.ctrl.Release()
		return m.reconcile()

	case releaseMsg:
		if msg.seq == m.holdSeq {
			m.ctrl.Release()
		}
		return m, nil

	case frameMsg:
		m.view = msg.view
		m.state = msg.state
		return m, nil

	case lifecycleMsg:
		m.pending = false
		m.running = msg.running
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		return m.reconcile()

	case faultMsg:
		m.running = false
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.Release()
		return m, m.quitCmd()

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.ctrl.Release()
		return m.reconcile()

	case key.Matches(msg, m.keys.Restart):
		if m.pending {
			return m, nil
		}
		m.ctrl.Release()
		m.paused = false
		m.pending = true
		return m, m.restartCmd()
	}

	if m.paused {
		return m, nil
	}

	// Zone keys hold a touch for keyHold; terminal key repeat extends it
	if a := m.keys.Action(msg); a != core.ActionNone && m.ctrl.Press(a) {
		m.holdSeq++
		return m, releaseCmd(m.keyHold, m.holdSeq)
	}

	return m, nil
}

// handleMouse maps button presses to touch-down and releases to touch-up.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.holdSeq++ // Cancels any pending key release
			m.ctrl.Pointer().Down(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.Pointer().Down(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.ctrl.Release()
	}
	return m, nil
}

// resize updates the play area. The bottom row is the status line.
func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w
	if m.ctrl != nil {
		m.ctrl.SetSize(w, max(h-1, 0))
	}
}

// reconcile starts or stops the loop so it runs exactly when the level is
// neither paused nor out of focus. At most one lifecycle command is in flight.
func (m Model) reconcile() (tea.Model, tea.Cmd) {
	if m.pending || m.quitting {
		return m, nil
	}
	want := !m.paused && !m.blurred
	switch {
	case want && !m.running:
		m.pending = true
		return m, m.startCmd()
	case !want && m.running:
		m.pending = true
		return m, m.stopCmd()
	}
	return m, nil
}

func (m Model) startCmd() tea.Cmd {
	l := m.loop
	return func() tea.Msg {
		err := l.Start()
		if errors.Is(err, loop.ErrAlreadyRunning) {
			err = nil
		}
		return lifecycleMsg{running: err == nil, err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	l := m.loop
	return func() tea.Msg {
		return lifecycleMsg{running: false, err: l.Stop()}
	}
}

func (m Model) restartCmd() tea.Cmd {
	l, reset := m.loop, m.reset
	return func() tea.Msg {
		if err := l.Stop(); err != nil {
			return lifecycleMsg{err: err}
		}
		if reset != nil {
			reset()
		}
		err := l.Start()
		return lifecycleMsg{running: err == nil, err: err}
	}
}

func (m Model) quitCmd() tea.Cmd {
	l := m.loop
	return func() tea.Msg {
		if err := l.Stop(); err != nil {
			return faultMsg{err: err}
		}
		return tea.QuitMsg{}
	}
}

// View renders the latest frame and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	area := m.view
	if m.paused || m.blurred {
		area = m.pauseOverlay()
	}

	var b strings.Builder
	b.WriteString(area)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) pauseOverlay() string {
	title := "PAUSED"
	text := "Press P to resume"
	if m.blurred && !m.paused {
		text = "Focus the terminal to resume"
	}
	box := m.theme.OverlayBorder.Render(
		m.theme.OverlayTitle.Render(title) + "\n\n" + m.theme.OverlayText.Render(text),
	)
	return lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) statusLine() string {
	sep := m.theme.StatusSeparator.Render(" │ ")

	parts := []string{
		m.theme.StatusTitle.Render(m.title),
		m.theme.StatusValue.Render(fmt.Sprintf("defeated %d", m.state.Defeated)),
		m.theme.StatusValue.Render(fmt.Sprintf("shots %d", m.state.Projectiles)),
	}
	if m.paused {
		parts = append(parts, m.theme.StatusPaused.Render("PAUSED"))
	}

	return strings.Join(parts, sep) + sep + m.theme.Help.Render(m.help.View(m.keys))
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// PlayOptions configures Run.
type PlayOptions struct {
	Config config.Config
	Logger *log.Logger
	Theme  Theme
	Width  int // Initial terminal size
	Height int
}

// Run plays a game until the player quits or the loop faults.
func Run(game *platformer.Game, opts PlayOptions) error {
	cfg := opts.Config
	ctrl := input.NewController(input.NewMapper(cfg.Input), opts.Width, max(opts.Height-1, 0))
	sink := NewFrameSink(game, ctrl)

	var p *tea.Program
	loopOpts := loop.OptionsFrom(cfg.Loop)
	loopOpts.Logger = opts.Logger
	loopOpts.OnFault = func(f *loop.Fault) {
		p.Send(faultMsg{err: f})
	}
	l := loop.New(ctrl, game, sink, loopOpts)

	model := NewModel(ModelOptions{
		Title:   game.Title(),
		Loop:    l,
		Reset:   game.Reset,
		Input:   ctrl,
		KeyHold: cfg.Input.KeyHold,
		Theme:   opts.Theme,
		Width:   opts.Width,
		Height:  opts.Height,
	})

	p = tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	sink.Attach(p.Send)

	finalModel, err := p.Run()
	stopErr := l.Stop()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return stopErr
}
