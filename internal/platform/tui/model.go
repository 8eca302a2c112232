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

	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
	"github.com/vovakirdan/tiny-arcade/internal/storage"
)

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Panel   config.PanelConfig
	Logger  *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for running one game on the emulated panel.
type Model struct {
	game    registry.Game
	ctrl    *oled.Controller
	loop    *engine.Loop
	latch   *core.Latch
	pacer   *engine.Pacer
	screen  *core.Screen
	palette core.Palette
	border  bool

	store  *storage.Store
	logger *log.Logger
	keys   KeyMap
	help   help.Model

	last     core.StepResult
	rounds   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, opts Options) Model {
	logger := opts.logger()

	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	game.Reset(opts.Runtime)

	panel := opts.Panel
	if panel.LatchTicks <= 0 {
		panel = config.DefaultPanelConfig()
	}

	keys := DefaultKeyMap()
	if c, ok := game.(registry.Controlled); ok {
		keys = keys.ForButtons(c.Buttons())
	}

	ctrl := oled.NewController()
	latch := core.NewLatch(panel.LatchTicks)
	display := oled.NewDisplay(ctrl, oled.WithLogger(logger))
	loop := engine.NewLoop(game, display, latch, engine.WithLoopLogger(logger))

	return Model{
		game:    game,
		ctrl:    ctrl,
		loop:    loop,
		latch:   latch,
		pacer:   engine.NewPacer(opts.Runtime.Speed),
		screen:  core.NewScreenFor(ctrl),
		palette: core.PaletteByName(panel.Palette),
		border:  panel.Border,
		store:   store,
		logger:  logger,
		keys:    keys,
		help:    help.New(),
		last:    loop.Last(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
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
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Display().Shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != core.ButtonNone {
		m.latch.Press(b)
	}
	return m, nil
}

// handleTick runs one frame and schedules the next after the game's delay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.loop.Tick()

	if m.last.State.Phase == core.PhasePlaying && res.State.Phase != core.PhasePlaying {
		m.saveRound(res.State)
	}
	m.last = res

	return m, tickCmd(m.pacer.Scaled(res.Delay))
}

// saveRound records a finished round. The game keeps running if the
// scoreboard is unavailable.
func (m *Model) saveRound(st core.GameState) {
	m.rounds++
	m.logger.Info("round over",
		"game", m.game.ID(),
		"score", st.Score,
		"won", st.Won,
		"frame", st.Frame,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), st.Score, st.Won, st.Frame); err != nil {
		m.logger.Warn("could not save round", "err", err)
	}
}

// View renders the panel with a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.screen.Plot(0, 0, m.ctrl)

	var b strings.Builder
	b.WriteString(RenderPanel(m.screen, m.palette, m.border))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	st := m.last.State
	line := fmt.Sprintf("%s  %s  score %d", m.game.Title(), st.Phase, st.Score)
	if st.Health > 0 {
		line += fmt.Sprintf("  hp %d", st.Health)
	}
	extra := fmt.Sprintf("  rounds %d", m.rounds)
	if st.Won {
		extra += "  cleared!"
	}
	return statusStyle.Render(line) + dimStyle.Render(extra)
}

// Rounds returns the number of finished rounds.
func (m Model) Rounds() int {
	return m.rounds
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
