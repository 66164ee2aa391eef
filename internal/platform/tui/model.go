package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snakefield/internal/config"
	"github.com/vovakirdan/snakefield/internal/core"
	"github.com/vovakirdan/snakefield/internal/games/snake"
	"github.com/vovakirdan/snakefield/internal/particles"
	"github.com/vovakirdan/snakefield/internal/storage"
)

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct {
	Config config.SnakeConfig
}

// Options wires the model to its collaborators. Engine, Sink and Field are
// required; Store may be nil to play without persistence.
type Options struct {
	Engine     *snake.Engine
	Sink       *Sink
	Field      *particles.Field
	Store      *storage.Store
	SessionID  string
	Difficulty *config.DifficultyManager
	MaxWidth   int
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a snake session.
type Model struct {
	opts   Options
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	logger *log.Logger

	snap      snake.Snapshot
	fx        snake.FX
	lastScore int
	quitting  bool
}

// helpHeight is the number of rows reserved for the help footer.
const helpHeight = 1

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	if opts.Runtime.FrameRate <= 0 {
		opts.Runtime.FrameRate = core.DefaultConfig().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-helpHeight, 0)),
		logger: logger,
		snap:   opts.Engine.Snapshot(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.opts.Field.SetPointer(float64(msg.X), float64(msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()

	case ConfigMsg:
		return m.applyConfig(msg.Config)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.opts.Engine.Reset()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.opts.Engine.SubmitInput(a)
	}
	return m, nil
}

// handleResize fits the board and the particle field to the new window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	h := max(msg.Height-helpHeight, 0)

	m.screen.Resize(msg.Width, h)
	m.opts.Field.Resize(msg.Width, h)
	m.help.Width = msg.Width
	m.resizeBoard()
	m.snap = m.opts.Engine.Snapshot()

	return m, nil
}

func (m Model) resizeBoard() {
	w, h := m.screen.Width(), m.screen.Height()
	box := snake.BoxForTerminal(w, h, m.snap.GridSize, m.opts.MaxWidth)
	if err := m.opts.Engine.Resize(box); err != nil {
		m.logger.Warn("resize failed", "box", box, "error", err)
	}
}

// handleFrame drains engine events and advances the animation.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	frame := m.opts.Sink.Drain()

	switch {
	case frame.Updated:
		m.snap = frame.Snapshot
	case frame.Idle:
		m.snap = m.opts.Engine.Snapshot()
	}

	m.fx.Tick()
	for _, fx := range frame.Effects {
		m.fx.Merge(fx)
	}
	for range frame.Boosts {
		m.opts.Field.Boost()
	}
	m.opts.Field.Step()

	for _, round := range frame.Finished {
		m.saveRound(round)
	}

	if m.snap.Score != m.lastScore {
		m.lastScore = m.snap.Score
		m.adjustSpeed()
	}

	return m, frameCmd(m.opts.Runtime.FrameRate)
}

// adjustSpeed applies score-based difficulty progression.
func (m Model) adjustSpeed() {
	dm := m.opts.Difficulty
	if dm == nil || !dm.IsEnabled() {
		return
	}
	period := dm.Period(m.lastScore)
	if period == m.opts.Engine.Period() {
		return
	}
	if err := m.opts.Engine.SetPeriod(period); err != nil {
		m.logger.Warn("cannot change speed", "period", period, "error", err)
		return
	}
	m.logger.Debug("speed changed", "score", m.lastScore, "period", period)
}

// saveRound records a finished round. Best effort: the game continues
// regardless.
func (m Model) saveRound(round snake.Snapshot) {
	if m.opts.Store == nil || round.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRound(storage.Round{
		GameID:    storage.DefaultGameID,
		SessionID: m.opts.SessionID,
		Score:     round.Score,
		Length:    len(round.Body),
		Ticks:     round.Tick,
		Won:       round.Won,
	})
	if err != nil {
		m.logger.Warn("could not save round", "score", round.Score, "error", err)
	}
}

// applyConfig applies a live-reloaded configuration. Only the tick period
// and the board width cap change; the round in progress is untouched.
func (m Model) applyConfig(cfg config.SnakeConfig) (tea.Model, tea.Cmd) {
	period, err := cfg.TickPeriod()
	if err != nil {
		m.logger.Warn("ignoring reloaded config", "error", err)
		return m, nil
	}

	m.opts.Difficulty = config.NewDifficultyManager(cfg.Difficulty, period)
	if err := m.opts.Engine.SetPeriod(m.opts.Difficulty.Period(m.lastScore)); err != nil {
		m.logger.Warn("cannot change speed", "error", err)
	}
	if cfg.Grid.MaxWidth != m.opts.MaxWidth {
		m.opts.MaxWidth = cfg.Grid.MaxWidth
		m.resizeBoard()
		m.snap = m.opts.Engine.Snapshot()
	}
	m.logger.Info("config applied", "period", period, "max_width", cfg.Grid.MaxWidth)
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".snakefield", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	m.draw()
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func (m Model) draw() {
	m.screen.Clear()
	m.opts.Field.Render(m.screen)
	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	snake.Draw(m.screen, m.snap, area, m.fx)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program. When watchPath is set the configuration
// file is watched and reloads are sent into the running program. The engine
// is paused when the program exits.
func Run(ctx context.Context, opts Options, watchPath string) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	g.Go(func() error {
		defer cancel()
		defer opts.Engine.Pause()
		_, err := p.Run()
		return err
	})

	if watchPath != "" {
		w := config.NewWatcher(watchPath, opts.Logger, func(cfg config.SnakeConfig) {
			p.Send(ConfigMsg{Config: cfg})
		})
		g.Go(func() error { return w.Run(ctx) })
	}

	return g.Wait()
}
