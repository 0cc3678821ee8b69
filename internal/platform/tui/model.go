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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kingrun/internal/assets"
	"github.com/vovakirdan/kingrun/internal/audio"
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
	"github.com/vovakirdan/kingrun/internal/quiz"
	"github.com/vovakirdan/kingrun/internal/runner"
	"github.com/vovakirdan/kingrun/internal/storage"
)

// GameOptions collects everything a game session needs.
type GameOptions struct {
	Runner     config.RunnerConfig
	Difficulty string
	Catalog    quiz.Catalog
	Sprites    assets.Set
	Sound      audio.Player
	Store      *storage.Store // nil disables score saving
	Logger     *log.Logger
	Player     string
	Runtime    core.RuntimeConfig
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl       *runner.Controller
	renderer   *runner.Renderer
	screen     *core.Screen
	store      *storage.Store
	sound      audio.Player
	logger     *log.Logger
	runID      string
	player     string
	difficulty string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	quiz       *quizDialog
	board      *ScoreboardModel
	boardPause bool // the scoreboard paused the game and resumes it on close
	tickGen    uint64
	embedded   bool // inside an SSH session; back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for a game.
func NewModel(opts GameOptions) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Runner.TickRate()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	catalog := opts.Catalog
	if len(catalog.Questions) == 0 {
		catalog = quiz.DefaultCatalog()
	}

	runID := storage.NewRunID()
	h := help.New()
	h.Width = cfg.ScreenW

	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}

	return Model{
		ctrl:       runner.NewController(opts.Runner, quiz.NewRecovery(catalog, cfg.Seed), sound),
		renderer:   runner.NewRenderer(opts.Runner, opts.Sprites),
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:      opts.Store,
		sound:      sound,
		logger:     logger.With("run", runID),
		runID:      runID,
		player:     opts.Player,
		difficulty: opts.Difficulty,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		tickGen:    nextTickGen(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game ready", "player", m.player, "difficulty", m.difficulty)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quiz != nil {
		if m.quiz.update(msg, m.ctrl) {
			m.quiz = nil
		}
		m.drainEvents()
		return m, nil
	}

	if m.board != nil {
		board, _ := m.board.Update(msg)
		sb := board.(ScoreboardModel)
		if sb.IsGoingBack() || sb.IsQuitting() {
			m.closeScoreboard()
		} else {
			m.board = &sb
		}
		return m, nil
	}

	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Scores):
		m.openScoreboard()
		return m, nil

	case key.Matches(msg, keys.Back):
		snap := m.ctrl.Snapshot()
		if snap.Phase != runner.PhaseRunning || snap.Paused {
			return m.leave(true)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.leave(false)
	}

	if m.inputFrame.Has(core.ActionRecover) {
		m.inputFrame.Clear()
		m.openQuiz()
	}

	return m, nil
}

// leave ends the game. Going back inside a session hands control to the
// session menu; everything else exits the program.
func (m Model) leave(toMenu bool) (tea.Model, tea.Cmd) {
	m.sound.Stop(audio.TrackBackground)
	m.backToMenu = toMenu
	if m.embedded && toMenu {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) openQuiz() {
	a := m.ctrl.BeginRecovery()
	if a == nil {
		m.logger.Debug("recovery not available", "lives", m.ctrl.Snapshot().Lives)
		return
	}
	m.logger.Info("quiz opened", "prompt", a.Question.Prompt)
	m.quiz = newQuizDialog(a)
}

func (m *Model) openScoreboard() {
	snap := m.ctrl.Snapshot()
	m.boardPause = false
	if snap.Phase == runner.PhaseRunning && !snap.Paused {
		m.ctrl.TogglePause()
		m.drainEvents()
		m.boardPause = true
	}
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.board = &sb
}

func (m *Model) closeScoreboard() {
	m.board = nil
	if m.boardPause {
		m.ctrl.TogglePause()
		m.drainEvents()
		m.boardPause = false
	}
}

// handleResize processes window resize events. The simulation runs in world
// units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.board != nil {
		board, _ := m.board.Update(msg)
		sb := board.(ScoreboardModel)
		m.board = &sb
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quiz == nil && m.board == nil {
		m.ctrl.Step(m.inputFrame)
		m.drainEvents()
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// drainEvents logs controller events and records finished lives.
func (m *Model) drainEvents() {
	for _, ev := range m.ctrl.Events() {
		switch ev.Kind {
		case runner.EventStarted:
			m.logger.Info("run started", "lives", ev.Lives, "speed", ev.Speed)
		case runner.EventSpeedUp:
			m.logger.Debug("speed up", "score", ev.Score, "speed", ev.Speed)
		case runner.EventGameOver:
			m.logger.Info("game over", "score", ev.Score, "lives", ev.Lives)
			m.saveScore(ev.Score)
		case runner.EventRestarted:
			m.logger.Info("restarted", "lives", ev.Lives, "speed", ev.Speed)
		case runner.EventLifeGained:
			m.logger.Info("life recovered", "lives", ev.Lives)
		}
	}
}

func (m *Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:      m.runID,
		Player:     m.player,
		Difficulty: m.difficulty,
		Score:      score,
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.ctrl.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".kingrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("kingrun_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.board != nil {
		return m.board.View()
	}
	if m.quiz != nil {
		return m.quiz.view(m.config.ScreenW, m.config.ScreenH)
	}

	m.renderer.Render(m.screen, m.ctrl.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpBarStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Snapshot returns the controller state, for callers that inspect a finished model.
func (m Model) Snapshot() runner.Snapshot {
	return m.ctrl.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting && !m.backToMenu
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to return to the menu.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
