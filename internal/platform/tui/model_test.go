package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
	"github.com/vovakirdan/kingrun/internal/quiz"
	"github.com/vovakirdan/kingrun/internal/runner"
	"github.com/vovakirdan/kingrun/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, lives int, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.Run.Lives = lives
	return NewModel(GameOptions{
		Runner:     cfg,
		Difficulty: "normal",
		Store:      store,
		Logger:     log.New(io.Discard),
		Player:     "tester",
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 7},
	})
}

// tick delivers one tick scheduled by m itself.
func tick(m Model) Model {
	next, _ := m.Update(TickMsg{Gen: m.tickGen})
	return next.(Model)
}

// playUntilGameOver starts the game and ticks without jumping.
func playUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	for i := 0; i < 1000; i++ {
		m = tick(m)
		if m.Snapshot().Phase == runner.PhaseGameOver {
			return m
		}
	}
	t.Fatal("game never ended")
	return m
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('h'), core.ActionRecover, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestQuizKeyMapOptionIndex(t *testing.T) {
	k := DefaultQuizKeyMap()

	for i, r := range "1234" {
		if got := k.OptionIndex(runeKey(r)); got != i {
			t.Errorf("OptionIndex(%q) = %d, expected %d", r, got, i)
		}
	}
	if got := k.OptionIndex(runeKey('5')); got != -1 {
		t.Errorf("OptionIndex('5') = %d, expected -1", got)
	}
}

func TestQuizDialogFlow(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Run.Lives = 0
	ctrl := runner.NewController(cfg, quiz.NewRecovery(quiz.DefaultCatalog(), 3), nil)
	ctrl.Start()
	for ctrl.Phase() != runner.PhaseGameOver {
		ctrl.Tick()
	}

	// Wrong answer: study text, then close; lives untouched.
	d := newQuizDialog(ctrl.BeginRecovery())
	if d.update(runeKey('2'), ctrl) {
		t.Fatal("dialog should stay open to show the study text")
	}
	if d.stage != quizStudy || d.outcome.Study == "" {
		t.Errorf("expected study stage, got %v %+v", d.stage, d.outcome)
	}
	if !d.update(tea.KeyMsg{Type: tea.KeyEsc}, ctrl) {
		t.Error("esc should close the study text")
	}
	if ctrl.Snapshot().Lives != 0 {
		t.Fatal("wrong answer must not grant a life")
	}

	// Right answer: restart offer, accepting spends the new life.
	d = newQuizDialog(ctrl.BeginRecovery())
	d.update(runeKey('1'), ctrl)
	if d.stage != quizOfferRestart {
		t.Fatalf("expected restart offer, got stage %v", d.stage)
	}
	if ctrl.Snapshot().Lives != 1 {
		t.Errorf("lives = %d, expected 1", ctrl.Snapshot().Lives)
	}
	if !d.update(runeKey('y'), ctrl) {
		t.Error("y should close the dialog")
	}
	s := ctrl.Snapshot()
	if s.Phase != runner.PhaseRunning || s.Lives != 0 {
		t.Errorf("expected running with 0 lives, got %+v", s)
	}
}

func TestQuizDialogNoAnswer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Run.Lives = 0
	ctrl := runner.NewController(cfg, quiz.NewRecovery(quiz.DefaultCatalog(), 3), nil)
	ctrl.Start()
	for ctrl.Phase() != runner.PhaseGameOver {
		ctrl.Tick()
	}

	d := newQuizDialog(ctrl.BeginRecovery())
	if d.update(runeKey('z'), ctrl) || d.stage != quizAsking {
		t.Fatal("unbound keys should be ignored")
	}
	d.update(tea.KeyMsg{Type: tea.KeyEsc}, ctrl)
	if d.stage != quizStudy || d.outcome.Granted {
		t.Errorf("esc should count as no answer, got %+v", d.outcome)
	}
}

func TestModelOpensQuizAtZeroLives(t *testing.T) {
	m := playUntilGameOver(t, newTestModel(t, 0, nil))

	next, _ := m.Update(runeKey('h'))
	m = next.(Model)
	if m.quiz == nil {
		t.Fatal("h at zero lives should open the quiz")
	}

	// Ticks are frozen while the dialog is open.
	score := m.Snapshot().Score
	m = tick(m)
	if m.Snapshot().Score != score {
		t.Error("tick while quiz open changed the score")
	}
}

func TestModelQuizUnavailableWithLives(t *testing.T) {
	m := playUntilGameOver(t, newTestModel(t, 2, nil))

	next, _ := m.Update(runeKey('h'))
	if next.(Model).quiz != nil {
		t.Error("quiz should not open while lives remain")
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := playUntilGameOver(t, newTestModel(t, 3, store))
	final := m.Snapshot().Score

	scores, err := store.RunScores(m.runID)
	if err != nil {
		t.Fatalf("RunScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != final || scores[0].Player != "tester" || scores[0].Difficulty != "normal" {
		t.Errorf("expected one saved life with score %d, got %+v", final, scores)
	}

	// Further ticks must not save the same life again.
	m = tick(m)
	if scores, _ = store.RunScores(m.runID); len(scores) != 1 {
		t.Errorf("score saved %d times", len(scores))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, 3, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	for i := 0; i < 10; i++ {
		m = tick(m)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.Snapshot().Score != 10 || m.Snapshot().Phase != runner.PhaseRunning {
		t.Errorf("resize should not reset the game, got %+v", m.Snapshot())
	}
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, expected 120", m.screen.Width())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 3, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestModelIgnoresTicksFromOtherGames(t *testing.T) {
	old := newTestModel(t, 3, nil)
	m := newTestModel(t, 3, nil)
	if old.tickGen == m.tickGen {
		t.Fatal("each game needs its own tick generation")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	m = tick(m)

	next, cmd := m.Update(TickMsg{Gen: old.tickGen})
	m = next.(Model)
	if cmd != nil {
		t.Error("a stale tick must not schedule another tick")
	}
	if m.Snapshot().Score != 1 {
		t.Errorf("score = %d, expected 1 after one own tick", m.Snapshot().Score)
	}
}

func TestSessionDropsTicksFromLeftGame(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSessionModel(GameOptions{
		Runner:  cfg,
		Logger:  log.New(io.Discard),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50},
	})

	play := func() {
		t.Helper()
		next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
		s = next.(SessionModel)
		if s.current != screenGame {
			t.Fatalf("expected the game screen, got %v", s.current)
		}
	}

	play()
	first := s.game.tickGen
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.current != screenMenu {
		t.Fatalf("esc on an idle game should return to the menu, got %v", s.current)
	}

	play()
	next, cmd := s.Update(TickMsg{Gen: first})
	s = next.(SessionModel)
	if cmd != nil {
		t.Error("tick from the previous game started a second tick chain")
	}
}

func TestScoreboardResumesGameItPaused(t *testing.T) {
	m := newTestModel(t, 3, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	m = tick(m)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.board == nil || !m.Snapshot().Paused {
		t.Fatal("tab should open the scoreboard and pause the game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.board != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.Snapshot().Paused {
		t.Error("closing the scoreboard should resume the game it paused")
	}
	if got := tick(m).Snapshot().Score; got != 2 {
		t.Errorf("score = %d, expected ticking to continue", got)
	}
}

func TestScoreboardKeepsUserPause(t *testing.T) {
	m := newTestModel(t, 3, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	m = tick(m)

	next, _ = m.Update(runeKey('p'))
	m = next.(Model)
	m = tick(m)
	if !m.Snapshot().Paused {
		t.Fatal("p should pause the game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.Snapshot().Paused {
		t.Error("a game paused by the player should stay paused after the scoreboard")
	}
}
