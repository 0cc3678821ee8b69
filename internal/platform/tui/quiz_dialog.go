package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kingrun/internal/core"
	"github.com/vovakirdan/kingrun/internal/quiz"
	"github.com/vovakirdan/kingrun/internal/runner"
)

type quizStage int

const (
	quizAsking quizStage = iota
	quizStudy            // wrong answer: study text until dismissed
	quizOfferRestart     // right answer: y/n restart offer
)

// quizDialog is the "Save Me!" modal. It grades through the controller so
// lives only change via the runner's recovery rules.
type quizDialog struct {
	attempt *quiz.Attempt
	stage   quizStage
	outcome quiz.Outcome
	keys    QuizKeyMap
}

func newQuizDialog(a *quiz.Attempt) *quizDialog {
	return &quizDialog{attempt: a, keys: DefaultQuizKeyMap()}
}

// update handles one key. It returns true when the dialog should close.
func (d *quizDialog) update(msg tea.KeyMsg, ctrl *runner.Controller) bool {
	switch d.stage {
	case quizAsking:
		choice := d.keys.OptionIndex(msg)
		if choice < 0 {
			if !key.Matches(msg, d.keys.Dismiss) {
				return false
			}
			choice = quiz.NoAnswer
		}
		out, ok := ctrl.CompleteRecovery(d.attempt, choice)
		if !ok {
			return true
		}
		d.outcome = out
		if out.Granted {
			d.stage = quizOfferRestart
		} else {
			d.stage = quizStudy
		}
		return false

	case quizOfferRestart:
		switch {
		case key.Matches(msg, d.keys.Yes):
			ctrl.Restart()
			return true
		case key.Matches(msg, d.keys.No):
			return true
		}
		return false

	default:
		return key.Matches(msg, d.keys.Dismiss)
	}
}

var (
	quizBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2)
	quizTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	quizHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	quizGoodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	quizBadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// view renders the dialog centered in a width x height area.
func (d *quizDialog) view(width, height int) string {
	boxW := core.Min(60, core.Max(width-6, 20))
	var b strings.Builder

	switch d.stage {
	case quizAsking:
		b.WriteString(quizTitleStyle.Render("Quiz"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(boxW).Render(d.attempt.Question.Prompt))
		b.WriteString("\n\n")
		for i, opt := range d.attempt.Options() {
			fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
		}
		b.WriteString("\n")
		b.WriteString(quizHintStyle.Render("1-4: answer  |  esc: give up"))

	case quizOfferRestart:
		b.WriteString(quizGoodStyle.Render(d.outcome.Message))
		b.WriteString("\n\n")
		b.WriteString("Do you want to restart the game?")
		b.WriteString("\n\n")
		b.WriteString(quizHintStyle.Render("y: restart  |  n: not now"))

	default:
		b.WriteString(quizBadStyle.Render(d.outcome.Message))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(boxW).Render(d.outcome.Study))
		b.WriteString("\n\n")
		b.WriteString(quizHintStyle.Render("esc: close"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, quizBoxStyle.Render(b.String()))
}
