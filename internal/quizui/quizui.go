// Package quizui is the interactive quiz screen for a lesson.
package quizui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/finlearn/finlearn/internal/quiz"
	"github.com/finlearn/finlearn/internal/ui/components"
	"github.com/finlearn/finlearn/internal/ui/layout"
	"github.com/finlearn/finlearn/internal/ui/theme"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseSummary
)

// Model steps through a lesson quiz one question at a time.
type Model struct {
	lessonTitle string
	quiz        quiz.Quiz
	choice      components.MultiChoice
	answers     []int
	current     int
	phase       phase
	result      quiz.Result
	aborted     bool
	width       int
	height      int
}

// New creates the quiz screen for one lesson.
func New(lessonTitle string, q quiz.Quiz) Model {
	m := Model{
		lessonTitle: lessonTitle,
		quiz:        q,
	}
	if len(q.Questions) > 0 {
		first := q.Questions[0]
		m.choice = components.NewMultiChoice(first.Text, first.Options, first.CorrectIndex)
	} else {
		m.phase = phaseSummary
	}
	return m
}

// Result returns the graded attempt. Valid once the program has ended.
func (m Model) Result() quiz.Result {
	return m.result
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.phase != phaseSummary {
				m.aborted = true
			}
			return m, tea.Quit
		}

		switch m.phase {
		case phaseQuestion:
			var cmd tea.Cmd
			m.choice, cmd = m.choice.Update(msg)
			if m.choice.Submitted {
				m.answers = append(m.answers, m.choice.ChosenIndex)
				m.phase = phaseFeedback
			}
			return m, cmd

		case phaseFeedback:
			return m.advance(), nil

		case phaseSummary:
			if msg.String() == "enter" {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// advance moves to the next question, or grades the attempt when the
// last question is done.
func (m Model) advance() Model {
	m.current++
	if m.current >= len(m.quiz.Questions) {
		m.result = quiz.Grade(m.quiz, m.answers)
		m.phase = phaseSummary
		return m
	}
	q := m.quiz.Questions[m.current]
	m.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
	return m
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.lessonTitle, 0, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	content := m.renderContent()

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (m Model) renderContent() string {
	if m.phase == phaseSummary {
		return m.renderSummary()
	}

	total := len(m.quiz.Questions)
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", m.current+1, total),
		float64(m.current)/float64(total),
		false,
		m.width-8,
	)

	var b strings.Builder
	b.WriteString("\n" + bar.View() + "\n\n")
	b.WriteString(m.choice.View())

	if m.phase == phaseFeedback {
		q := m.quiz.Questions[m.current]
		if m.choice.IsCorrect() {
			b.WriteString("\n" + theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString("\n" + theme.Incorrect.Render("Not quite.") + "\n")
		}
		if q.Explanation != "" {
			wrap := lipgloss.NewStyle().Width(m.width - 8).Foreground(theme.TextDim)
			b.WriteString(wrap.Render(q.Explanation) + "\n")
		}
	}

	return b.String()
}

func (m Model) renderSummary() string {
	res := m.result
	verdict := theme.Incorrect.Render("Below the pass mark — worth another look soon.")
	if res.Passed {
		verdict = theme.Correct.Render("Passed!")
	}
	return fmt.Sprintf(
		"\n%s\n\n%s\n\n%s\n",
		theme.Title.Render("Quiz complete"),
		theme.Body.Render(fmt.Sprintf("Score: %d%%  (%d of %d correct)", res.Score, res.Correct, res.Total)),
		verdict,
	)
}

// Run walks through the quiz and returns the graded result. ok is
// false when the user quit before the last question.
func Run(lessonTitle string, q quiz.Quiz) (quiz.Result, bool, error) {
	p := tea.NewProgram(New(lessonTitle, q))
	final, err := p.Run()
	if err != nil {
		return quiz.Result{}, false, err
	}
	m, _ := final.(Model)
	return m.Result(), !m.Aborted(), nil
}
