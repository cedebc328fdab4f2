package quizui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/finlearn/finlearn/internal/quiz"
)

func testQuiz() quiz.Quiz {
	return quiz.Quiz{
		LessonID: "vat-basics",
		Questions: []quiz.Question{
			{
				Text:         "What is the current VAT registration threshold?",
				Options:      []string{"£85,000", "£90,000", "£100,000", "£75,000"},
				CorrectIndex: 1,
			},
			{
				Text:         "How often does a VAT-registered business usually file returns?",
				Options:      []string{"Monthly", "Quarterly", "Annually", "Weekly"},
				CorrectIndex: 1,
			},
		},
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func down() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

func anyKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ' ', Text: " "}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestFullRunAllCorrect(t *testing.T) {
	m := New("VAT Basics", testQuiz())
	m.width, m.height = 80, 24

	// Question 1: move to option B and answer.
	m = step(t, m, down())
	m = step(t, m, enter())
	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", m.phase)
	}
	m = step(t, m, anyKey())

	// Question 2.
	if m.current != 1 {
		t.Fatalf("current = %d, want 1", m.current)
	}
	m = step(t, m, down())
	m = step(t, m, enter())
	m = step(t, m, anyKey())

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}
	res := m.Result()
	if res.Score != 100 || !res.Passed {
		t.Errorf("result = %+v, want 100%% pass", res)
	}
	if m.Aborted() {
		t.Error("finished run should not be aborted")
	}
}

func TestWrongAnswersScoreZero(t *testing.T) {
	m := New("VAT Basics", testQuiz())
	m.width, m.height = 80, 24

	// Answer A (wrong) twice.
	m = step(t, m, enter())
	m = step(t, m, anyKey())
	m = step(t, m, enter())
	m = step(t, m, anyKey())

	res := m.Result()
	if res.Score != 0 || res.Passed {
		t.Errorf("result = %+v, want 0%% fail", res)
	}
}

func TestEscMidQuizAborts(t *testing.T) {
	m := New("VAT Basics", testQuiz())
	m.width, m.height = 80, 24

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if !m.Aborted() {
		t.Error("esc before the summary should abort")
	}
}

func TestEmptyQuizGoesStraightToSummary(t *testing.T) {
	m := New("Empty", quiz.Quiz{LessonID: "x"})
	if m.phase != phaseSummary {
		t.Errorf("phase = %d, want summary", m.phase)
	}
}
