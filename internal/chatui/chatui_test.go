package chatui

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/finlearn/finlearn/internal/llm"
	"github.com/finlearn/finlearn/internal/profile"
	"github.com/finlearn/finlearn/internal/tutor"
)

func newTestModel(responses ...llm.MockResponse) Model {
	provider := llm.NewMockProvider(responses...)
	service := tutor.NewService(provider, nil, profile.Profile{})
	m := New(service, 0)
	m.width = 80
	m.height = 24
	return m
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(keyPress(r))
		m = next.(Model)
	}
	return m
}

func TestEnterOnEmptyInputDoesNothing(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if len(m.transcript) != 0 {
		t.Errorf("transcript length = %d, want 0", len(m.transcript))
	}
}

func TestSendAppendsUserEntry(t *testing.T) {
	reply, _ := json.Marshal("You can register for VAT online via HMRC.")
	m := newTestModel(llm.MockResponse{Content: reply})
	m = typeText(m, "how do I register for VAT?")

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if len(m.transcript) != 1 || !m.transcript[0].fromUser {
		t.Fatalf("transcript = %+v, want one user entry", m.transcript)
	}
	if !m.waiting {
		t.Error("expected waiting state after send")
	}

	// Run the command and feed the reply back through Update.
	msg := cmd()
	next, _ = m.Update(msg)
	m = next.(Model)

	if m.waiting {
		t.Error("waiting should clear after reply")
	}
	if len(m.transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(m.transcript))
	}
	if m.transcript[1].fromUser {
		t.Error("second entry should be the tutor reply")
	}
	if !strings.Contains(m.transcript[1].text, "register for VAT online") {
		t.Errorf("reply text = %q", m.transcript[1].text)
	}
}

func TestProviderErrorShowsMessage(t *testing.T) {
	m := newTestModel(llm.MockResponse{Err: errors.New("rate limited")})
	m = typeText(m, "hello")

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	if m.errMsg == "" {
		t.Error("expected an error message")
	}
	if len(m.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1 (user entry only)", len(m.transcript))
	}
}

func TestIgnoresEnterWhileWaiting(t *testing.T) {
	reply, _ := json.Marshal("ok")
	m := newTestModel(llm.MockResponse{Content: reply})
	m = typeText(m, "first")

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	m = typeText(m, "second")
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if cmd != nil {
		t.Error("expected enter to be ignored while waiting")
	}
	if len(m.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1", len(m.transcript))
	}
}

func TestEscQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
