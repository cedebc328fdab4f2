// Package chatui is the terminal chat screen for the finance tutor.
package chatui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/finlearn/finlearn/internal/tutor"
	"github.com/finlearn/finlearn/internal/ui/components"
	"github.com/finlearn/finlearn/internal/ui/layout"
	"github.com/finlearn/finlearn/internal/ui/theme"
)

type entry struct {
	fromUser bool
	text     string
}

type replyMsg struct {
	Text string
	Err  error
}

// Model is the root Bubble Tea model for a tutor session.
type Model struct {
	service    *tutor.Service
	input      components.TextInput
	transcript []entry
	waiting    bool
	errMsg     string
	streak     int
	width      int
	height     int
}

// New creates the chat screen over a started tutor session. streak is
// shown in the header when positive.
func New(service *tutor.Service, streak int) Model {
	return Model{
		service: service,
		input:   components.NewTextInput("Ask about VAT, Self Assessment, deadlines...", 500),
		streak:  streak,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.Err != nil {
			m.errMsg = fmt.Sprintf("The tutor is unavailable: %v", msg.Err)
			return m, nil
		}
		m.transcript = append(m.transcript, entry{fromUser: false, text: msg.Text})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, entry{fromUser: true, text: text})
			m.input.Reset()
			m.waiting = true
			m.errMsg = ""
			return m, m.send(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send runs the blocking provider call off the update loop.
func (m Model) send(text string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		reply, err := service.Send(context.Background(), text)
		return replyMsg{Text: reply, Err: err}
	}
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

	header := layout.RenderHeader("Tutor", m.streak, m.width)
	footer := layout.RenderFooter([]layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "End session"},
	}, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	inputView := "\n" + m.input.View()
	transcriptHeight := contentHeight - lipgloss.Height(inputView)
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}

	content := m.renderTranscript(transcriptHeight) + inputView
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) renderTranscript(height int) string {
	wrap := lipgloss.NewStyle().Width(m.width - 4)

	var lines []string
	for _, e := range m.transcript {
		label := theme.TutorLine.Render("Tutor")
		if e.fromUser {
			label = theme.UserLine.Render("You")
		}
		block := label + "\n" + wrap.Foreground(theme.Text).Render(e.text)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	if m.waiting {
		lines = append(lines, theme.Hint.Render("Thinking..."))
	}
	if m.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(m.errMsg))
	}

	// Show the tail of the conversation when it overflows.
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

// Run starts the chat program and blocks until the session ends.
func Run(service *tutor.Service, streak int) error {
	p := tea.NewProgram(New(service, streak))
	_, err := p.Run()
	return err
}
