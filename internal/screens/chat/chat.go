// Package chat is the question/answer screen. Questions are handed to the
// tutor service asynchronously; the transcript accumulates for the
// lifetime of the screen.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/tutor"
	"github.com/aditir/eduterm/internal/ui/components"
	"github.com/aditir/eduterm/internal/ui/layout"
	"github.com/aditir/eduterm/internal/ui/theme"
)

const infoBanner = "This chatbot is designed to assist with education and training-related queries. Please ask a question related to these topics."

const spinnerInterval = 150 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// exchange is one question/answer pair in the transcript.
type exchange struct {
	question string
	answer   string
	kind     tutor.OutcomeKind
}

// ChatScreen drives the tutoring conversation.
type ChatScreen struct {
	svc        *tutor.Service
	sess       *tutor.Session
	input      components.TextInput
	transcript []exchange
	busy       bool
	frame      int
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen for the given session.
func New(svc *tutor.Service, sess *tutor.Session) *ChatScreen {
	return &ChatScreen{
		svc:   svc,
		sess:  sess,
		input: components.NewTextInput("Ask me a question", 0),
	}
}

func (c *ChatScreen) Title() string {
	return "Ask a Question"
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.busy {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		return c.handleAnswer(msg)

	case spinnerTickMsg:
		if !c.busy {
			return c, nil
		}
		c.frame++
		return c, spinnerTick()

	case tea.KeyMsg:
		if c.busy {
			return c, nil
		}
		if msg.String() == "enter" {
			return c.ask()
		}
	}

	if c.busy {
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) ask() (screen.Screen, tea.Cmd) {
	question := c.input.Value()
	c.errMsg = ""

	// Blank input gets its outcome synchronously, no provider involved.
	if strings.TrimSpace(question) == "" {
		c.transcript = append(c.transcript, exchange{
			question: question,
			answer:   tutor.EmptyInputMessage,
			kind:     tutor.EmptyInput,
		})
		return c, nil
	}

	c.busy = true
	c.input.Model.Blur()

	svc := c.svc
	prof := c.sess.Profile
	return c, tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			out, err := svc.Ask(context.Background(), question, prof)
			return answerMsg{Question: question, Outcome: out, Err: err}
		},
	)
}

func (c *ChatScreen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	c.busy = false

	if msg.Err != nil {
		c.errMsg = "Something went wrong: " + msg.Err.Error()
		return c, c.input.Init()
	}

	c.transcript = append(c.transcript, exchange{
		question: msg.Question,
		answer:   msg.Outcome.Text,
		kind:     msg.Outcome.Kind,
	})
	c.input.Reset()
	return c, c.input.Init()
}

func (c *ChatScreen) View(width, height int) string {
	wrap := width - 8
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder

	b.WriteString(theme.Hint.Width(wrap).Render(infoBanner))
	b.WriteString("\n\n")

	youStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(wrap)
	warnStyle := lipgloss.NewStyle().Foreground(theme.Accent).Width(wrap)

	for _, ex := range c.transcript {
		b.WriteString(youStyle.Render("You: ") + strings.TrimSpace(ex.question))
		b.WriteString("\n")
		b.WriteString(tutorStyle.Render("Tutor:"))
		b.WriteString("\n")
		if ex.kind == tutor.Answered {
			b.WriteString(answerStyle.Render(ex.answer))
		} else {
			b.WriteString(warnStyle.Render(ex.answer))
		}
		b.WriteString("\n\n")
	}

	if c.busy {
		frame := spinnerFrames[c.frame%len(spinnerFrames)]
		b.WriteString(theme.Hint.Render(frame + " Thinking..."))
		b.WriteString("\n\n")
	}

	if c.errMsg != "" {
		b.WriteString(theme.Negative.Width(wrap).Render(c.errMsg))
		b.WriteString("\n\n")
	}

	if !c.busy {
		b.WriteString(c.input.View())
	}

	content := lipgloss.NewStyle().Padding(1, 3).Render(b.String())
	return content
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
