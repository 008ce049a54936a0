// Package welcome holds the pre-login screens: the entry menu and the
// login, sign-up and password-reset forms.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/auth"
	"github.com/aditir/eduterm/internal/router"
	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/ui/theme"
)

const tagline = "WELCOME to The Educational Tutor Chatbot!!"

// HomeFactory builds the post-login screen for the given account email.
type HomeFactory func(email string) screen.Screen

// WelcomeScreen is the entry menu: log in, sign up or reset a password.
type WelcomeScreen struct {
	svc         *auth.Service
	homeFactory HomeFactory
	selected    int
}

var entryItems = []string{"Log In", "Sign Up", "Forgot Password", "Quit"}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the entry screen. Successful logins transition to the
// screen produced by homeFactory.
func New(svc *auth.Service, homeFactory HomeFactory) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if w.selected > 0 {
			w.selected--
		}
	case "down", "j":
		if w.selected < len(entryItems)-1 {
			w.selected++
		}
	case "enter":
		switch w.selected {
		case 0:
			form := newLoginForm(w.svc, w.homeFactory)
			return w, func() tea.Msg { return router.PushScreenMsg{Screen: form} }
		case 1:
			form := newSignupForm(w.svc)
			return w, func() tea.Msg { return router.PushScreenMsg{Screen: form} }
		case 2:
			form := newResetForm(w.svc)
			return w, func() tea.Msg { return router.PushScreenMsg{Screen: form} }
		case 3:
			return w, tea.Quit
		}
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(tagline))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Search information regarding education-related topics."))
	sections = append(sections, "")

	for i, item := range entryItems {
		if i == w.selected {
			sections = append(sections, theme.Selected.Render("▸ "+item))
		} else {
			sections = append(sections, theme.Unselected.Render("  "+item))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
