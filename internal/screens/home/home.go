// Package home is the post-login hub: ask a question, edit the learning
// context, clear it, or log out.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/router"
	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/screens/chat"
	"github.com/aditir/eduterm/internal/screens/profileform"
	"github.com/aditir/eduterm/internal/tutor"
	"github.com/aditir/eduterm/internal/ui/components"
	"github.com/aditir/eduterm/internal/ui/theme"
)

// WelcomeFactory rebuilds the pre-login screen. Used on logout.
type WelcomeFactory func() screen.Screen

// HomeScreen is the main menu after login.
type HomeScreen struct {
	sess           *tutor.Session
	svc            *tutor.Service
	welcomeFactory WelcomeFactory
	menu           components.Menu
	flash          string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen bound to the given session.
func New(sess *tutor.Session, svc *tutor.Service, welcomeFactory WelcomeFactory) *HomeScreen {
	h := &HomeScreen{
		sess:           sess,
		svc:            svc,
		welcomeFactory: welcomeFactory,
	}

	items := []components.MenuItem{
		{Label: "Ask a Question", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(svc, sess)}
			}
		}},
		{Label: "Customize Your Profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profileform.New(sess)}
			}
		}},
		{Label: "Clear Chat", Action: func() tea.Cmd {
			sess.ClearContext()
			h.flash = "Chat cleared. Customize your experience again."
			return nil
		}},
		{Label: "Log Out", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ResetScreenMsg{Screen: welcomeFactory()}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && h.flash != "" {
		h.flash = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Welcome, "+h.sess.Email))
	sections = append(sections, "")

	if h.sess.Profile.HasContext() {
		sections = append(sections, theme.Subtitle.Render("Learning context is set."))
	} else {
		sections = append(sections, theme.Subtitle.Render("No learning context yet. Customize your profile for tailored answers."))
	}
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	if h.flash != "" {
		sections = append(sections, theme.Positive.Render(h.flash))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
