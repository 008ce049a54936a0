package welcome

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aditir/eduterm/internal/auth"
	"github.com/aditir/eduterm/internal/router"
	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestAuth(t *testing.T) *auth.Service {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return auth.NewService(st.UserRepo())
}

func newTestWelcome(t *testing.T) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func(email string) screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(newTestAuth(t), factory), &callCount
}

func TestEntryMenuNavigation(t *testing.T) {
	w, _ := newTestWelcome(t)

	if w.selected != 0 {
		t.Errorf("expected initial selection 0, got %d", w.selected)
	}

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if w.selected != 1 {
		t.Errorf("expected selection 1 after down, got %d", w.selected)
	}

	w.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if w.selected != 0 {
		t.Errorf("expected selection 0 after up, got %d", w.selected)
	}
}

func TestEntryMenuPushesLoginForm(t *testing.T) {
	w, _ := newTestWelcome(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter on Log In")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "Login" {
		t.Errorf("expected Login form, got %q", push.Screen.Title())
	}
}

func TestViewShowsTagline(t *testing.T) {
	w, _ := newTestWelcome(t)

	view := w.View(80, 24)
	if !strings.Contains(view, "Educational Tutor Chatbot") {
		t.Error("expected tagline in view")
	}
}

func TestLoginFormSuccessResetsToHome(t *testing.T) {
	svc := newTestAuth(t)
	if err := svc.SignUp(context.Background(), "amy@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	called := 0
	form := newLoginForm(svc, func(email string) screen.Screen {
		called++
		if email != "amy@example.com" {
			t.Errorf("factory got email %q", email)
		}
		return &stubScreen{}
	})

	typeInto(form, "amy@example.com")
	form.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(form, "pw")

	_, cmd := form.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}

	result := cmd()
	_, cmd = form.Update(result)
	if cmd == nil {
		t.Fatal("expected navigation command after login result")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
	if called != 1 {
		t.Errorf("home factory should be called once, got %d", called)
	}
}

func TestLoginFormBadPassword(t *testing.T) {
	svc := newTestAuth(t)
	if err := svc.SignUp(context.Background(), "amy@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	form := newLoginForm(svc, func(string) screen.Screen { return &stubScreen{} })
	typeInto(form, "amy@example.com")
	form.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(form, "wrong")

	_, cmd := form.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, after := form.Update(cmd())
	if after != nil {
		t.Error("failed login should not navigate")
	}
	if form.status != "Invalid username or password." {
		t.Errorf("unexpected status %q", form.status)
	}
}

func TestLoginFormMissingFields(t *testing.T) {
	svc := newTestAuth(t)
	form := newLoginForm(svc, func(string) screen.Screen { return &stubScreen{} })

	_, cmd := form.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("submit with empty fields should not produce a command")
	}
	if form.status != "Please enter both email and password." {
		t.Errorf("unexpected status %q", form.status)
	}
}

func TestSignupFormDuplicate(t *testing.T) {
	svc := newTestAuth(t)
	if err := svc.SignUp(context.Background(), "amy@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	form := newSignupForm(svc)
	typeInto(form, "amy@example.com")
	form.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(form, "pw2")

	_, cmd := form.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	form.Update(cmd())
	if form.status != "User already exists. Please use a different email address." {
		t.Errorf("unexpected status %q", form.status)
	}
}

func TestResetFormMismatchedConfirmation(t *testing.T) {
	form := newResetForm(newTestAuth(t))
	typeInto(form, "amy@example.com")
	form.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(form, "new1")
	form.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(form, "new2")

	_, cmd := form.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("mismatched confirmation should not reach the service")
	}
	if form.status != "Passwords do not match." {
		t.Errorf("unexpected status %q", form.status)
	}
}

func typeInto(f *authForm, text string) {
	for _, r := range text {
		f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}
