package welcome

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/auth"
	"github.com/aditir/eduterm/internal/router"
	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/ui/components"
	"github.com/aditir/eduterm/internal/ui/layout"
	"github.com/aditir/eduterm/internal/ui/theme"
)

type formKind int

const (
	formLogin formKind = iota
	formSignup
	formReset
)

// authResultMsg carries the outcome of an async credential operation.
type authResultMsg struct {
	kind  formKind
	email string
	err   error
}

type formField struct {
	label string
	input components.TextInput
}

// authForm is the shared model behind the login, sign-up and reset forms.
type authForm struct {
	kind        formKind
	heading     string
	svc         *auth.Service
	homeFactory HomeFactory
	fields      []formField
	focus       int
	status      string
	statusErr   bool
	busy        bool
}

var _ screen.Screen = (*authForm)(nil)
var _ screen.KeyHintProvider = (*authForm)(nil)

func newLoginForm(svc *auth.Service, homeFactory HomeFactory) *authForm {
	return &authForm{
		kind:        formLogin,
		heading:     "Login",
		svc:         svc,
		homeFactory: homeFactory,
		fields: []formField{
			{label: "Email", input: components.NewTextInput("you@example.com", 64)},
			{label: "Password", input: components.NewPasswordInput("password", 64)},
		},
	}
}

func newSignupForm(svc *auth.Service) *authForm {
	return &authForm{
		kind:    formSignup,
		heading: "Sign Up",
		svc:     svc,
		fields: []formField{
			{label: "Email", input: components.NewTextInput("you@example.com", 64)},
			{label: "Password", input: components.NewPasswordInput("password", 64)},
		},
	}
}

func newResetForm(svc *auth.Service) *authForm {
	return &authForm{
		kind:    formReset,
		heading: "Forgot Password",
		svc:     svc,
		fields: []formField{
			{label: "Email", input: components.NewTextInput("you@example.com", 64)},
			{label: "New Password", input: components.NewPasswordInput("new password", 64)},
			{label: "Confirm New Password", input: components.NewPasswordInput("repeat new password", 64)},
		},
	}
}

func (f *authForm) Title() string {
	return f.heading
}

func (f *authForm) Init() tea.Cmd {
	return f.fields[0].input.Init()
}

func (f *authForm) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *authForm) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		return f.handleResult(msg)

	case tea.KeyMsg:
		if f.busy {
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			f.fields[f.focus].input.Model.Blur()
			f.focus = (f.focus + 1) % len(f.fields)
			return f, f.fields[f.focus].input.Init()
		case "shift+tab", "up":
			f.fields[f.focus].input.Model.Blur()
			f.focus = (f.focus + len(f.fields) - 1) % len(f.fields)
			return f, f.fields[f.focus].input.Init()
		case "enter":
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *authForm) submit() (screen.Screen, tea.Cmd) {
	email := strings.TrimSpace(f.fields[0].input.Value())
	password := f.fields[1].input.Value()

	if email == "" || password == "" {
		f.status = "Please enter both email and password."
		f.statusErr = true
		return f, nil
	}

	if f.kind == formReset {
		confirm := f.fields[2].input.Value()
		if err := auth.CheckConfirmation(password, confirm); err != nil {
			f.status = "Passwords do not match."
			f.statusErr = true
			return f, nil
		}
	}

	f.busy = true
	f.status = ""

	kind := f.kind
	svc := f.svc
	return f, func() tea.Msg {
		ctx := context.Background()
		var err error
		switch kind {
		case formLogin:
			_, err = svc.Login(ctx, email, password)
		case formSignup:
			err = svc.SignUp(ctx, email, password)
		case formReset:
			err = svc.ResetPassword(ctx, email, password)
		}
		return authResultMsg{kind: kind, email: email, err: err}
	}
}

func (f *authForm) handleResult(msg authResultMsg) (screen.Screen, tea.Cmd) {
	f.busy = false

	if msg.err != nil {
		f.statusErr = true
		switch {
		case errors.Is(msg.err, auth.ErrInvalidCredentials):
			f.status = "Invalid username or password."
		case errors.Is(msg.err, auth.ErrEmailTaken):
			f.status = "User already exists. Please use a different email address."
		case errors.Is(msg.err, auth.ErrNotFound):
			f.status = "No account found for that email address."
		default:
			f.status = msg.err.Error()
		}
		return f, nil
	}

	switch msg.kind {
	case formLogin:
		home := f.homeFactory(msg.email)
		return f, func() tea.Msg { return router.ResetScreenMsg{Screen: home} }
	case formSignup:
		f.status = "User registered successfully. Please log in."
	case formReset:
		f.status = "Password reset successfully. Please log in with your new password."
	}
	f.statusErr = false
	return f, nil
}

func (f *authForm) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(f.heading))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	focusedLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	for i, field := range f.fields {
		style := labelStyle
		if i == f.focus {
			style = focusedLabel
		}
		b.WriteString(style.Render(field.label))
		b.WriteString("\n")
		b.WriteString(field.input.View())
		b.WriteString("\n\n")
	}

	if f.busy {
		b.WriteString(theme.Hint.Render("Working..."))
	} else if f.status != "" {
		if f.statusErr {
			b.WriteString(theme.Negative.Render(f.status))
		} else {
			b.WriteString(theme.Positive.Render(f.status))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
