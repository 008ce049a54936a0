package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/ui/theme"
)

// Picker cycles through a fixed list of options with left/right. Index 0
// is the unset state when includeNone is set.
type Picker struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker. The options list should already contain a
// leading blank entry if "not set" is a valid choice.
func NewPicker(options []string) Picker {
	return Picker{Options: options}
}

// Update handles left/right cycling.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l", " ", "space":
		p.Selected++
		if p.Selected >= len(p.Options) {
			p.Selected = 0
		}
	}

	return p, nil
}

// Value returns the selected option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// SetValue selects the given option if present, else the first option.
func (p *Picker) SetValue(v string) {
	p.Selected = 0
	for i, opt := range p.Options {
		if opt == v {
			p.Selected = i
			return
		}
	}
}

// View renders the picker as "◂ value ▸".
func (p Picker) View() string {
	val := p.Value()
	if val == "" {
		val = "(not set)"
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.Focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		arrows = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	return arrows.Render("◂ ") + style.Render(val) + arrows.Render(" ▸")
}
