package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/ui/theme"
)

// Checklist is a multi-select list. Space toggles the highlighted option,
// arrows move the highlight.
type Checklist struct {
	Options  []string
	Checked  map[int]bool
	Selected int
	Focused  bool
}

// NewChecklist creates a checklist with the given options, none checked.
func NewChecklist(options []string) Checklist {
	return Checklist{
		Options: options,
		Checked: make(map[int]bool),
	}
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case " ", "space":
		c.Checked[c.Selected] = !c.Checked[c.Selected]
	}

	return c, nil
}

// Values returns the checked options in display order.
func (c Checklist) Values() []string {
	var out []string
	for i, opt := range c.Options {
		if c.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// SetValues checks exactly the given options.
func (c *Checklist) SetValues(values []string) {
	c.Checked = make(map[int]bool)
	for _, v := range values {
		for i, opt := range c.Options {
			if opt == v {
				c.Checked[i] = true
			}
		}
	}
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}
		line := box + " " + opt

		switch {
		case c.Focused && i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n"
		case c.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  "+line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line) + "\n"
		}
	}
	return s
}
