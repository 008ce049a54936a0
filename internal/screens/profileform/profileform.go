// Package profileform edits the session's learning context. Changes are
// written through to the session as they are made, mirroring how the
// profile sidebar applies instantly.
package profileform

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aditir/eduterm/internal/profile"
	"github.com/aditir/eduterm/internal/screen"
	"github.com/aditir/eduterm/internal/tutor"
	"github.com/aditir/eduterm/internal/ui/components"
	"github.com/aditir/eduterm/internal/ui/layout"
	"github.com/aditir/eduterm/internal/ui/theme"
)

type fieldID int

const (
	fieldAgeGroup fieldID = iota
	fieldEducation
	fieldOtherEducation
	fieldStudy
	fieldLearningStyle
	fieldTopics
	fieldOtherTopic
	fieldSkill
	fieldHours
	fieldTone
)

// ProfileScreen is the learning-context form.
type ProfileScreen struct {
	sess *tutor.Session

	agePicker   components.Picker
	eduPicker   components.Picker
	otherEdu    components.TextInput
	studyInput  components.TextInput
	stylePicker components.Picker
	topics      components.Checklist
	otherTopic  components.TextInput
	skillPicker components.Picker
	hoursInput  components.TextInput
	tonePicker  components.Picker

	focus fieldID
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the form pre-filled from the session's current profile.
func New(sess *tutor.Session) *ProfileScreen {
	p := &ProfileScreen{
		sess:        sess,
		agePicker:   components.NewPicker(withBlank(profile.AgeGroups())),
		eduPicker:   components.NewPicker(withBlank(profile.EducationLevels())),
		otherEdu:    components.NewTextInput("your education level", 64),
		studyInput:  components.NewTextInput("field of study or main interest", 64),
		stylePicker: components.NewPicker(withBlank(styleLabels())),
		topics:      components.NewChecklist(profile.TopicOptions()),
		otherTopic:  components.NewTextInput("the 'Other' topic", 64),
		skillPicker: components.NewPicker([]string{"0", "1", "2", "3", "4", "5"}),
		hoursInput:  components.NewTextInput("hours per day (e.g. 1.5)", 8),
		tonePicker:  components.NewPicker(withBlank(toneLabels())),
	}

	prof := sess.Profile
	p.agePicker.SetValue(prof.AgeGroup)
	p.eduPicker.SetValue(prof.EducationLevel)
	if prof.EducationLevel != "" && p.eduPicker.Value() != prof.EducationLevel {
		// A free-form level entered earlier via "Other".
		p.eduPicker.SetValue("Other")
		p.otherEdu.Model.SetValue(prof.EducationLevel)
	}
	p.studyInput.Model.SetValue(prof.FieldOfStudy)
	p.stylePicker.SetValue(string(prof.LearningStyle))
	p.topics.SetValues(prof.Topics)
	if prof.SkillLevel != nil {
		p.skillPicker.SetValue(strconv.Itoa(*prof.SkillLevel))
	}
	if prof.StudyHours != nil {
		p.hoursInput.Model.SetValue(strconv.FormatFloat(*prof.StudyHours, 'f', -1, 64))
	}
	p.tonePicker.SetValue(string(prof.Tone))

	p.setFocus(fieldAgeGroup)
	return p
}

func withBlank(options []string) []string {
	return append([]string{""}, options...)
}

func styleLabels() []string {
	styles := profile.LearningStyles()
	out := make([]string, len(styles))
	for i, s := range styles {
		out[i] = string(s)
	}
	return out
}

func toneLabels() []string {
	tones := profile.Tones()
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = string(t)
	}
	return out
}

func (p *ProfileScreen) Title() string {
	return "Customize Your Profile"
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "◂▸", Description: "Change value"},
		{Key: "Space", Description: "Toggle topic"},
		{Key: "Esc", Description: "Done"},
	}
}

// order returns the focusable fields given current visibility.
func (p *ProfileScreen) order() []fieldID {
	fields := []fieldID{fieldAgeGroup, fieldEducation}
	if p.eduPicker.Value() == "Other" {
		fields = append(fields, fieldOtherEducation)
	}
	fields = append(fields, fieldStudy, fieldLearningStyle, fieldTopics)
	if p.otherTopicChecked() {
		fields = append(fields, fieldOtherTopic)
	}
	return append(fields, fieldSkill, fieldHours, fieldTone)
}

func (p *ProfileScreen) otherTopicChecked() bool {
	for _, v := range p.topics.Values() {
		if v == "Other" {
			return true
		}
	}
	return false
}

func (p *ProfileScreen) setFocus(f fieldID) {
	p.focus = f
	p.agePicker.Focused = f == fieldAgeGroup
	p.eduPicker.Focused = f == fieldEducation
	p.stylePicker.Focused = f == fieldLearningStyle
	p.topics.Focused = f == fieldTopics
	p.skillPicker.Focused = f == fieldSkill
	p.tonePicker.Focused = f == fieldTone

	p.otherEdu.Model.Blur()
	p.studyInput.Model.Blur()
	p.otherTopic.Model.Blur()
	p.hoursInput.Model.Blur()
	switch f {
	case fieldOtherEducation:
		p.otherEdu.Model.Focus()
	case fieldStudy:
		p.studyInput.Model.Focus()
	case fieldOtherTopic:
		p.otherTopic.Model.Focus()
	case fieldHours:
		p.hoursInput.Model.Focus()
	}
}

func (p *ProfileScreen) moveFocus(delta int) {
	fields := p.order()
	pos := 0
	for i, f := range fields {
		if f == p.focus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	p.setFocus(fields[pos])
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "enter":
			p.moveFocus(1)
			return p, nil
		case "shift+tab":
			p.moveFocus(-1)
			return p, nil
		case "up", "down":
			// Arrows stay inside the checklist, move fields elsewhere.
			if p.focus != fieldTopics {
				if kmsg.String() == "up" {
					p.moveFocus(-1)
				} else {
					p.moveFocus(1)
				}
				return p, nil
			}
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case fieldAgeGroup:
		p.agePicker, cmd = p.agePicker.Update(msg)
	case fieldEducation:
		p.eduPicker, cmd = p.eduPicker.Update(msg)
	case fieldOtherEducation:
		p.otherEdu, cmd = p.otherEdu.Update(msg)
	case fieldStudy:
		p.studyInput, cmd = p.studyInput.Update(msg)
	case fieldLearningStyle:
		p.stylePicker, cmd = p.stylePicker.Update(msg)
	case fieldTopics:
		p.topics, cmd = p.topics.Update(msg)
	case fieldOtherTopic:
		p.otherTopic, cmd = p.otherTopic.Update(msg)
	case fieldSkill:
		p.skillPicker, cmd = p.skillPicker.Update(msg)
	case fieldHours:
		p.hoursInput, cmd = p.hoursInput.Update(msg)
	case fieldTone:
		p.tonePicker, cmd = p.tonePicker.Update(msg)
	}

	p.apply()
	return p, cmd
}

// apply writes the form state through to the session profile.
func (p *ProfileScreen) apply() {
	prof := &p.sess.Profile

	prof.AgeGroup = p.agePicker.Value()

	edu := p.eduPicker.Value()
	if edu == "Other" {
		if other := strings.TrimSpace(p.otherEdu.Value()); other != "" {
			edu = other
		}
	}
	prof.EducationLevel = edu

	prof.FieldOfStudy = strings.TrimSpace(p.studyInput.Value())
	prof.LearningStyle = profile.LearningStyle(p.stylePicker.Value())

	topics := p.topics.Values()
	if other := strings.TrimSpace(p.otherTopic.Value()); other != "" {
		for i, tp := range topics {
			if tp == "Other" {
				topics[i] = other
				break
			}
		}
	}
	prof.Topics = topics

	skill, err := strconv.Atoi(p.skillPicker.Value())
	if err == nil {
		prof.SetSkillLevel(skill)
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(p.hoursInput.Value()), 64)
	if err != nil || hours < 0 || hours > 24 {
		hours = 0
	}
	prof.SetStudyHours(hours)

	prof.Tone = profile.Tone(p.tonePicker.Value())
}

func (p *ProfileScreen) View(width, height int) string {
	label := func(f fieldID, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.focus == f {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Customize Your Profile"))
	b.WriteString("\n\n")

	b.WriteString(label(fieldAgeGroup, "Select your age group:"))
	b.WriteString("  " + p.agePicker.View() + "\n\n")

	b.WriteString(label(fieldEducation, "What's your current education level?"))
	b.WriteString("  " + p.eduPicker.View() + "\n")
	if p.eduPicker.Value() == "Other" {
		b.WriteString(label(fieldOtherEducation, "Please specify:"))
		b.WriteString("  " + p.otherEdu.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(label(fieldStudy, "What is your field of study or main interest?"))
	b.WriteString("\n" + p.studyInput.View() + "\n\n")

	b.WriteString(label(fieldLearningStyle, "How do you prefer to learn?"))
	b.WriteString("  " + p.stylePicker.View() + "\n\n")

	b.WriteString(label(fieldTopics, "What topics are you interested in?"))
	b.WriteString("\n" + p.topics.View())
	if p.otherTopicChecked() {
		b.WriteString(label(fieldOtherTopic, "Please specify the 'Other' topic:"))
		b.WriteString("  " + p.otherTopic.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(label(fieldSkill, "How would you rate your skill level in your selected topic(s)?"))
	b.WriteString("  " + p.skillPicker.View() + "\n\n")

	b.WriteString(label(fieldHours, "How many hours per day can you dedicate to learning?"))
	b.WriteString("\n" + p.hoursInput.View() + "\n\n")

	b.WriteString(label(fieldTone, "How would you like the chatbot to communicate?"))
	b.WriteString("  " + p.tonePicker.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
