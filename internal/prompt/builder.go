// Package prompt assembles the structured conversation sent to the
// completion API: an optional tone directive, an optional learner-context
// turn, and the user's question.
package prompt

import (
	"fmt"
	"strings"

	"github.com/aditir/eduterm/internal/llm"
	"github.com/aditir/eduterm/internal/profile"
)

const (
	// MaxTokens caps the length of a generated answer.
	MaxTokens = 4096

	// Temperature keeps answers varied but on-topic.
	Temperature = 0.7
)

// Build constructs the completion request for a question. The profile's
// tone becomes the system directive, the remaining profile fields are
// rendered as a single assistant-role context turn, and the raw question
// is the final user turn.
func Build(question string, prof profile.Profile) llm.Request {
	req := llm.Request{
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}

	if prof.Tone != profile.ToneNone {
		req.System = fmt.Sprintf(
			"You are a helpful tutor who communicates in a %s manner.",
			strings.ToLower(string(prof.Tone)))
	}

	if prof.HasContext() {
		req.Messages = append(req.Messages, llm.Message{
			Role:    llm.RoleAssistant,
			Content: contextTurn(prof),
		})
	}

	req.Messages = append(req.Messages, llm.Message{
		Role:    llm.RoleUser,
		Content: question,
	})

	return req
}

// contextTurn renders the set profile fields as "Label- value" lines in
// fixed order. Absent fields are omitted entirely.
func contextTurn(prof profile.Profile) string {
	var b strings.Builder

	if prof.AgeGroup != "" {
		fmt.Fprintf(&b, "Age- %s years old\n", prof.AgeGroup)
	}
	if prof.EducationLevel != "" {
		fmt.Fprintf(&b, "Education- %s\n", prof.EducationLevel)
	}
	if prof.FieldOfStudy != "" {
		fmt.Fprintf(&b, "Studying/Completed- %s\n", prof.FieldOfStudy)
	}
	if prof.LearningStyle != profile.StyleNone {
		fmt.Fprintf(&b, "Learning Style- %s\n", prof.LearningStyle)
	}
	if len(prof.Topics) > 0 {
		fmt.Fprintf(&b, "Interested in the topics- %s\n", strings.Join(prof.Topics, ", "))
	}
	if prof.SkillLevel != nil {
		fmt.Fprintf(&b, "Rating the skill Level- %d\n", *prof.SkillLevel)
	}
	if prof.StudyHours != nil {
		fmt.Fprintf(&b, "Dedicate to study- %g hours per day\n", *prof.StudyHours)
	}

	return strings.TrimSpace(b.String())
}
