package chat

import (
	"time"

	"github.com/aditir/eduterm/internal/tutor"
)

// answerMsg is sent when the tutor finishes handling a question.
type answerMsg struct {
	Question string
	Outcome  tutor.Outcome
	Err      error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time
