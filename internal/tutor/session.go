package tutor

import (
	"github.com/google/uuid"

	"github.com/aditir/eduterm/internal/profile"
)

// Session holds the state of one signed-in user's conversation: who they
// are and the learning context they have filled in. Each login gets a
// fresh session with its own ID.
type Session struct {
	ID      uuid.UUID
	Email   string
	Profile profile.Profile
}

// NewSession starts a session for the given account email with an empty
// learning context.
func NewSession(email string) *Session {
	return &Session{
		ID:    uuid.New(),
		Email: email,
	}
}

// ClearContext resets the learning context to its empty state. The
// session identity is kept.
func (s *Session) ClearContext() {
	s.Profile = profile.Profile{}
}
