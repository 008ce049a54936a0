// Package tutor turns a user's question into a model-backed answer. It
// gates off-topic questions, builds the prompt from the session's
// learning context, calls the configured provider and appends learning
// resources to the reply.
package tutor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aditir/eduterm/internal/llm"
	"github.com/aditir/eduterm/internal/profile"
	"github.com/aditir/eduterm/internal/prompt"
	"github.com/aditir/eduterm/internal/resources"
	"github.com/aditir/eduterm/internal/topicgate"
)

const (
	// RejectionMessage is shown when the question is off-topic.
	RejectionMessage = "Sorry, I can only provide educational-related information, not other topics. Thank you."

	// EmptyInputMessage is shown when the question is blank.
	EmptyInputMessage = "Please enter a question to receive a response."

	// FallbackMessage substitutes for an empty model reply.
	FallbackMessage = "No response from the model."

	defaultTimeout = 30 * time.Second
)

// OutcomeKind classifies how a question was handled.
type OutcomeKind int

const (
	// Answered means the model produced a reply.
	Answered OutcomeKind = iota
	// Rejected means the topic gate refused the question.
	Rejected
	// EmptyInput means the question was blank.
	EmptyInput
)

// Outcome is the result of asking one question.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

// Service orchestrates a single question/answer exchange.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewService creates a tutor service over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, timeout: defaultTimeout}
}

// NewServiceWithTimeout creates a tutor service with a custom per-request
// timeout. Used by tests.
func NewServiceWithTimeout(provider llm.Provider, timeout time.Duration) *Service {
	return &Service{provider: provider, timeout: timeout}
}

// Ask handles one question in the context of the given learning profile.
// Blank input and off-topic questions short-circuit without touching the
// provider. The provider call is bounded by the service timeout.
func (s *Service) Ask(ctx context.Context, question string, prof profile.Profile) (Outcome, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return Outcome{Kind: EmptyInput, Text: EmptyInputMessage}, nil
	}

	if !topicgate.IsEducational(trimmed) {
		return Outcome{Kind: Rejected, Text: RejectionMessage}, nil
	}

	req := prompt.Build(trimmed, prof)

	ctx = llm.WithPurpose(ctx, "tutor-answer")
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate answer: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		text = FallbackMessage
	}

	text = resources.Augment(text, prof.LearningStyle, trimmed)
	return Outcome{Kind: Answered, Text: text}, nil
}
