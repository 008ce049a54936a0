package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditir/eduterm/internal/llm"
	"github.com/aditir/eduterm/internal/profile"
)

func TestAsk_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	out, err := svc.Ask(context.Background(), "   \n\t ", profile.Profile{})
	require.NoError(t, err)
	assert.Equal(t, EmptyInput, out.Kind)
	assert.Equal(t, EmptyInputMessage, out.Text)
	assert.Equal(t, 0, mock.CallCount())
}

func TestAsk_OffTopicRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	out, err := svc.Ask(context.Background(), "What is the weather like today?", profile.Profile{})
	require.NoError(t, err)
	assert.Equal(t, Rejected, out.Kind)
	assert.Equal(t, RejectionMessage, out.Text)
	assert.Equal(t, 0, mock.CallCount())
}

func TestAsk_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "A binary search halves the range each step."})
	svc := NewService(mock)

	out, err := svc.Ask(context.Background(), "Explain binary search", profile.Profile{})
	require.NoError(t, err)
	assert.Equal(t, Answered, out.Kind)
	assert.Equal(t, "A binary search halves the range each step.", out.Text)
	assert.Equal(t, 1, mock.CallCount())
}

func TestAsk_TrimsInputBeforeGateAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "ok"})
	svc := NewService(mock)

	_, err := svc.Ask(context.Background(), "  Explain recursion  ", profile.Profile{})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	msgs := mock.Calls[0].Messages
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Explain recursion", msgs[len(msgs)-1].Content)
}

func TestAsk_ProfileShapesPrompt(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "ok"})
	svc := NewService(mock)

	prof := profile.Profile{Tone: profile.ToneFriendly, FieldOfStudy: "Physics"}
	_, err := svc.Ask(context.Background(), "Explain inertia", prof)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Contains(t, req.System, "friendly")
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleAssistant, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Physics")
}

func TestAsk_EmptyModelReplyFallsBack(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "  \n "})
	svc := NewService(mock)

	out, err := svc.Ask(context.Background(), "Explain entropy", profile.Profile{})
	require.NoError(t, err)
	assert.Equal(t, Answered, out.Kind)
	assert.Equal(t, FallbackMessage, out.Text)
}

func TestAsk_AugmentsByLearningStyle(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "Sorting arranges elements in order."})
	svc := NewService(mock)

	prof := profile.Profile{LearningStyle: profile.StyleReading}
	out, err := svc.Ask(context.Background(), "Explain merge sort", prof)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Text, "Sorting arranges elements in order."))
	assert.Contains(t, out.Text, "Additional Reading Resources:")
	assert.Contains(t, out.Text, "https://en.wikipedia.org/wiki/Explain_merge_sort")
}

func TestAsk_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	wantErr := errors.New("boom")
	mock.AddResponse(llm.MockResponse{Err: wantErr})
	svc := NewService(mock)

	_, err := svc.Ask(context.Background(), "Explain gravity", profile.Profile{})
	assert.ErrorIs(t, err, wantErr)
}

func TestSession(t *testing.T) {
	s := NewSession("amy@example.com")
	assert.Equal(t, "amy@example.com", s.Email)
	assert.NotEqual(t, s.ID.String(), NewSession("amy@example.com").ID.String())

	s.Profile.FieldOfStudy = "Math"
	s.ClearContext()
	assert.Equal(t, profile.Profile{}, s.Profile)

	// Timeout is bounded even when the caller passes a background context.
	svc := NewServiceWithTimeout(llm.NewMockProvider(), time.Millisecond)
	assert.Equal(t, time.Millisecond, svc.timeout)
}
