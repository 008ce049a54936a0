package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aditir/eduterm/internal/store"
)

// recordingLogRepo captures appended request log entries.
type recordingLogRepo struct {
	entries []store.LLMRequestData
}

func (r *recordingLogRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestData) error {
	r.entries = append(r.entries, data)
	return nil
}

func (r *recordingLogRepo) QueryLLMRequests(context.Context, int) ([]store.LLMRequest, error) {
	return nil, nil
}

func (r *recordingLogRepo) GetLLMRequest(context.Context, int) (*store.LLMRequest, error) {
	return nil, nil
}

func (r *recordingLogRepo) UsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func (r *recordingLogRepo) UsageByModel(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "an answer",
		Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	repo := &recordingLogRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor-answer")
	_, err := p.Generate(ctx, Request{
		System:   "You are a helpful tutor who communicates in a friendly manner.",
		Messages: []Message{{Role: RoleUser, Content: "what is gravity"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if !e.Success {
		t.Error("expected success entry")
	}
	if e.Purpose != "tutor-answer" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") ||
		!strings.Contains(e.RequestBody, "what is gravity") {
		t.Errorf("request body missing turns: %q", e.RequestBody)
	}
	if e.ResponseBody != "an answer" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	repo := &recordingLogRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if e.Success {
		t.Error("expected failure entry")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown when unset", e.Purpose)
	}
}
