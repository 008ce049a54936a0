package store

import (
	"context"
	"errors"
	"time"
)

// ErrEmailExists indicates an insert hit the unique email constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound indicates no user row matched the given email.
var ErrUserNotFound = errors.New("user not found")

// User is a persisted account record. The password is stored only as a
// bcrypt hash.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepo manages account records.
type UserRepo interface {
	// Create inserts a new user. Returns ErrEmailExists if the email is
	// already registered.
	Create(ctx context.Context, email, passwordHash string) (*User, error)

	// ByEmail returns the user with the given email, or ErrUserNotFound.
	ByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePassword replaces the stored hash for the given email.
	// Returns ErrUserNotFound if the email is not registered.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// LLMRequestData captures a single completion API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a logged completion API call.
type LLMRequest struct {
	ID        int
	Timestamp time.Time
	LLMRequestData
}

// UsageStat aggregates token usage for one purpose or model.
type UsageStat struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// RequestLogRepo provides append and query access to the LLM request log.
type RequestLogRepo interface {
	// AppendLLMRequest records a completion API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error

	// QueryLLMRequests returns the most recent requests, newest first.
	// limit <= 0 means no limit.
	QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error)

	// GetLLMRequest returns the request with the given ID, or nil.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error)

	// UsageByPurpose aggregates token usage grouped by purpose.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// UsageByModel aggregates token usage grouped by model.
	UsageByModel(ctx context.Context) ([]UsageStat, error)
}
