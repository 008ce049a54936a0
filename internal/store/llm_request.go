package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type requestLogRepo struct {
	db *sql.DB
}

func (r *requestLogRepo) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_requests
			(timestamp, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
		data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

func (r *requestLogRepo) QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	q := `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_requests ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequest
	for rows.Next() {
		req, err := scanLLMRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (r *requestLogRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_requests WHERE id = ?`, id)

	req, err := scanLLMRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestLogRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.usageBy(ctx, "purpose")
}

func (r *requestLogRepo) UsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.usageBy(ctx, "model")
}

func (r *requestLogRepo) usageBy(ctx context.Context, column string) ([]UsageStat, error) {
	// column is one of the fixed identifiers above, never user input.
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM llm_requests GROUP BY %s ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageStat
	for rows.Next() {
		var st UsageStat
		if err := rows.Scan(&st.Key, &st.Calls, &st.InputTokens,
			&st.OutputTokens, &st.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage stat: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func scanLLMRequest(scan func(dest ...any) error) (*LLMRequest, error) {
	var req LLMRequest
	var success int
	var timestamp string
	err := scan(&req.ID, &timestamp, &req.Provider, &req.Model,
		&req.Purpose, &req.InputTokens, &req.OutputTokens, &req.LatencyMs,
		&success, &req.ErrorMessage, &req.RequestBody, &req.ResponseBody)
	if err != nil {
		return nil, err
	}
	req.Success = success != 0

	req.Timestamp, err = time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	return &req, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
