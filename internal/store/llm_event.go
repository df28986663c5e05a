package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builders and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(llmEventsTable).
		Columns(
			colSequence, colTimestamp, colRequestID, colSessionID,
			colProvider, colModel, colPurpose, colInputTokens, colOutputTokens,
			colLatencyMs, colSuccess, colCached, colErrorMessage,
			colRequestBody, colResponseBody,
		).
		Values(
			seqNum, time.Now().UTC(), data.RequestID, data.SessionID,
			data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, data.Success, data.Cached, data.ErrorMessage,
			data.RequestBody, data.ResponseBody,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	sel := builder().Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		OrderBy(entsql.Desc(colSequence))

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel = sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel = sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel = sel.Where(entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel = sel.Where(entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	if opts.Purpose != "" {
		sel = sel.Where(entsql.EQ(colPurpose, opts.Purpose))
	}
	if opts.SessionID != "" {
		sel = sel.Where(entsql.EQ(colSessionID, opts.SessionID))
	}
	if opts.FailedOnly {
		sel = sel.Where(entsql.EQ(colSuccess, false))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var records []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	query, args := builder().Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ(colID, id)).
		Query()

	rec, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	query, args := builder().Select(
		colPurpose,
		entsql.Count("*"),
		entsql.Sum(colSuccess),
		entsql.Sum(colInputTokens),
		entsql.Sum(colOutputTokens),
		entsql.Avg(colLatencyMs),
	).
		From(entsql.Table(llmEventsTable)).
		GroupBy(colPurpose).
		OrderBy(colPurpose).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		var succeeded int
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &succeeded, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage by purpose: %w", err)
		}
		u.Failures = u.Calls - succeeded
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	// Cached responses cost nothing, so they are left out of cost totals.
	query, args := builder().Select(
		colModel,
		entsql.Count("*"),
		entsql.Sum(colInputTokens),
		entsql.Sum(colOutputTokens),
	).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ(colCached, false)).
		GroupBy(colModel).
		OrderBy(colModel).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage by model: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) PruneLLMEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args := builder().Delete(llmEventsTable).
		Where(entsql.LT(colTimestamp, cutoff.UTC())).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune LLM events: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMEventRecord, error) {
	var rec LLMEventRecord
	err := row.Scan(
		&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.RequestID, &rec.SessionID,
		&rec.Provider, &rec.Model, &rec.Purpose, &rec.InputTokens, &rec.OutputTokens,
		&rec.LatencyMs, &rec.Success, &rec.Cached, &rec.ErrorMessage,
		&rec.RequestBody, &rec.ResponseBody,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
