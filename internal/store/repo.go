package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)

	SessionID  string // exact session match ("" = any)
	FailedOnly bool   // only calls that returned an error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RequestID    string
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	Cached       bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to telemetry events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose, ordered by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per model, ordered by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// PruneLLMEvents deletes events recorded before cutoff and reports how
	// many were removed.
	PruneLLMEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
