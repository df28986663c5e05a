package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/synthetica/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM request as a
// telemetry event and a log line.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	logger    *zap.Logger
}

// WithLogging wraps a Provider with event logging. provider names the
// backend ("gemini", "openai", ...) for the telemetry record. A nil repo
// or logger disables that sink.
func WithLogging(p Provider, provider string, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		RequestID:   requestID,
		SessionID:   SessionIDFrom(ctx),
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
		data.Cached = resp.Cached
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		// Keep the rejected content so malformed answers can be inspected.
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) && data.ResponseBody == "" {
			data.ResponseBody = string(inv.Content)
		}
	}

	l.record(ctx, data, err)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) record(ctx context.Context, data store.LLMRequestEventData, err error) {
	fields := []zap.Field{
		zap.String("request_id", data.RequestID),
		zap.String("provider", data.Provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.Int("input_tokens", data.InputTokens),
		zap.Int("output_tokens", data.OutputTokens),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Bool("cached", data.Cached),
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("llm request", fields...)
	}

	if l.eventRepo == nil {
		return
	}
	// Telemetry must never fail the request it describes.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		l.logger.Warn("failed to record LLM request event", zap.Error(logErr))
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
