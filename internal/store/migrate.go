package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/synthetica/ent/schema"
)

const llmEventsTable = "llm_request_events"

// Column names of llmEventsTable.
const (
	colID           = "id"
	colSequence     = "sequence"
	colTimestamp    = "timestamp"
	colRequestID    = "request_id"
	colSessionID    = "session_id"
	colProvider     = "provider"
	colModel        = "model"
	colPurpose      = "purpose"
	colInputTokens  = "input_tokens"
	colOutputTokens = "output_tokens"
	colLatencyMs    = "latency_ms"
	colSuccess      = "success"
	colCached       = "cached"
	colErrorMessage = "error_message"
	colRequestBody  = "request_body"
	colResponseBody = "response_body"
)

// llmEventColumns lists the selectable columns in scan order.
var llmEventColumns = []string{
	colID, colSequence, colTimestamp, colRequestID, colSessionID,
	colProvider, colModel, colPurpose, colInputTokens, colOutputTokens,
	colLatencyMs, colSuccess, colCached, colErrorMessage,
	colRequestBody, colResponseBody,
}

// llmEventsSchema builds the telemetry table from its ent schema.
func llmEventsSchema() (*schema.Table, error) {
	return tableFromSchema(llmEventsTable, entschema.LLMRequestEvent{})
}

// tableFromSchema turns an ent schema into a migration table: an
// auto-increment id, then mixin fields, then the schema's own fields.
// Function defaults (time.Now) are applied by the repository, not the
// database.
func tableFromSchema(name string, s ent.Interface) (*schema.Table, error) {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: colID, Type: field.TypeInt, Increment: true})

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
		}
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		t.AddColumn(col)
	}

	prefix := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	prefix = strings.TrimSuffix(prefix, "s")
	for _, ix := range indexes {
		d := ix.Descriptor()
		t.AddIndex(prefix+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t, nil
}

// migrate creates or extends the telemetry tables. Migration is
// append-only: columns are added, never dropped.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv, schema.WithForeignKeys(false))
	if err != nil {
		return err
	}
	t, err := llmEventsSchema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	return m.Create(ctx, t)
}
