package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every model call for cost tracking and debugging.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Default("").
			Comment("Random ID of the call"),
		field.String("session_id").
			Default("").
			Comment("TUI session that made the call, empty for the CLI"),
		field.String("provider").
			Comment("Provider name: gemini, anthropic, openai, openrouter, mock"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("purpose").
			Comment("Gateway operation: synthesize, generate, verify"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Bool("cached").
			Default(false).
			Comment("Served from the in-process response cache"),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default(""),
		field.Text("response_body").
			Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("session_id"),
		index.Fields("success"),
	}
}
