package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func stepSchema() *Schema {
	return &Schema{
		Name:        "test-step",
		Description: "A reasoning step",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string"},
				"type": map[string]any{"type": "string", "enum": []any{"Hypothesis", "Lemma", "Conclusion"}},
				"dependencies": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"weight": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"id", "type"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"id":"S1","type":"Lemma","dependencies":["S0"]}`, false},
		{"without optional", `{"id":"S1","type":"Hypothesis"}`, false},
		{"missing required", `{"id":"S1"}`, true},
		{"wrong type", `{"id":"S1","type":"Lemma","weight":"heavy"}`, true},
		{"invalid enum", `{"id":"S1","type":"Remark"}`, true},
		{"wrong array item type", `{"id":"S1","type":"Lemma","dependencies":[1,2]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(stepSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if !IsInvalidResponse(err) {
				t.Error("IsInvalidResponse should report true")
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NullableObject(t *testing.T) {
	schema := &Schema{
		Name: "test-nullable",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"isValid": map[string]any{"type": "boolean"},
				"formalizedStep": map[string]any{
					"type":       []any{"object", "null"},
					"properties": map[string]any{"id": map[string]any{"type": "string"}},
					"required":   []any{"id"},
				},
			},
			"required": []any{"isValid", "formalizedStep"},
		},
	}

	for _, raw := range []string{
		`{"isValid":false,"formalizedStep":null}`,
		`{"isValid":true,"formalizedStep":{"id":"S3"}}`,
	} {
		if err := ValidateJSON(schema, json.RawMessage(raw)); err != nil {
			t.Errorf("%s: unexpected error: %v", raw, err)
		}
	}
	if err := ValidateJSON(schema, json.RawMessage(`{"isValid":true,"formalizedStep":{}}`)); err == nil {
		t.Error("expected error for step without id")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}\n", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```JSON\n{\"a\":1}```", `{"a":1}`},
		{"```\n{\"a\":1}\n```\n", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
		{"```{\n\"a\":1}\n```", "{\n\"a\":1}"},
		{"```json{\"a\":1}```", `{"a":1}`},
		{"```JSON {\"a\":1} ```", `{"a":1}`},
		{"```json[1,2]```", `[1,2]`},
		{"```true```", `true`},
	}
	for _, tt := range tests {
		if got := string(StripCodeFence(json.RawMessage(tt.in))); got != tt.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
