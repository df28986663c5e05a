package llm

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func problemSchema() *Schema {
	return &Schema{
		Name: "generated-problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem":    map[string]any{"type": "string"},
				"subject":    map[string]any{"type": "string", "enum": []any{"Algebra", "Geometry", "Number Theory", "Combinatorics"}},
				"difficulty": map[string]any{"type": "string"},
			},
			"required":             []any{"problem", "subject", "difficulty"},
			"additionalProperties": false,
		},
	}
}

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "synthesize")
	if p := PurposeFrom(ctx); p != "synthesize" {
		t.Fatalf("expected 'synthesize', got %q", p)
	}
}

func TestSessionIDContext(t *testing.T) {
	ctx := context.Background()
	if id := SessionIDFrom(ctx); id != "" {
		t.Fatalf("expected empty session ID, got %q", id)
	}
	ctx = WithSessionID(ctx, "s-1")
	if id := SessionIDFrom(ctx); id != "s-1" {
		t.Fatalf("expected 's-1', got %q", id)
	}
}

func TestMockResponder(t *testing.T) {
	mock := NewMockResponder(func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`{"echo":"` + req.Messages[0].Content + `"}`)}
	})

	for _, in := range []string{"a", "b"} {
		resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: in}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"echo":"` + in + `"}`; string(resp.Content) != want {
			t.Fatalf("got %s, want %s", resp.Content, want)
		}
	}
	last, ok := mock.LastCall()
	if !ok || last.Messages[0].Content != "b" {
		t.Fatalf("LastCall = %+v, %v", last, ok)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("```json\n{\"problem\":\"p\",\"subject\":\"Algebra\",\"difficulty\":\"x\"}\n```")},
		MockResponse{Content: json.RawMessage(`{"problem":"p"}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{Schema: problemSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid(resp.Content) {
		t.Fatalf("fence not stripped: %s", resp.Content)
	}

	_, err = mock.Generate(context.Background(), Request{Schema: problemSchema()})
	if !IsInvalidResponse(err) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRequestFingerprint(t *testing.T) {
	base := Request{
		System:    "sys",
		Messages:  []Message{{Role: RoleUser, Content: "Prove it."}},
		Schema:    problemSchema(),
		MaxTokens: 100,
	}
	same := base
	other := base
	other.Messages = []Message{{Role: RoleUser, Content: "Disprove it."}}

	if base.Fingerprint() != same.Fingerprint() {
		t.Fatal("identical requests should share a fingerprint")
	}
	if base.Fingerprint() == other.Fingerprint() {
		t.Fatal("different messages should change the fingerprint")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

var llmEnvVars = []string{
	"SYNTHETICA_LLM_PROVIDER", "SYNTHETICA_GEMINI_API_KEY", "SYNTHETICA_GEMINI_MODEL",
	"SYNTHETICA_OPENAI_API_KEY", "SYNTHETICA_ANTHROPIC_API_KEY", "SYNTHETICA_OPENROUTER_API_KEY",
	"SYNTHETICA_LLM_MAX_ATTEMPTS", "SYNTHETICA_LLM_TIMEOUT", "SYNTHETICA_LLM_CACHE_SIZE",
	"SYNTHETICA_LLM_MAX_TOKENS", "GEMINI_API_KEY", "API_KEY", "OPENAI_API_KEY",
	"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range llmEnvVars {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("SYNTHETICA_LLM_PROVIDER", "openai")
	t.Setenv("SYNTHETICA_OPENAI_API_KEY", "sk-test")
	t.Setenv("SYNTHETICA_LLM_MAX_ATTEMPTS", "3")
	t.Setenv("SYNTHETICA_LLM_TIMEOUT", "90s")
	t.Setenv("SYNTHETICA_LLM_CACHE_SIZE", "0")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("provider/key not read: %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout.String() != "1m30s" {
		t.Errorf("Timeout = %v, want 1m30s", cfg.Timeout)
	}
	if cfg.CacheSize != 0 {
		t.Errorf("CacheSize = %d, want 0", cfg.CacheSize)
	}
	if cfg.MaxTokens != 16384 {
		t.Errorf("MaxTokens = %d, want default 16384", cfg.MaxTokens)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearLLMEnv(t)
	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" || cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		found    bool
	}{
		{"nothing set", nil, "", false},
		{"gemini key", map[string]string{"GEMINI_API_KEY": "g"}, "gemini", true},
		{"bare API_KEY means gemini", map[string]string{"API_KEY": "g"}, "gemini", true},
		{"gemini wins over openai", map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o"}, "gemini", true},
		{"openai before anthropic", map[string]string{"OPENAI_API_KEY": "o", "ANTHROPIC_API_KEY": "a"}, "openai", true},
		{"openrouter last", map[string]string{"OPENROUTER_API_KEY": "r"}, "openrouter", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, ok := DiscoverConfig()
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if cfg.Provider != tt.provider {
				t.Fatalf("provider = %q, want %q", cfg.Provider, tt.provider)
			}
			if ok {
				if err := cfg.Validate(); err != nil {
					t.Fatalf("discovered config invalid: %v", err)
				}
			}
		})
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("explicit provider with missing key is an error", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("SYNTHETICA_LLM_PROVIDER", "anthropic")
		t.Setenv("GEMINI_API_KEY", "g")
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("falls back to discovery", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENAI_API_KEY", "o")
		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "openai" {
			t.Fatalf("provider = %q, want openai", cfg.Provider)
		}
	})
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("mock", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("SYNTHETICA_LLM_PROVIDER", "mock")
		cfg, err := ResolveConfig()
		if err != nil || cfg.Provider != "mock" {
			t.Fatalf("got %+v, %v", cfg, err)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	clearLLMEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SYNTHETICA_GEMINI_API_KEY=from-file\nSYNTHETICA_LLM_PROVIDER=gemini\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// Unset rather than empty so godotenv may fill them in.
	os.Unsetenv("SYNTHETICA_GEMINI_API_KEY")
	os.Unsetenv("SYNTHETICA_LLM_PROVIDER")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SYNTHETICA_GEMINI_API_KEY"); got != "from-file" {
		t.Fatalf("key = %q, want from-file", got)
	}
	os.Unsetenv("SYNTHETICA_GEMINI_API_KEY")
	os.Unsetenv("SYNTHETICA_LLM_PROVIDER")
}
