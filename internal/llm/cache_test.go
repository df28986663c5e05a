package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCache_ServesRepeatedRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 4}},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)
	p, err := WithCache(mock, 8)
	if err != nil {
		t.Fatal(err)
	}

	req := Request{Messages: []Message{{Role: RoleUser, Content: "Prove it."}}}
	first, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first response should not be cached")
	}

	second, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second response should come from the cache")
	}
	if string(second.Content) != `{"n":1}` {
		t.Fatalf("cached content = %s", second.Content)
	}
	if second.Usage.InputTokens != 0 {
		t.Fatalf("cached usage should be zero, got %+v", second.Usage)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("inner calls = %d, want 1", mock.CallCount())
	}
}

func TestCache_DoesNotStoreErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p, _ := WithCache(mock, 8)
	req := Request{Messages: []Message{{Role: RoleUser, Content: "x"}}}

	if _, err := p.Generate(context.Background(), req); err == nil {
		t.Fatal("expected error")
	}
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("failed call must not populate the cache")
	}
}

func TestCache_DistinctRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)
	p, _ := WithCache(mock, 8)

	a, _ := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "a"}}})
	b, _ := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "b"}}})
	if string(a.Content) == string(b.Content) {
		t.Fatal("distinct requests should not share a cache entry")
	}
	if n := p.(*CacheProvider).Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}
}

func TestCache_Disabled(t *testing.T) {
	mock := NewMockProvider()
	p, err := WithCache(mock, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p != Provider(mock) {
		t.Fatal("size 0 should return the provider unchanged")
	}
}

func TestTimeout_CancelsSlowCall(t *testing.T) {
	slow := NewMockResponder(func(req Request) MockResponse {
		time.Sleep(50 * time.Millisecond)
		return MockResponse{Content: json.RawMessage(`{}`)}
	})
	p := WithTimeout(slow, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestTimeout_ZeroIsPassThrough(t *testing.T) {
	mock := NewMockProvider()
	if WithTimeout(mock, 0) != Provider(mock) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}
