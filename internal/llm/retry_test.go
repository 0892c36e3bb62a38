package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Requests()))
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(mock.Requests()) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Requests()))
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
	)
	p := WithRetry(mock, retryConfig(), nil)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(mock.Requests()) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(mock.Requests()))
	}
}

func TestRetry_TruncatedNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: truncated(json.RawMessage(`{"problem_text":`))},
	)
	p := WithRetry(mock, retryConfig(), nil)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got: %v", err)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", len(mock.Requests()))
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: invalidResponse(json.RawMessage(`bad`), errors.New("bad"))},
		MockResponse{Err: invalidResponse(json.RawMessage(`bad`), errors.New("bad"))},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(mock.Requests()) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Requests()))
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if len(mock.Requests()) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Requests()))
	}
}

func TestRetry_RejectedNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindRejected, Err: errors.New("401 invalid x-api-key")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), nil)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got: %v", err)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Requests()))
	}
}

func TestRetry_Backoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	cause := errors.New("down")
	for attempt, base := range map[int]time.Duration{1: 100 * time.Millisecond, 2: 200 * time.Millisecond, 3: 300 * time.Millisecond, 6: 300 * time.Millisecond} {
		got := r.backoff(attempt, unavailable(cause))
		if got < base*8/10 || got > base*12/10 {
			t.Errorf("backoff(%d) = %s, want %s ±20%%", attempt, got, base)
		}
	}
	if got := r.backoff(1, &Error{Kind: KindRateLimited, RetryAfter: 5 * time.Second}); got != 5*time.Second {
		t.Errorf("backoff with Retry-After = %s, want 5s", got)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig(), nil)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestRetry_LogsEachRetry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig(), zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := logs.FilterMessage("retrying llm request").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 retry log entries, got %d", len(entries))
	}
	if got := entries[1].ContextMap()["attempt"]; got != int64(2) {
		t.Fatalf("attempt = %v, want 2", got)
	}
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, RetryConfig{}, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Requests()))
	}
}
