package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func failover(providers ...Provider) *FailoverProvider {
	return NewFailover(providers, 1*time.Millisecond)
}

func TestFailover_FirstCredentialSucceeds(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	second := NewMockProvider()
	p := failover(first, second)

	resp, err := p.Generate(context.Background(), Request{Prompt: "go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Q1. ok" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if second.CallCount() != 0 {
		t.Fatalf("second credential should not be touched, got %d calls", second.CallCount())
	}
}

func TestFailover_RateLimitAdvances(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	second := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	p := failover(first, second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Q1. ok" {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if first.CallCount() != 1 || second.CallCount() != 1 {
		t.Fatalf("expected 1 call each, got %d and %d", first.CallCount(), second.CallCount())
	}
}

func TestFailover_AuthFailureAdvances(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrAuthFailed{Err: errors.New("401")}},
	)
	second := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	p := failover(first, second)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.CallCount() != 1 {
		t.Fatalf("expected failover to second credential, got %d calls", second.CallCount())
	}
}

func TestFailover_OtherErrorsSurfaceImmediately(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	second := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	p := failover(first, second)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if second.CallCount() != 0 {
		t.Fatalf("second credential should not be tried, got %d calls", second.CallCount())
	}
}

func TestFailover_ExhaustedListIsTerminal(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	second := NewMockProvider(
		MockResponse{Err: &ErrAuthFailed{Err: errors.New("403")}},
	)
	p := failover(first, second)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var exhausted *ErrCredentialsExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ErrCredentialsExhausted, got %T", err)
	}
	if exhausted.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", exhausted.Attempts)
	}
	var auth *ErrAuthFailed
	if !errors.As(err, &auth) {
		t.Fatalf("expected last error to unwrap to ErrAuthFailed, got %v", err)
	}
}

func TestFailover_ContextCancellation(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	second := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	p := failover(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if second.CallCount() != 0 {
		t.Fatalf("cancelled context must not reach second credential, got %d calls", second.CallCount())
	}
}

func TestFailover_RetryAfterShortensBackoff(t *testing.T) {
	first := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Microsecond, Err: errors.New("429")}},
	)
	second := NewMockProvider(
		MockResponse{Content: json.RawMessage(`Q1. ok`)},
	)
	p := NewFailover([]Provider{first, second}, 10*time.Second)

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 1*time.Second {
		t.Fatalf("backoff ignored RetryAfter, took %s", elapsed)
	}
}

func TestFailover_ModelIDReportsFirstCredential(t *testing.T) {
	p := failover(NewMockProvider(), NewMockProvider())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
