package forecast

import (
	"context"
	"testing"
)

func TestRateLimitedProvider_ForwardsWithinBudget(t *testing.T) {
	inner := &mockProvider{payload: usablePayload()}
	limited := NewRateLimitedProvider(inner, 100, 5)
	coords, dates := cacheTestArgs(t)

	for i := 0; i < 3; i++ {
		if _, err := limited.FetchPayload(context.Background(), coords, dates); err != nil {
			t.Fatalf("FetchPayload returned error: %v", err)
		}
	}
	if inner.calls != 3 {
		t.Errorf("inner provider called %d times, want 3", inner.calls)
	}
}

func TestRateLimitedProvider_CanceledContext(t *testing.T) {
	inner := &mockProvider{payload: usablePayload()}
	limited := NewRateLimitedProvider(inner, 0.001, 1)
	coords, dates := cacheTestArgs(t)

	// First call consumes the single burst token
	if _, err := limited.FetchPayload(context.Background(), coords, dates); err != nil {
		t.Fatalf("FetchPayload returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := limited.FetchPayload(ctx, coords, dates); err == nil {
		t.Fatal("expected error when waiting on a canceled context")
	}
	if inner.calls != 1 {
		t.Errorf("inner provider called %d times, want 1", inner.calls)
	}
}

func TestRateLimitedProvider_Name(t *testing.T) {
	limited := NewRateLimitedProvider(&mockProvider{}, 1, 1)
	if got := limited.Name(); got != "mock [rate limited]" {
		t.Errorf("Name() = %q", got)
	}
}
