package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	failures int
	calls    int
	last     amqp.Publishing
	key      string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("channel closed")
	}
	f.key = key
	f.last = msg
	return nil
}

func withFastRetry(t *testing.T) {
	t.Helper()
	prev := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = prev })
}

func TestPublishWithRetry_RecoversAfterFailures(t *testing.T) {
	withFastRetry(t)
	ch := &fakeChannel{failures: 2}

	err := PublishWithRetry(context.Background(), ch, DiagnosticsQueue, []byte(`{"source":"test"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ch.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", ch.calls)
	}
	if ch.key != DiagnosticsQueue {
		t.Fatalf("expected routing key %s, got %s", DiagnosticsQueue, ch.key)
	}
	if ch.last.ContentType != "application/json" {
		t.Fatalf("expected application/json, got %s", ch.last.ContentType)
	}
}

func TestPublishWithRetry_GivesUp(t *testing.T) {
	withFastRetry(t)
	ch := &fakeChannel{failures: 100}

	err := PublishWithRetry(context.Background(), ch, DiagnosticsQueue, []byte(`{}`))
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if ch.calls != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, ch.calls)
	}
}

func TestPublishWithRetry_StopsOnCancel(t *testing.T) {
	prev := retryBackoff
	retryBackoff = time.Hour
	defer func() { retryBackoff = prev }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := &fakeChannel{failures: 100}

	err := PublishWithRetry(ctx, ch, DiagnosticsQueue, []byte(`{}`))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ch.calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", ch.calls)
	}
}
