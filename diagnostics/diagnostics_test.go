package diagnostics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingChannel struct {
	bodies [][]byte
}

func (r *recordingChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	r.bodies = append(r.bodies, msg.Body)
	return nil
}

func TestLogSink_Report(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sink := LogSink{Logger: zap.New(core)}

	sink.Report(context.Background(), Event{
		Source:  "mission-list",
		Message: "Failed to fetch missions",
		Error:   "connection refused",
		At:      time.Now(),
	})

	entries := logs.FilterMessage("Failed to fetch missions").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "connection refused" {
		t.Fatalf("expected error field, got %v", got)
	}
}

func TestAMQPSink_Report(t *testing.T) {
	ch := &recordingChannel{}
	sink := AMQPSink{Channel: ch, Logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Report(ctx, Event{Source: "mission-list", Message: "boom", Error: "503"})

	if len(ch.bodies) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(ch.bodies))
	}
	var ev Event
	if err := json.Unmarshal(ch.bodies[0], &ev); err != nil {
		t.Fatalf("invalid JSON published: %v", err)
	}
	if ev.Source != "mission-list" || ev.Error != "503" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestMulti_Report(t *testing.T) {
	first, second := &recordingChannel{}, &recordingChannel{}
	m := Multi{
		AMQPSink{Channel: first, Logger: zap.NewNop()},
		AMQPSink{Channel: second, Logger: zap.NewNop()},
	}

	m.Report(context.Background(), Event{Message: "boom"})

	if len(first.bodies) != 1 || len(second.bodies) != 1 {
		t.Fatalf("expected both sinks to receive the event, got %d and %d", len(first.bodies), len(second.bodies))
	}
}
