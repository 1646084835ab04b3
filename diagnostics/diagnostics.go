// Package diagnostics is where views report failures they do not show
// to the user.
package diagnostics

import (
	"context"
	"encoding/json"
	"time"

	"mission_control/viewer/metrics"
	"mission_control/viewer/rabbitmq"

	"go.uber.org/zap"
)

// Event describes one swallowed failure.
type Event struct {
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	ViewID    string    `json:"view_id,omitempty"`
	At        time.Time `json:"at"`
}

type Sink interface {
	Report(ctx context.Context, ev Event)
}

// LogSink writes events to a zap logger at error level.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) Report(_ context.Context, ev Event) {
	metrics.DiagnosticsReported.WithLabelValues("log").Inc()
	s.Logger.Error(ev.Message,
		zap.String("source", ev.Source),
		zap.String("error", ev.Error),
		zap.String("view_id", ev.ViewID),
		zap.Time("at", ev.At),
	)
}

// AMQPSink publishes events to the diagnostics queue.
type AMQPSink struct {
	Channel rabbitmq.Publisher
	Logger  *zap.Logger
}

func (s AMQPSink) Report(ctx context.Context, ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		s.Logger.Error("failed to marshal diagnostic event", zap.Error(err))
		return
	}

	// the reporting view may already be torn down
	ctx = context.WithoutCancel(ctx)
	if err := rabbitmq.PublishWithRetry(ctx, s.Channel, rabbitmq.DiagnosticsQueue, body); err != nil {
		s.Logger.Error("failed to publish diagnostic event", zap.Error(err))
		return
	}
	metrics.DiagnosticsReported.WithLabelValues("amqp").Inc()
}

// Multi fans an event out to every sink in order.
type Multi []Sink

func (m Multi) Report(ctx context.Context, ev Event) {
	for _, s := range m {
		s.Report(ctx, ev)
	}
}
