package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DiagnosticsQueue = "diagnostics_queue"
	maxAttempts      = 5
)

// Publisher is the slice of *amqp.Channel used for publishing.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// initial wait between publish attempts, doubled after each failure
var retryBackoff = time.Second

// SetupRabbitMQ connects to RabbitMQ and declares the diagnostics queue
func SetupRabbitMQ(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(DiagnosticsQueue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare %s: %w", DiagnosticsQueue, err)
	}

	return conn, ch, nil
}

// PublishWithRetry publishes a JSON message to a queue with retries
func PublishWithRetry(ctx context.Context, ch Publisher, queue string, body []byte) error {
	wait := retryBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
		if err == nil {
			return nil
		}

		zap.L().Warn("publish failed",
			zap.String("queue", queue),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err),
		)

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("publish to %s: %w", queue, ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}

	return fmt.Errorf("failed to publish message to queue %s after retries", queue)
}
