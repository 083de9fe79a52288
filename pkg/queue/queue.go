// Package queue moves job execution requests from the API to the worker
// fleet over a watermill publisher/subscriber pair.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topic carries job execution requests.
const Topic = "jobs"

// DefaultConcurrency bounds how many jobs one worker executes at once.
const DefaultConcurrency = 5

// Payload is the wire message enqueuing one job. The worker loads the full
// job record by id; the payload only routes.
type Payload struct {
	JobID       string `json:"jobId"`
	WorkspaceID string `json:"workspaceId"`
	UserID      string `json:"userId"`
}

// Handler processes one dequeued job.
type Handler func(ctx context.Context, payload Payload) error

// Queue publishes and consumes job payloads.
type Queue struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

func New(pub message.Publisher, sub message.Subscriber, logger *slog.Logger) *Queue {
	return &Queue{
		publisher:  pub,
		subscriber: sub,
		logger:     logger.With("module", "queue"),
	}
}

// Enqueue publishes a job execution request.
func (q *Queue) Enqueue(ctx context.Context, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewULID(), data)
	msg.SetContext(ctx)

	if err := q.publisher.Publish(Topic, msg); err != nil {
		return fmt.Errorf("failed to enqueue job %s: %w", payload.JobID, err)
	}

	q.logger.InfoContext(ctx, "Job enqueued", "job_id", payload.JobID)

	return nil
}

// Consume pulls payloads and runs handler with bounded concurrency until
// ctx is cancelled. A handler error nacks the message; malformed payloads
// are acked and dropped.
func (q *Queue) Consume(ctx context.Context, concurrency int, handler Handler) error {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	messages, err := q.subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to job topic: %w", err)
	}

	slots := make(chan struct{}, concurrency)

	go func() {
		for msg := range messages {
			var payload Payload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				q.logger.ErrorContext(ctx, "Dropping malformed job payload",
					"message_id", msg.UUID, "error", err)
				msg.Ack()

				continue
			}

			slots <- struct{}{}

			go func(msg *message.Message, payload Payload) {
				defer func() { <-slots }()

				if err := handler(ctx, payload); err != nil {
					q.logger.ErrorContext(ctx, "Job handler failed",
						"job_id", payload.JobID, "error", err)
					msg.Nack()

					return
				}

				msg.Ack()
			}(msg, payload)
		}
	}()

	return nil
}
