package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes events over Redis pub/sub, one channel per job.
// Redis pub/sub already matches the contract: no replay, subscribers only
// see what is published while they are connected.
type RedisBroadcaster struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisBroadcaster connects and pings the server before returning.
func NewRedisBroadcaster(ctx context.Context, addr, password string, db int, logger *slog.Logger) (*RedisBroadcaster, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBroadcaster{
		client: client,
		logger: logger.With("module", "broadcast"),
	}, nil
}

func (b *RedisBroadcaster) Publish(ctx context.Context, jobID string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, ChannelFor(jobID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (b *RedisBroadcaster) Subscribe(ctx context.Context, jobID string) (<-chan Event, error) {
	sub := b.client.Subscribe(ctx, ChannelFor(jobID))

	// Wait for the subscription to be confirmed so the caller does not miss
	// events published immediately after Subscribe returns.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, fmt.Errorf("failed to subscribe to job channel: %w", err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)
		defer func() { _ = sub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.ErrorContext(ctx, "Dropping malformed broadcast event",
						"job_id", jobID, "error", err)

					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func (b *RedisBroadcaster) Close() error {
	return b.client.Close()
}
