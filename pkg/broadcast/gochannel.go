package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// GoChannelBroadcaster is the in-process broadcaster, backed by watermill's
// GoChannel pubsub. It is what tests and single-binary deployments use; the
// worker fleet runs RedisBroadcaster instead.
type GoChannelBroadcaster struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewGoChannelBroadcaster(logger *slog.Logger) *GoChannelBroadcaster {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 1000,
			Persistent:          false,
		},
		watermill.NewSlogLogger(logger),
	)

	return &GoChannelBroadcaster{
		pubSub: pubSub,
		logger: logger.With("module", "broadcast"),
	}
}

func (b *GoChannelBroadcaster) Publish(ctx context.Context, jobID string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(ChannelFor(jobID), msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (b *GoChannelBroadcaster) Subscribe(ctx context.Context, jobID string) (<-chan Event, error) {
	messages, err := b.pubSub.Subscribe(ctx, ChannelFor(jobID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to job channel: %w", err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)

		for msg := range messages {
			var event Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				b.logger.ErrorContext(ctx, "Dropping malformed broadcast event",
					"job_id", jobID, "error", err)
				msg.Ack()

				continue
			}

			select {
			case events <- event:
				msg.Ack()
			case <-ctx.Done():
				msg.Nack()

				return
			}
		}
	}()

	return events, nil
}

func (b *GoChannelBroadcaster) Close() error {
	return b.pubSub.Close()
}
