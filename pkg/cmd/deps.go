// Package cmd wires shared infrastructure for the haus binaries.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/haus-node/haus/pkg/broadcast"
	"github.com/haus-node/haus/pkg/channels/gochannel"
	"github.com/haus-node/haus/pkg/channels/kafka"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/persistence/memory"
	"github.com/haus-node/haus/pkg/persistence/postgresql"
)

// NewPersistence selects the store from the database URL scheme. Anything
// that is not postgres falls back to the in-memory store, which is only
// suitable for development.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (persistence.Persistence, error) {
	switch parseScheme(databaseURL) {
	case "postgres", "postgresql":
		return postgresql.NewPersistence(ctx, logger, databaseURL)
	default:
		logger.WarnContext(ctx, "No postgres URL configured, using in-memory persistence")

		return memory.NewPersistence(), nil
	}
}

// NewQueueChannel builds the queue transport: Kafka when configured,
// otherwise the in-process channel.
func NewQueueChannel(provider, serviceName string, logger *slog.Logger) (message.Publisher, message.Subscriber, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	switch provider {
	case "kafka":
		pub, sub, err := kafka.CreateChannel(wmLogger, serviceName)

		return pub, sub, err
	case "", "gochannel":
		pub, sub, err := gochannel.CreateChannel(wmLogger)

		return pub, sub, err
	default:
		return nil, nil, fmt.Errorf("unsupported queue provider: %s", provider)
	}
}

// NewBroadcaster builds the event broadcaster: Redis when an address is
// configured, otherwise in-process.
func NewBroadcaster(ctx context.Context, redisAddr, redisPassword string, redisDB int, logger *slog.Logger) (broadcast.Broadcaster, error) {
	if redisAddr == "" {
		return broadcast.NewGoChannelBroadcaster(logger), nil
	}

	return broadcast.NewRedisBroadcaster(ctx, redisAddr, redisPassword, redisDB, logger)
}

func parseScheme(url string) string {
	scheme, _, found := strings.Cut(url, "://")
	if !found {
		return ""
	}

	return scheme
}
