// Package main provides the haus API server.
package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/haus-node/haus/pkg/cmd"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/log"
	"github.com/haus-node/haus/pkg/persistence/postgresql"
	"github.com/haus-node/haus/pkg/queue"
	"github.com/haus-node/haus/pkg/registry"
	"github.com/haus-node/haus/pkg/web"
)

const defaultPort = 9090

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "haus-api",
		Usage:                 "Manage workflows and submit generation jobs",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Database connection URL for persistence",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "queue-provider",
				Usage:   "Job queue transport (kafka, gochannel)",
				Value:   "kafka",
				Sources: cli.EnvVars("QUEUE_PROVIDER"),
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis address for the event broadcaster",
				Sources: cli.EnvVars("REDIS_ADDR"),
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Usage:   "Redis password",
				Sources: cli.EnvVars("REDIS_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing haus API")

			store, err := cmd.NewPersistence(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}

			defer func() {
				if err := store.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			pub, _, err := cmd.NewQueueChannel(command.String("queue-provider"), "haus-api", logger)
			if err != nil {
				return err
			}

			broadcaster, err := cmd.NewBroadcaster(ctx,
				command.String("redis-addr"), command.String("redis-password"), 0, logger)
			if err != nil {
				return err
			}

			defer func() {
				if err := broadcaster.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close broadcaster", "error", err)
				}
			}()

			var ledger credits.Ledger = credits.NewMemoryLedger()
			if pg, ok := store.(*postgresql.Persistence); ok {
				ledger = credits.NewPostgresLedger(pg.DB(), logger)
			}

			resetter := credits.NewResetter(store, logger)
			if err := resetter.Start(ctx); err != nil {
				return err
			}

			defer resetter.Stop()

			api := web.NewAPI(
				logger,
				store,
				registry.NewWithDefaults(),
				ledger,
				queue.New(pub, nil, logger),
				broadcaster,
			)

			return api.Start(command.Int("port"))
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
