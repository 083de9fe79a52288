// Package main provides the haus worker, which consumes queued jobs and
// executes their workflow graphs.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"

	"github.com/haus-node/haus/pkg/cmd"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/engine"
	"github.com/haus-node/haus/pkg/log"
	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/otelhelper"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/persistence/postgresql"
	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/providers/fal"
	"github.com/haus-node/haus/pkg/providers/gemini"
	"github.com/haus-node/haus/pkg/providers/internalnode"
	"github.com/haus-node/haus/pkg/providers/openai"
	"github.com/haus-node/haus/pkg/providers/replicate"
	"github.com/haus-node/haus/pkg/queue"
	"github.com/haus-node/haus/pkg/registry"
	"github.com/haus-node/haus/pkg/storage"
)

func main() {
	command := &cli.Command{
		Name:                  "haus-worker",
		Usage:                 "Start workers to execute generation jobs",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "worker-id",
				Aliases: []string{"id"},
				Usage:   "Custom worker ID (auto-generated if not provided)",
				Value:   "",
				Sources: cli.EnvVars("WORKER_ID"),
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
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "Maximum number of jobs executed at once",
				Value:   queue.DefaultConcurrency,
				Sources: cli.EnvVars("WORKER_CONCURRENCY"),
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
				Name:    "fal-key",
				Usage:   "fal.ai API key",
				Sources: cli.EnvVars("FAL_KEY"),
			},
			&cli.StringFlag{
				Name:    "openai-api-key",
				Usage:   "OpenAI API key",
				Sources: cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "gemini-api-key",
				Usage:   "Google Gemini API key",
				Sources: cli.EnvVars("GEMINI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "replicate-api-token",
				Usage:   "Replicate API token",
				Sources: cli.EnvVars("REPLICATE_API_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "storage-endpoint",
				Usage:   "S3-compatible endpoint for mirroring generated media",
				Sources: cli.EnvVars("STORAGE_ENDPOINT"),
			},
			&cli.StringFlag{
				Name:    "storage-access-key",
				Usage:   "Object storage access key",
				Sources: cli.EnvVars("STORAGE_ACCESS_KEY"),
			},
			&cli.StringFlag{
				Name:    "storage-secret-key",
				Usage:   "Object storage secret key",
				Sources: cli.EnvVars("STORAGE_SECRET_KEY"),
			},
			&cli.StringFlag{
				Name:    "storage-bucket",
				Usage:   "Bucket for generated media",
				Value:   "haus-media",
				Sources: cli.EnvVars("STORAGE_BUCKET"),
			},
			&cli.StringFlag{
				Name:    "storage-public-url",
				Usage:   "Public base URL for mirrored media (defaults to the endpoint)",
				Sources: cli.EnvVars("STORAGE_PUBLIC_URL"),
			},
			&cli.BoolFlag{
				Name:    "storage-use-ssl",
				Usage:   "Use TLS when talking to object storage",
				Value:   true,
				Sources: cli.EnvVars("STORAGE_USE_SSL"),
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

			workerID := command.String("worker-id")
			if workerID == "" {
				workerID = "worker-" + uuid.New().String()[:8]
			}

			logger := log.WithModule("haus-worker").With("worker_id", workerID)

			logger.InfoContext(ctx, "Initializing haus worker")

			store, err := cmd.NewPersistence(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}

			defer func() {
				if err := store.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			_, sub, err := cmd.NewQueueChannel(command.String("queue-provider"), "haus-worker", logger)
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

			var media storage.Mirror
			if endpoint := command.String("storage-endpoint"); endpoint != "" {
				media, err = storage.NewMinioStore(ctx, storage.MinioConfig{
					Endpoint:  endpoint,
					AccessKey: command.String("storage-access-key"),
					SecretKey: command.String("storage-secret-key"),
					Bucket:    command.String("storage-bucket"),
					UseSSL:    command.Bool("storage-use-ssl"),
					PublicURL: command.String("storage-public-url"),
				}, logger)
				if err != nil {
					return err
				}
			} else {
				logger.WarnContext(ctx, "No object storage configured, keeping media in memory")

				media = storage.NewMemoryStore()
			}

			adapters, err := buildAdapters(ctx, command, media, logger)
			if err != nil {
				return err
			}

			orchestrator := engine.NewOrchestrator(
				registry.NewWithDefaults(),
				adapters,
				ledger,
				broadcaster,
				store,
				logger,
			)

			if tracer, err := otelhelper.NewTracer(ctx, "haus-worker"); err != nil {
				logger.WarnContext(ctx, "Tracing disabled", "error", err)
			} else {
				orchestrator.WithTracer(tracer)
			}

			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			jobs := queue.New(nil, sub, logger)

			err = jobs.Consume(runCtx, command.Int("concurrency"), jobHandler(store, orchestrator, logger))
			if err != nil {
				return err
			}

			logger.InfoContext(ctx, "Worker started successfully")

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			<-sigChan
			logger.InfoContext(ctx, "Shutting down worker")
			cancel()

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}

// jobHandler loads each dequeued job and runs it to a terminal state. An
// execution outcome acks: the orchestrator has already persisted and
// broadcast the result, and a redelivery would re-run providers and
// re-charge credits. Only a failure to load the job nacks for redelivery.
func jobHandler(store persistence.Persistence, orchestrator *engine.Orchestrator, logger *slog.Logger) queue.Handler {
	return func(ctx context.Context, payload queue.Payload) error {
		job, err := store.JobByID(ctx, payload.JobID)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to load queued job",
				"job_id", payload.JobID, "error", err)

			return err
		}

		if err := orchestrator.Run(ctx, job); err != nil {
			if errors.Is(err, persistence.ErrJobTerminal) {
				logger.WarnContext(ctx, "Dropping redelivery of finished job",
					"job_id", job.ID, "status", job.Status)
			} else {
				logger.ErrorContext(ctx, "Job finished with failure",
					"job_id", job.ID, "error", err)
			}
		}

		return nil
	}
}

// buildAdapters registers every provider the worker can serve. Adapters with
// missing credentials are still registered; their calls fail at execution
// time with the provider's own error.
func buildAdapters(ctx context.Context, command *cli.Command, media storage.Mirror, logger *slog.Logger) (*providers.Registry, error) {
	adapters := providers.NewRegistry()
	adapters.Register(models.ProviderInternal, internalnode.New())
	adapters.Register(models.ProviderFal, fal.New(command.String("fal-key"), media, logger))
	adapters.Register(models.ProviderOpenAI, openai.New(command.String("openai-api-key"), media, logger))
	adapters.Register(models.ProviderReplicate, replicate.New(command.String("replicate-api-token"), media, logger))

	geminiAdapter, err := gemini.New(ctx, command.String("gemini-api-key"), media, logger)
	if err != nil {
		return nil, err
	}

	adapters.Register(models.ProviderGemini, geminiAdapter)

	return adapters, nil
}
