package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/broadcast"
	"github.com/haus-node/haus/pkg/channels/gochannel"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/engine"
	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence/memory"
	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/queue"
	"github.com/haus-node/haus/pkg/registry"
)

// countingAdapter records how many times it was dispatched.
type countingAdapter struct {
	mu     sync.Mutex
	n      int
	result map[string]any
	err    error
}

func (a *countingAdapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	a.mu.Lock()
	a.n++
	a.mu.Unlock()

	if a.err != nil {
		return nil, a.err
	}

	return a.result, nil
}

func (a *countingAdapter) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.n
}

type workerEnv struct {
	store  *memory.Persistence
	ledger *credits.MemoryLedger
	queue  *queue.Queue
	gen    *countingAdapter
	flaky  *countingAdapter
}

func setupWorker(t *testing.T, ctx context.Context) *workerEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store := memory.NewPersistence()
	ledger := credits.NewMemoryLedger()
	ledger.SetBalance("ws-1", 50)

	gen := &countingAdapter{result: map[string]any{"image": "https://cdn.example/a.png"}}
	flaky := &countingAdapter{err: errors.New("upstream 500")}

	adapters := providers.NewRegistry()
	adapters.Register(models.ProviderGemini, gen)
	adapters.Register(models.ProviderFal, flaky)

	orchestrator := engine.NewOrchestrator(
		registry.NewWithDefaults(),
		adapters,
		ledger,
		broadcast.NewGoChannelBroadcaster(logger),
		store,
		logger,
	)

	pub, sub, err := gochannel.CreateChannel(watermill.NewSlogLogger(logger))
	require.NoError(t, err)

	jobs := queue.New(pub, sub, logger)
	require.NoError(t, jobs.Consume(ctx, 1, jobHandler(store, orchestrator, logger)))

	return &workerEnv{store: store, ledger: ledger, queue: jobs, gen: gen, flaky: flaky}
}

// failingJob is a two-node graph: a 5-credit Imagen node feeding a fal node
// whose adapter always errors.
func failingJob() *models.Job {
	return &models.Job{
		ID:          "job-1",
		WorkspaceID: "ws-1",
		UserID:      "user-1",
		Status:      models.JobStatusQueued,
		Snapshot: models.WorkflowSnapshot{
			Nodes: []*models.WorkflowNode{
				{ID: "gen", Type: "imagen-4",
					Data: models.WorkflowNodeData{Parameters: map[string]any{"prompt": "a cat"}}},
				{ID: "edit", Type: "flux-dev",
					Data: models.WorkflowNodeData{Parameters: map[string]any{"prompt": "refine"}}},
			},
			Edges: []*models.WorkflowEdge{
				{ID: "e1", Source: "gen", SourceHandle: "image", Target: "edit", TargetHandle: "image"},
			},
		},
		Inputs:    map[string]any{},
		Outputs:   []models.JobOutput{},
		CreatedAt: time.Now().UTC(),
	}
}

func TestJobHandler_FailedJobIsAckedNotRedelivered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env := setupWorker(t, ctx)

	require.NoError(t, env.store.SaveJob(ctx, failingJob()))
	require.NoError(t, env.queue.Enqueue(ctx, queue.Payload{JobID: "job-1", WorkspaceID: "ws-1", UserID: "user-1"}))

	require.Eventually(t, func() bool {
		job, err := env.store.JobByID(ctx, "job-1")

		return err == nil && job.Status == models.JobStatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	// A nack would redeliver and re-run the graph within this window,
	// charging the Imagen node again on every pass.
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 1, env.gen.calls())
	assert.Equal(t, 1, env.flaky.calls())

	balance, err := env.ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 45, balance)

	job, err := env.store.JobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 5, job.CreditsUsed)
}

func TestJobHandler_FinishedJobIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env := setupWorker(t, ctx)

	job := failingJob()
	job.Status = models.JobStatusCompleted
	require.NoError(t, env.store.SaveJob(ctx, job))

	require.NoError(t, env.queue.Enqueue(ctx, queue.Payload{JobID: "job-1", WorkspaceID: "ws-1", UserID: "user-1"}))

	time.Sleep(300 * time.Millisecond)

	assert.Zero(t, env.gen.calls())
	assert.Zero(t, env.flaky.calls())

	got, err := env.store.JobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, got.Status)
}
