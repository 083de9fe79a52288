package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence"
)

func TestWorkflowLifecycle(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence()

	workflow := &models.Workflow{
		ID:          "wf-1",
		Name:        "Poster pipeline",
		WorkspaceID: "ws-1",
		Nodes:       []*models.WorkflowNode{{ID: "n1", Type: "text-input"}},
	}

	require.NoError(t, p.SaveWorkflow(ctx, workflow))
	assert.False(t, workflow.CreatedAt.IsZero())

	loaded, err := p.WorkflowByID(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "Poster pipeline", loaded.Name)
	require.Len(t, loaded.Nodes, 1)

	// Reads return copies; mutating one must not leak into the store.
	loaded.Name = "mutated"

	again, err := p.WorkflowByID(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "Poster pipeline", again.Name)

	listed, err := p.Workflows(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	other, err := p.Workflows(ctx, "ws-other")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, p.DeleteWorkflow(ctx, "wf-1"))

	_, err = p.WorkflowByID(ctx, "wf-1")
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)

	err = p.DeleteWorkflow(ctx, "wf-1")
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)
}

func TestJobLifecycle(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence()

	job := &models.Job{
		ID:          "job-1",
		WorkspaceID: "ws-1",
		Status:      models.JobStatusQueued,
	}

	require.NoError(t, p.SaveJob(ctx, job))

	loaded, err := p.JobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusQueued, loaded.Status)

	job.Status = models.JobStatusCompleted
	job.CreditsUsed = 12
	require.NoError(t, p.SaveJob(ctx, job))

	loaded, err = p.JobByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, loaded.Status)
	assert.Equal(t, 12, loaded.CreditsUsed)

	jobs, err := p.Jobs(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	_, err = p.JobByID(ctx, "missing")
	assert.ErrorIs(t, err, persistence.ErrJobNotFound)
}

func TestWorkspaceLifecycle(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence()

	workspace := &models.Workspace{
		ID:      "ws-1",
		Name:    "Studio",
		Plan:    models.PlanPro,
		Credits: 4000,
	}

	require.NoError(t, p.SaveWorkspace(ctx, workspace))

	loaded, err := p.WorkspaceByID(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 4000, loaded.Credits)

	require.NoError(t, p.SetWorkspaceCredits(ctx, "ws-1", 150))

	loaded, err = p.WorkspaceByID(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 150, loaded.Credits)

	all, err := p.Workspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = p.WorkspaceByID(ctx, "missing")
	assert.ErrorIs(t, err, persistence.ErrWorkspaceNotFound)

	err = p.SetWorkspaceCredits(ctx, "missing", 1)
	assert.ErrorIs(t, err, persistence.ErrWorkspaceNotFound)
}

func TestHealthCheckAndClose(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence()

	assert.NoError(t, p.HealthCheck(ctx))
	assert.NoError(t, p.Close(ctx))
}

func TestIsNotFoundHelper(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence()

	_, err := p.WorkflowByID(ctx, "nope")
	assert.True(t, persistence.IsNotFound(err))
}
