// Package persistence provides the data storage abstraction for workflows,
// jobs and workspaces.
package persistence

import (
	"context"

	"github.com/haus-node/haus/pkg/models"
)

type Persistence interface {
	Workflows(ctx context.Context, workspaceID string) ([]*models.Workflow, error)
	SaveWorkflow(ctx context.Context, workflow *models.Workflow) error
	WorkflowByID(ctx context.Context, id string) (*models.Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error

	Jobs(ctx context.Context, workspaceID string) ([]*models.Job, error)
	SaveJob(ctx context.Context, job *models.Job) error
	JobByID(ctx context.Context, id string) (*models.Job, error)

	Workspaces(ctx context.Context) ([]*models.Workspace, error)
	SaveWorkspace(ctx context.Context, workspace *models.Workspace) error
	WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error)
	SetWorkspaceCredits(ctx context.Context, workspaceID string, credits int) error

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
