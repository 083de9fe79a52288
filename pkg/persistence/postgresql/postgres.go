// Package postgresql provides PostgreSQL persistence for workflows, jobs
// and workspaces.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq" // postgres driver

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence/sqlbase"
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db            *sql.DB
	logger        *slog.Logger
	workflowRepo  *WorkflowRepository
	jobRepo       *JobRepository
	workspaceRepo *WorkspaceRepository
}

// NewPersistence connects, pings and migrates before returning.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())
	if err := migrationManager.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Persistence{
		db:            database,
		logger:        logger,
		workflowRepo:  NewWorkflowRepository(database, logger),
		jobRepo:       NewJobRepository(database, logger),
		workspaceRepo: NewWorkspaceRepository(database, logger),
	}, nil
}

// DB exposes the underlying connection so the credit ledger can share it.
func (p *Persistence) DB() *sql.DB {
	return p.db
}

func (p *Persistence) Workflows(ctx context.Context, workspaceID string) ([]*models.Workflow, error) {
	return p.workflowRepo.GetAll(ctx, workspaceID)
}

func (p *Persistence) SaveWorkflow(ctx context.Context, workflow *models.Workflow) error {
	return p.workflowRepo.Save(ctx, workflow)
}

func (p *Persistence) WorkflowByID(ctx context.Context, id string) (*models.Workflow, error) {
	return p.workflowRepo.GetByID(ctx, id)
}

func (p *Persistence) DeleteWorkflow(ctx context.Context, id string) error {
	return p.workflowRepo.Delete(ctx, id)
}

func (p *Persistence) Jobs(ctx context.Context, workspaceID string) ([]*models.Job, error) {
	return p.jobRepo.GetAll(ctx, workspaceID)
}

func (p *Persistence) SaveJob(ctx context.Context, job *models.Job) error {
	return p.jobRepo.Save(ctx, job)
}

func (p *Persistence) JobByID(ctx context.Context, id string) (*models.Job, error) {
	return p.jobRepo.GetByID(ctx, id)
}

func (p *Persistence) Workspaces(ctx context.Context) ([]*models.Workspace, error) {
	return p.workspaceRepo.GetAll(ctx)
}

func (p *Persistence) SaveWorkspace(ctx context.Context, workspace *models.Workspace) error {
	return p.workspaceRepo.Save(ctx, workspace)
}

func (p *Persistence) WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error) {
	return p.workspaceRepo.GetByID(ctx, id)
}

func (p *Persistence) SetWorkspaceCredits(ctx context.Context, workspaceID string, credits int) error {
	return p.workspaceRepo.SetCredits(ctx, workspaceID, credits)
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (p *Persistence) Close(ctx context.Context) error {
	if p.db != nil {
		if err := p.db.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}
