package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence"
)

// WorkspaceRepository handles workspace-related database operations.
type WorkspaceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewWorkspaceRepository(db *sql.DB, logger *slog.Logger) *WorkspaceRepository {
	return &WorkspaceRepository{db: db, logger: logger}
}

const workspaceColumns = `
	id
  , name
  , slug
  , plan
  , credits
  , owner_id
  , created_at
`

func (r *WorkspaceRepository) GetAll(ctx context.Context) ([]*models.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces: %w", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	workspaces := make([]*models.Workspace, 0)

	for rows.Next() {
		var ws models.Workspace

		err := rows.Scan(&ws.ID, &ws.Name, &ws.Slug, &ws.Plan, &ws.Credits,
			&ws.OwnerID, &ws.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}

		workspaces = append(workspaces, &ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspaces: %w", err)
	}

	return workspaces, nil
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	var ws models.Workspace

	err := r.db.QueryRowContext(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces WHERE id = $1", id,
	).Scan(&ws.ID, &ws.Name, &ws.Slug, &ws.Plan, &ws.Credits, &ws.OwnerID, &ws.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", persistence.ErrWorkspaceNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	return &ws, nil
}

func (r *WorkspaceRepository) Save(ctx context.Context, workspace *models.Workspace) error {
	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO workspaces (` + workspaceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			plan = EXCLUDED.plan,
			credits = EXCLUDED.credits
	`

	_, err := r.db.ExecContext(ctx, query,
		workspace.ID, workspace.Name, workspace.Slug, workspace.Plan,
		workspace.Credits, workspace.OwnerID, workspace.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}

	return nil
}

func (r *WorkspaceRepository) SetCredits(ctx context.Context, workspaceID string, credits int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE workspaces SET credits = $1 WHERE id = $2", credits, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to set workspace credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", persistence.ErrWorkspaceNotFound, workspaceID)
	}

	return nil
}
