package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence"
)

// JobRepository handles job-related database operations.
type JobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewJobRepository(db *sql.DB, logger *slog.Logger) *JobRepository {
	return &JobRepository{db: db, logger: logger}
}

const jobColumns = `
	id
  , workflow_id
  , workspace_id
  , user_id
  , status
  , workflow_snapshot
  , inputs
  , outputs
  , credits_used
  , error
  , started_at
  , completed_at
  , created_at
`

func (r *JobRepository) GetAll(ctx context.Context, workspaceID string) ([]*models.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE workspace_id = $1 ORDER BY created_at DESC",
		workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	jobs := make([]*models.Job, 0)

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", persistence.ErrJobNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	return job, nil
}

// Save upserts the whole job record. The orchestrator calls it on every
// status transition.
func (r *JobRepository) Save(ctx context.Context, job *models.Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	snapshot, err := json.Marshal(job.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow snapshot: %w", err)
	}

	inputs, err := json.Marshal(job.Inputs)
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}

	outputs, err := json.Marshal(job.Outputs)
	if err != nil {
		return fmt.Errorf("failed to marshal outputs: %w", err)
	}

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			outputs = EXCLUDED.outputs,
			credits_used = EXCLUDED.credits_used,
			error = EXCLUDED.error,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at
	`

	_, err = r.db.ExecContext(ctx, query,
		job.ID, nullString(job.WorkflowID), job.WorkspaceID, job.UserID, job.Status,
		snapshot, inputs, outputs, job.CreditsUsed, nullString(job.Error),
		job.StartedAt, job.CompletedAt, job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return nil
}

func scanJob(row rowScanner) (*models.Job, error) {
	var (
		job                        models.Job
		workflowID, jobError       sql.NullString
		snapshot, inputs, outputs  []byte
		startedAt, completedAt     sql.NullTime
	)

	err := row.Scan(
		&job.ID, &workflowID, &job.WorkspaceID, &job.UserID, &job.Status,
		&snapshot, &inputs, &outputs, &job.CreditsUsed, &jobError,
		&startedAt, &completedAt, &job.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &job.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workflow snapshot: %w", err)
	}

	if err := json.Unmarshal(inputs, &job.Inputs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
	}

	if err := json.Unmarshal(outputs, &job.Outputs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outputs: %w", err)
	}

	job.WorkflowID = workflowID.String
	job.Error = jobError.String

	if startedAt.Valid {
		job.StartedAt = &startedAt.Time
	}

	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}

	return &job, nil
}
