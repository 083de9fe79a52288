package credits

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// PostgresLedger implements the ledger on PostgreSQL. Deduct runs a
// SELECT ... FOR UPDATE followed by the balance write and transaction insert
// inside one database transaction, so concurrent deductions on the same
// workspace serialize on the row lock.
type PostgresLedger struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresLedger(db *sql.DB, logger *slog.Logger) *PostgresLedger {
	return &PostgresLedger{
		db:     db,
		logger: logger.With("module", "credits"),
	}
}

func (l *PostgresLedger) Balance(ctx context.Context, workspaceID string) (int, error) {
	var balance int

	err := l.db.QueryRowContext(ctx,
		"SELECT credits FROM workspaces WHERE id = $1", workspaceID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrWorkspaceNotFound, workspaceID)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to query workspace balance: %w", err)
	}

	return balance, nil
}

func (l *PostgresLedger) Deduct(ctx context.Context, d Deduction) error {
	if err := validateAmount(d.Amount); err != nil {
		return err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin deduction transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	var balance int

	err = tx.QueryRowContext(ctx,
		"SELECT credits FROM workspaces WHERE id = $1 FOR UPDATE", d.WorkspaceID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, d.WorkspaceID)
	}

	if err != nil {
		return fmt.Errorf("failed to lock workspace row: %w", err)
	}

	if balance < d.Amount {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCredits, d.Amount, balance)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE workspaces SET credits = credits - $1 WHERE id = $2",
		d.Amount, d.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to update workspace balance: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_transactions (id, workspace_id, user_id, amount, reason, job_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW())`,
		uuid.New().String(), d.WorkspaceID, d.UserID, -d.Amount, d.Reason, d.JobID)
	if err != nil {
		return fmt.Errorf("failed to record credit transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deduction: %w", err)
	}

	return nil
}

func (l *PostgresLedger) Add(ctx context.Context, workspaceID, reason string, amount int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin top-up transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"UPDATE workspaces SET credits = credits + $1 WHERE id = $2",
		amount, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to update workspace balance: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_transactions (id, workspace_id, user_id, amount, reason, created_at)
		VALUES ($1, $2, '', $3, $4, NOW())`,
		uuid.New().String(), workspaceID, amount, reason)
	if err != nil {
		return fmt.Errorf("failed to record credit transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit top-up: %w", err)
	}

	return nil
}
