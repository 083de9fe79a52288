// Package credits manages workspace credit balances. Deductions are atomic
// check-and-deduct operations paired with an append-only transaction log;
// the ledger is the single point of cross-job synchronization on a shared
// balance.
package credits

import (
	"context"
	"errors"
	"fmt"
)

// ErrInsufficientCredits is returned when a deduction would take the balance
// below zero. Callers match it with errors.Is.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ErrWorkspaceNotFound is returned when the workspace does not exist.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// Deduction describes one atomic charge against a workspace balance.
type Deduction struct {
	WorkspaceID string
	UserID      string
	Amount      int
	Reason      string
	JobID       string
}

// Ledger is the balance reader/writer. Deduct must check and write as one
// indivisible unit with respect to concurrent deductions on the same
// workspace.
type Ledger interface {
	// Balance returns the workspace's current credit balance.
	Balance(ctx context.Context, workspaceID string) (int, error)
	// Deduct atomically subtracts d.Amount from the balance and records a
	// negative transaction. Returns ErrInsufficientCredits when the balance
	// cannot cover the amount; nothing is written in that case.
	Deduct(ctx context.Context, d Deduction) error
	// Add credits the workspace (plan grants, manual top-ups) and records a
	// positive transaction.
	Add(ctx context.Context, workspaceID, reason string, amount int) error
}

func validateAmount(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	return nil
}

// DeductReason names the charge for one executed node, as it appears in the
// transaction log.
func DeductReason(nodeLabel string) string {
	return "Node: " + nodeLabel
}
