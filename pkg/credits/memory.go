package credits

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haus-node/haus/pkg/models"
)

// MemoryLedger is an in-process ledger guarded by a single mutex. It backs
// tests and single-binary development; production uses PostgresLedger.
type MemoryLedger struct {
	mu           sync.Mutex
	balances     map[string]int
	transactions []models.CreditTransaction
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]int),
	}
}

// SetBalance seeds a workspace balance. Intended for tests and bootstrap.
func (l *MemoryLedger) SetBalance(workspaceID string, balance int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[workspaceID] = balance
}

func (l *MemoryLedger) Balance(ctx context.Context, workspaceID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[workspaceID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrWorkspaceNotFound, workspaceID)
	}

	return balance, nil
}

func (l *MemoryLedger) Deduct(ctx context.Context, d Deduction) error {
	if err := validateAmount(d.Amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[d.WorkspaceID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, d.WorkspaceID)
	}

	if balance < d.Amount {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCredits, d.Amount, balance)
	}

	l.balances[d.WorkspaceID] = balance - d.Amount
	l.transactions = append(l.transactions, models.CreditTransaction{
		ID:          uuid.New().String(),
		WorkspaceID: d.WorkspaceID,
		UserID:      d.UserID,
		Amount:      -d.Amount,
		Reason:      d.Reason,
		JobID:       d.JobID,
		CreatedAt:   time.Now().UTC(),
	})

	return nil
}

func (l *MemoryLedger) Add(ctx context.Context, workspaceID, reason string, amount int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[workspaceID] += amount
	l.transactions = append(l.transactions, models.CreditTransaction{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Amount:      amount,
		Reason:      reason,
		CreatedAt:   time.Now().UTC(),
	})

	return nil
}

// Transactions returns a copy of the transaction log, oldest first.
func (l *MemoryLedger) Transactions(workspaceID string) []models.CreditTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.CreditTransaction

	for _, tx := range l.transactions {
		if tx.WorkspaceID == workspaceID {
			out = append(out, tx)
		}
	}

	return out
}
