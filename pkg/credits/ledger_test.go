package credits

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/models"
)

func TestMemoryLedger_Deduct(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 100)

	err := ledger.Deduct(ctx, Deduction{
		WorkspaceID: "ws-1",
		UserID:      "user-1",
		Amount:      30,
		Reason:      DeductReason("Flux Dev"),
		JobID:       "job-1",
	})
	require.NoError(t, err)

	balance, err := ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 70, balance)

	transactions := ledger.Transactions("ws-1")
	require.Len(t, transactions, 1)
	assert.Equal(t, -30, transactions[0].Amount)
	assert.Equal(t, "Node: Flux Dev", transactions[0].Reason)
	assert.Equal(t, "job-1", transactions[0].JobID)
	assert.NotEmpty(t, transactions[0].ID)
}

func TestMemoryLedger_InsufficientCredits(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 10)

	err := ledger.Deduct(ctx, Deduction{WorkspaceID: "ws-1", Amount: 11})
	require.ErrorIs(t, err, ErrInsufficientCredits)
	assert.Contains(t, err.Error(), "need 11, have 10")

	// A failed deduction writes nothing.
	balance, err := ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 10, balance)
	assert.Empty(t, ledger.Transactions("ws-1"))
}

func TestMemoryLedger_ExactBalanceIsSpendable(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 10)

	err := ledger.Deduct(ctx, Deduction{WorkspaceID: "ws-1", Amount: 10})
	require.NoError(t, err)

	balance, err := ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestMemoryLedger_UnknownWorkspace(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	_, err := ledger.Balance(ctx, "nope")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)

	err = ledger.Deduct(ctx, Deduction{WorkspaceID: "nope", Amount: 1})
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestMemoryLedger_RejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 10)

	assert.Error(t, ledger.Deduct(ctx, Deduction{WorkspaceID: "ws-1", Amount: 0}))
	assert.Error(t, ledger.Deduct(ctx, Deduction{WorkspaceID: "ws-1", Amount: -5}))
	assert.Error(t, ledger.Add(ctx, "ws-1", "grant", 0))
}

func TestMemoryLedger_Add(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 5)

	err := ledger.Add(ctx, "ws-1", "monthly grant", 150)
	require.NoError(t, err)

	balance, err := ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 155, balance)

	transactions := ledger.Transactions("ws-1")
	require.Len(t, transactions, 1)
	assert.Equal(t, 150, transactions[0].Amount)
}

func TestMemoryLedger_ConcurrentDeductionsNeverOverdraw(t *testing.T) {
	ctx := context.Background()

	ledger := NewMemoryLedger()
	ledger.SetBalance("ws-1", 50)

	var wg sync.WaitGroup

	successes := make(chan struct{}, 100)

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := ledger.Deduct(ctx, Deduction{WorkspaceID: "ws-1", Amount: 1}); err == nil {
				successes <- struct{}{}
			}
		}()
	}

	wg.Wait()
	close(successes)

	assert.Len(t, successes, 50)

	balance, err := ledger.Balance(ctx, "ws-1")
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestPlanCredits(t *testing.T) {
	assert.Equal(t, 150, PlanCredits(models.PlanFree))
	assert.Equal(t, 1500, PlanCredits(models.PlanStarter))
	assert.Equal(t, 4000, PlanCredits(models.PlanPro))
	assert.Equal(t, 4500, PlanCredits(models.PlanTeam))
	// Unknown plans fall back to the free grant.
	assert.Equal(t, 150, PlanCredits(models.PlanType("mystery")))
}

func TestDeductReason(t *testing.T) {
	assert.Equal(t, "Node: Kling v3", DeductReason("Kling v3"))
}
