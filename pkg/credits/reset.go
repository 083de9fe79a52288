package credits

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/haus-node/haus/pkg/models"
)

// monthlyResetSpec fires at midnight UTC on the first of every month.
const monthlyResetSpec = "0 0 1 * *"

// WorkspaceStore is the slice of persistence the resetter needs.
type WorkspaceStore interface {
	Workspaces(ctx context.Context) ([]*models.Workspace, error)
	SetWorkspaceCredits(ctx context.Context, workspaceID string, credits int) error
}

// Resetter restores every workspace balance to its plan grant on a monthly
// schedule. Balances are set, not topped up, so unused credits do not roll
// over.
type Resetter struct {
	store  WorkspaceStore
	cron   *cron.Cron
	logger *slog.Logger
}

func NewResetter(store WorkspaceStore, logger *slog.Logger) *Resetter {
	return &Resetter{
		store: store,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DefaultLogger),
			cron.Recover(cron.DefaultLogger),
		)),
		logger: logger.With("module", "credits"),
	}
}

// Start registers the schedule and begins running. Call Stop to shut down.
func (r *Resetter) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(monthlyResetSpec, func() {
		if err := r.ResetAll(ctx); err != nil {
			r.logger.ErrorContext(ctx, "Monthly credit reset failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	r.logger.InfoContext(ctx, "Monthly credit reset scheduled", "spec", monthlyResetSpec)

	return nil
}

// Stop halts the schedule, waiting for a running reset to finish.
func (r *Resetter) Stop() {
	<-r.cron.Stop().Done()
}

// ResetAll applies the plan grant to every workspace immediately.
func (r *Resetter) ResetAll(ctx context.Context) error {
	workspaces, err := r.store.Workspaces(ctx)
	if err != nil {
		return err
	}

	for _, ws := range workspaces {
		grant := PlanCredits(ws.Plan)

		if err := r.store.SetWorkspaceCredits(ctx, ws.ID, grant); err != nil {
			r.logger.ErrorContext(ctx, "Failed to reset workspace credits",
				"workspace_id", ws.ID, "error", err)

			continue
		}

		r.logger.InfoContext(ctx, "Workspace credits reset",
			"workspace_id", ws.ID, "plan", ws.Plan, "credits", grant)
	}

	return nil
}
