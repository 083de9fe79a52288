package models

import "time"

// PlanType is the billing plan of a workspace; it determines the monthly
// credit allocation.
type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanStarter    PlanType = "starter"
	PlanPro        PlanType = "pro"
	PlanTeam       PlanType = "team"
	PlanEnterprise PlanType = "enterprise"
)

// Workspace owns workflows, jobs and a single credit balance.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=1"`
	Slug      string    `json:"slug"`
	Plan      PlanType  `json:"plan"`
	Credits   int       `json:"credits"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreditTransaction is an immutable audit record of one balance mutation.
// Negative amounts are deductions, positive amounts are top-ups.
type CreditTransaction struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	UserID      string    `json:"userId"`
	Amount      int       `json:"amount"`
	Reason      string    `json:"reason"`
	JobID       string    `json:"jobId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
