package models

import "time"

// Workflow is a saved node graph owned by a workspace.
type Workflow struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"        validate:"required,min=1"`
	Description  string          `json:"description,omitempty"`
	Nodes        []*WorkflowNode `json:"nodes"`
	Edges        []*WorkflowEdge `json:"edges"`
	OwnerID      string          `json:"ownerId"`
	WorkspaceID  string          `json:"workspaceId" validate:"required"`
	IsPublic     bool            `json:"isPublic"`
	IsTemplate   bool            `json:"isTemplate"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// WorkflowSnapshot is the frozen graph a job executes against. Edits to the
// saved workflow after a run is requested do not affect the run.
type WorkflowSnapshot struct {
	Nodes []*WorkflowNode `json:"nodes"`
	Edges []*WorkflowEdge `json:"edges"`
}
