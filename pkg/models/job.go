package models

import "time"

// JobStatus is the lifecycle state of a job. Terminal states are final.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// JobOutput is one value produced on a node's output port. URL is set for
// string-valued (media) outputs, Value for everything else.
type JobOutput struct {
	NodeID string   `json:"nodeId"`
	PortID string   `json:"portId"`
	Type   PortType `json:"type"`
	URL    string   `json:"url,omitempty"`
	Value  any      `json:"value,omitempty"`
}

// Job is one execution run of a frozen workflow snapshot.
type Job struct {
	ID          string           `json:"id"`
	WorkflowID  string           `json:"workflowId,omitempty"`
	WorkspaceID string           `json:"workspaceId"`
	UserID      string           `json:"userId"`
	Status      JobStatus        `json:"status"`
	Snapshot    WorkflowSnapshot `json:"workflowSnapshot"`
	Inputs      map[string]any   `json:"inputs"`
	Outputs     []JobOutput      `json:"outputs"`
	CreditsUsed int              `json:"creditsUsed"`
	Error       string           `json:"error,omitempty"`
	StartedAt   *time.Time       `json:"startedAt,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
