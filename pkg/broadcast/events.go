// Package broadcast carries job progress events from the orchestrator to
// subscribers. Delivery is fire-and-forget and at-most-once per connection;
// per-job emission order is preserved, cross-job order is not.
package broadcast

import "time"

// Event names published on a job's channel.
const (
	EventJobStatus    = "job:status"
	EventJobOutput    = "job:output"
	EventJobNodeError = "job:node_error"
	EventJobComplete  = "job:complete"
	EventJobError     = "job:error"
)

// Event is the wire envelope for every broadcast message.
type Event struct {
	Event     string `json:"event"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// NewEvent stamps the envelope with the current time in RFC 3339 UTC.
func NewEvent(name string, payload any) Event {
	return Event{
		Event:     name,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// StatusPayload reports either a job-level status change (Status set) or a
// node-level one (NodeID and NodeStatus set).
type StatusPayload struct {
	Status     string `json:"status,omitempty"`
	NodeID     string `json:"nodeId,omitempty"`
	NodeStatus string `json:"nodeStatus,omitempty"`
}

// OutputPayload carries one produced port value. URL is set for media
// outputs, Value for scalar ones.
type OutputPayload struct {
	NodeID string `json:"nodeId"`
	PortID string `json:"portId"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// NodeErrorPayload pinpoints the node whose provider call failed.
type NodeErrorPayload struct {
	NodeID string `json:"nodeId"`
	Error  string `json:"error"`
}

// CompletePayload is the terminal success event.
type CompletePayload struct {
	Outputs     any `json:"outputs"`
	CreditsUsed int `json:"creditsUsed"`
}

// ErrorPayload is the terminal failure event.
type ErrorPayload struct {
	Error string `json:"error"`
}
