// Package models defines the core domain models for node-based generative workflows.
package models

// Provider identifies the backend that fulfills a node's computation.
type Provider string

const (
	ProviderInternal  Provider = "internal"
	ProviderFal       Provider = "fal"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderReplicate Provider = "replicate"
)

// PortType classifies the value flowing through a port.
type PortType string

const (
	PortTypeImage   PortType = "image"
	PortTypeVideo   PortType = "video"
	PortTypeAudio   PortType = "audio"
	PortTypeText    PortType = "text"
	PortTypeNumber  PortType = "number"
	PortTypeBoolean PortType = "boolean"
	PortTypeSeed    PortType = "seed"
	PortTypeLora    PortType = "lora"
	PortTypeAny     PortType = "any"
)

// WorkflowNode is a node instance placed on the canvas. JSON shape is fixed
// by the graph editor, hence the camelCase tags and the nested position.
type WorkflowNode struct {
	ID       string         `json:"id"         validate:"required"`
	Type     string         `json:"type"       validate:"required"`
	Position NodePosition   `json:"position"`
	Data     WorkflowNodeData `json:"data"`
}

// NodePosition is canvas placement only; execution ignores it.
type NodePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorkflowNodeData carries the user-set parameter values for a node.
type WorkflowNodeData struct {
	Parameters map[string]any `json:"parameters"`
	Label      string         `json:"label,omitempty"`
}

// WorkflowEdge is a directed wire from one node's output port to another
// node's input port.
type WorkflowEdge struct {
	ID           string `json:"id"`
	Source       string `json:"source"       validate:"required"`
	SourceHandle string `json:"sourceHandle" validate:"required"`
	Target       string `json:"target"       validate:"required"`
	TargetHandle string `json:"targetHandle" validate:"required"`
}

// NodeStatus is the runtime state of a node as observed by subscribers. It
// is broadcast, never persisted on the node itself.
type NodeStatus string

const (
	NodeStatusPending   NodeStatus = "pending"
	NodeStatusRunning   NodeStatus = "running"
	NodeStatusCompleted NodeStatus = "completed"
	NodeStatusError     NodeStatus = "error"
)
