// Package engine implements the workflow execution core: topological
// scheduling, input resolution and the job orchestrator.
package engine

import (
	"fmt"
	"strings"
)

// CycleError is returned by Schedule when the graph cannot be fully
// ordered. NodeIDs holds every node left unscheduled, in declaration order,
// so callers can report all affected nodes rather than an arbitrary one.
type CycleError struct {
	NodeIDs []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("workflow contains a cycle — cannot execute. Affected nodes: %s",
		strings.Join(e.NodeIDs, ", "))
}

// NodeError attributes a provider failure to the node that raised it. Its
// message is what lands in the job record and the job:error broadcast.
type NodeError struct {
	NodeID string
	Label  string
	Err    error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("Node %q failed: %v", e.Label, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
