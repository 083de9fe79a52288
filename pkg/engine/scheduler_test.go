package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/models"
)

func node(id string) *models.WorkflowNode {
	return &models.WorkflowNode{ID: id, Type: "text-input"}
}

func edge(source, target string) *models.WorkflowEdge {
	return &models.WorkflowEdge{
		ID:           source + "->" + target,
		Source:       source,
		SourceHandle: "text",
		Target:       target,
		TargetHandle: "text",
	}
}

func ids(nodes []*models.WorkflowNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}

	return out
}

func TestSchedule_LinearChain(t *testing.T) {
	nodes := []*models.WorkflowNode{node("c"), node("a"), node("b")}
	edges := []*models.WorkflowEdge{edge("a", "b"), edge("b", "c")}

	sorted, err := Schedule(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
}

func TestSchedule_Diamond(t *testing.T) {
	nodes := []*models.WorkflowNode{node("a"), node("b"), node("c"), node("d")}
	edges := []*models.WorkflowEdge{
		edge("a", "b"),
		edge("a", "c"),
		edge("b", "d"),
		edge("c", "d"),
	}

	sorted, err := Schedule(nodes, edges)
	require.NoError(t, err)

	order := ids(sorted)
	assert.Equal(t, "a", order[0])
	assert.Equal(t, "d", order[3])
	// b and c tie at in-degree zero after a; declaration order breaks the tie.
	assert.Equal(t, []string{"b", "c"}, order[1:3])
}

func TestSchedule_Deterministic(t *testing.T) {
	nodes := []*models.WorkflowNode{node("x"), node("y"), node("z")}

	first, err := Schedule(nodes, nil)
	require.NoError(t, err)

	for range 10 {
		again, err := Schedule(nodes, nil)
		require.NoError(t, err)
		assert.Equal(t, ids(first), ids(again))
	}
}

func TestSchedule_DisconnectedNodesKeepDeclarationOrder(t *testing.T) {
	nodes := []*models.WorkflowNode{node("solo2"), node("a"), node("b"), node("solo1")}
	edges := []*models.WorkflowEdge{edge("a", "b")}

	sorted, err := Schedule(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, []string{"solo2", "a", "solo1", "b"}, ids(sorted))
}

func TestSchedule_EdgesWithUnknownEndpointsAreIgnored(t *testing.T) {
	nodes := []*models.WorkflowNode{node("a"), node("b")}
	edges := []*models.WorkflowEdge{
		edge("a", "b"),
		edge("ghost", "b"),
		edge("a", "phantom"),
	}

	sorted, err := Schedule(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids(sorted))
}

func TestSchedule_CycleReportsAllAffectedNodes(t *testing.T) {
	nodes := []*models.WorkflowNode{node("a"), node("b"), node("c"), node("d")}
	edges := []*models.WorkflowEdge{
		edge("a", "b"),
		edge("b", "c"),
		edge("c", "b"),
		edge("c", "d"),
	}

	_, err := Schedule(nodes, edges)
	require.Error(t, err)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	// b and c form the cycle; d is unreachable because it depends on it.
	assert.Equal(t, []string{"b", "c", "d"}, cycleErr.NodeIDs)
	assert.Contains(t, cycleErr.Error(), "workflow contains a cycle")
	assert.Contains(t, cycleErr.Error(), "b, c, d")
}

func TestSchedule_SelfLoop(t *testing.T) {
	nodes := []*models.WorkflowNode{node("a"), node("loop")}
	edges := []*models.WorkflowEdge{edge("loop", "loop")}

	_, err := Schedule(nodes, edges)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"loop"}, cycleErr.NodeIDs)
}

func TestSchedule_EmptyGraph(t *testing.T) {
	sorted, err := Schedule(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sorted)
}
