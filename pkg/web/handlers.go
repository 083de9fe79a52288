// Package web provides the REST API: node catalog, workflow management and
// job submission.
package web

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/haus-node/haus/pkg/broadcast"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/queue"
	"github.com/haus-node/haus/pkg/registry"
)

type APIHandlers struct {
	persistence persistence.Persistence
	registry    *registry.Registry
	ledger      credits.Ledger
	queue       *queue.Queue
	broadcaster broadcast.Broadcaster
	validator   *validator.Validate
}

func NewAPIHandlers(
	p persistence.Persistence,
	reg *registry.Registry,
	ledger credits.Ledger,
	q *queue.Queue,
	b broadcast.Broadcaster,
) *APIHandlers {
	return &APIHandlers{
		persistence: p,
		registry:    reg,
		ledger:      ledger,
		queue:       q,
		broadcaster: b,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetNodes returns the full node catalog, optionally filtered by category.
func (h *APIHandlers) GetNodes(c fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.registry.ByCategory(registry.Category(category)))
	}

	return c.JSON(h.registry.All())
}

func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	workflows, err := h.persistence.Workflows(c.Context(), c.Params("workspaceId"))
	if err != nil {
		return handleStoreError(c, err)
	}

	return c.JSON(workflows)
}

func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	workflow, err := h.persistence.WorkflowByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleStoreError(c, err)
	}

	return c.JSON(workflow)
}

func (h *APIHandlers) CreateWorkflow(c fiber.Ctx) error {
	var workflow models.Workflow
	if err := json.Unmarshal(c.Body(), &workflow); err != nil {
		return badRequest(c, "Invalid JSON body: "+err.Error())
	}

	workflow.WorkspaceID = c.Params("workspaceId")

	if workflow.ID == "" {
		workflow.ID = uuid.New().String()
	}

	if err := h.validator.Struct(&workflow); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.validateGraph(workflow.Nodes, workflow.Edges); err != nil {
		return handleStoreError(c, err)
	}

	if err := h.persistence.SaveWorkflow(c.Context(), &workflow); err != nil {
		return handleStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(workflow)
}

func (h *APIHandlers) UpdateWorkflow(c fiber.Ctx) error {
	workflow, err := h.persistence.WorkflowByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleStoreError(c, err)
	}

	if err := json.Unmarshal(c.Body(), workflow); err != nil {
		return badRequest(c, "Invalid JSON body: "+err.Error())
	}

	workflow.ID = c.Params("id")

	if err := h.validator.Struct(workflow); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.validateGraph(workflow.Nodes, workflow.Edges); err != nil {
		return handleStoreError(c, err)
	}

	if err := h.persistence.SaveWorkflow(c.Context(), workflow); err != nil {
		return handleStoreError(c, err)
	}

	return c.JSON(workflow)
}

func (h *APIHandlers) DeleteWorkflow(c fiber.Ctx) error {
	if err := h.persistence.DeleteWorkflow(c.Context(), c.Params("id")); err != nil {
		return handleStoreError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// validateGraph rejects graphs the engine would misinterpret: duplicate
// input wiring and parameter values outside their declared schema.
func (h *APIHandlers) validateGraph(nodes []*models.WorkflowNode, edges []*models.WorkflowEdge) error {
	if err := h.registry.ValidateEdges(edges); err != nil {
		return err
	}

	for _, node := range nodes {
		def, ok := h.registry.Get(node.Type)
		if !ok {
			continue
		}

		if err := def.ValidateParameters(node.Data.Parameters); err != nil {
			return fmt.Errorf("node %s: %w", node.ID, err)
		}
	}

	return nil
}

// runRequest is the job submission body. Either a saved workflow id or an
// inline graph must be provided.
type runRequest struct {
	WorkflowID string                 `json:"workflowId"`
	Nodes      []*models.WorkflowNode `json:"nodes"`
	Edges      []*models.WorkflowEdge `json:"edges"`
	Inputs     map[string]any         `json:"inputs"`
	UserID     string                 `json:"userId" validate:"required"`
}

// CreateJob freezes a snapshot, runs the pre-flight credit check and
// enqueues the job. 402 carries required/available so clients can prompt.
func (h *APIHandlers) CreateJob(c fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")

	var req runRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "Invalid JSON body: "+err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	snapshot := models.WorkflowSnapshot{Nodes: req.Nodes, Edges: req.Edges}

	if req.WorkflowID != "" {
		workflow, err := h.persistence.WorkflowByID(c.Context(), req.WorkflowID)
		if err != nil {
			return handleStoreError(c, err)
		}

		snapshot = models.WorkflowSnapshot{Nodes: workflow.Nodes, Edges: workflow.Edges}
	}

	if len(snapshot.Nodes) == 0 {
		return badRequest(c, "Job requires a workflowId or an inline graph")
	}

	estimated := h.registry.EstimateCost(snapshot.Nodes)

	balance, err := h.ledger.Balance(c.Context(), workspaceID)
	if err != nil {
		return handleStoreError(c, err)
	}

	if balance < estimated {
		return paymentRequired(c, estimated, balance)
	}

	inputs := req.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}

	job := &models.Job{
		ID:          uuid.New().String(),
		WorkflowID:  req.WorkflowID,
		WorkspaceID: workspaceID,
		UserID:      req.UserID,
		Status:      models.JobStatusQueued,
		Snapshot:    snapshot,
		Inputs:      inputs,
		Outputs:     []models.JobOutput{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.persistence.SaveJob(c.Context(), job); err != nil {
		return handleStoreError(c, err)
	}

	err = h.queue.Enqueue(c.Context(), queue.Payload{
		JobID:       job.ID,
		WorkspaceID: workspaceID,
		UserID:      req.UserID,
	})
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"jobId":            job.ID,
		"status":           job.Status,
		"estimatedCredits": estimated,
	})
}

func (h *APIHandlers) GetJob(c fiber.Ctx) error {
	job, err := h.persistence.JobByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleStoreError(c, err)
	}

	return c.JSON(job)
}

// GetJobs lists a workspace's jobs, newest first, with optional
// limit/offset pagination.
func (h *APIHandlers) GetJobs(c fiber.Ctx) error {
	jobs, err := h.persistence.Jobs(c.Context(), c.Params("workspaceId"))
	if err != nil {
		return handleStoreError(c, err)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}

	if offset > len(jobs) {
		offset = len(jobs)
	}

	jobs = jobs[offset:]

	if limit, _ := strconv.Atoi(c.Query("limit")); limit > 0 && limit < len(jobs) {
		jobs = jobs[:limit]
	}

	return c.JSON(jobs)
}

// StreamJobEvents relays the job's broadcast channel as server-sent events.
// There is no replay: the stream starts at subscription time.
func (h *APIHandlers) StreamJobEvents(c fiber.Ctx) error {
	jobID := c.Params("id")

	if _, err := h.persistence.JobByID(c.Context(), jobID); err != nil {
		return handleStoreError(c, err)
	}

	events, err := h.broadcaster.Subscribe(c.Context(), jobID)
	if err != nil {
		return internalError(c, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		for event := range events {
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}

			if err := w.Flush(); err != nil {
				return
			}
		}
	})
}

func (h *APIHandlers) GetWorkspace(c fiber.Ctx) error {
	workspace, err := h.persistence.WorkspaceByID(c.Context(), c.Params("workspaceId"))
	if err != nil {
		return handleStoreError(c, err)
	}

	return c.JSON(workspace)
}

func (h *APIHandlers) CreateWorkspace(c fiber.Ctx) error {
	var workspace models.Workspace
	if err := json.Unmarshal(c.Body(), &workspace); err != nil {
		return badRequest(c, "Invalid JSON body: "+err.Error())
	}

	if workspace.ID == "" {
		workspace.ID = uuid.New().String()
	}

	if workspace.Plan == "" {
		workspace.Plan = models.PlanFree
	}

	if err := h.validator.Struct(&workspace); err != nil {
		return badRequest(c, err.Error())
	}

	workspace.Credits = credits.PlanCredits(workspace.Plan)

	if err := h.persistence.SaveWorkspace(c.Context(), &workspace); err != nil {
		return handleStoreError(c, err)
	}

	// The postgres ledger reads the workspace row; in-memory ledgers keep
	// their own balances and need the initial grant pushed in.
	if seeder, ok := h.ledger.(interface{ SetBalance(workspaceID string, balance int) }); ok {
		seeder.SetBalance(workspace.ID, workspace.Credits)
	}

	return c.Status(fiber.StatusCreated).JSON(workspace)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	if err := h.persistence.HealthCheck(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "healthy"})
}
