package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/haus-node/haus/pkg/broadcast"
	"github.com/haus-node/haus/pkg/credits"
	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/otelhelper"
	"github.com/haus-node/haus/pkg/persistence"
	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/registry"
)

// JobStore persists job state transitions. The orchestrator only needs an
// upsert; reads belong to the API layer.
type JobStore interface {
	SaveJob(ctx context.Context, job *models.Job) error
}

// Orchestrator runs one job at a time as a strictly sequential pipeline:
// schedule, then execute nodes one by one, charging credits and streaming
// progress as it goes. One node failing fails the job but preserves the
// outputs and spend accumulated before it.
type Orchestrator struct {
	registry    *registry.Registry
	providers   *providers.Registry
	ledger      credits.Ledger
	broadcaster broadcast.Broadcaster
	jobs        JobStore
	logger      *slog.Logger
	tracer      trace.Tracer
}

func NewOrchestrator(
	reg *registry.Registry,
	prov *providers.Registry,
	ledger credits.Ledger,
	broadcaster broadcast.Broadcaster,
	jobs JobStore,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry:    reg,
		providers:   prov,
		ledger:      ledger,
		broadcaster: broadcaster,
		jobs:        jobs,
		logger:      logger.With("module", "engine"),
		tracer:      noop.NewTracerProvider().Tracer("engine"),
	}
}

// WithTracer replaces the no-op tracer.
func (o *Orchestrator) WithTracer(tracer trace.Tracer) *Orchestrator {
	o.tracer = tracer

	return o
}

// Run executes the job to a terminal state. The returned error reflects the
// execution outcome; the job record and the event stream carry the same
// information for persistence and subscribers respectively. A job already in
// a terminal state is refused with ErrJobTerminal: re-running is always a
// new job.
func (o *Orchestrator) Run(ctx context.Context, job *models.Job) error {
	if job.Status.Terminal() {
		return fmt.Errorf("%w: job %s is %s", persistence.ErrJobTerminal, job.ID, job.Status)
	}

	ctx, span := otelhelper.StartSpan(ctx, o.tracer, "engine.run",
		attribute.String(otelhelper.JobIDKey, job.ID),
		attribute.String(otelhelper.WorkspaceIDKey, job.WorkspaceID),
	)
	defer span.End()

	logger := o.logger.With("job_id", job.ID, "workspace_id", job.WorkspaceID)

	// Pre-flight: the whole estimated cost must be covered before any node
	// runs. Failing here never marks the job running.
	estimated := o.registry.EstimateCost(job.Snapshot.Nodes)
	if estimated > 0 {
		balance, err := o.ledger.Balance(ctx, job.WorkspaceID)
		if err != nil {
			return o.fail(ctx, job, fmt.Errorf("failed to read workspace balance: %w", err))
		}

		if balance < estimated {
			return o.fail(ctx, job, fmt.Errorf("%w: need %d, have %d",
				credits.ErrInsufficientCredits, estimated, balance))
		}
	}

	now := time.Now().UTC()
	job.Status = models.JobStatusRunning
	job.StartedAt = &now

	if err := o.jobs.SaveJob(ctx, job); err != nil {
		return o.fail(ctx, job, fmt.Errorf("failed to persist job: %w", err))
	}

	o.publish(ctx, job.ID, broadcast.EventJobStatus,
		broadcast.StatusPayload{Status: string(models.JobStatusRunning)})

	ordered, err := Schedule(job.Snapshot.Nodes, job.Snapshot.Edges)
	if err != nil {
		return o.fail(ctx, job, err)
	}

	outputs := make(map[string]map[string]any, len(ordered))

	for _, node := range ordered {
		def, ok := o.registry.Get(node.Type)
		if !ok {
			// Lenient by contract: a malformed node is skipped, not fatal.
			logger.WarnContext(ctx, "Skipping node with unknown type",
				"node_id", node.ID, "type", node.Type)

			continue
		}

		if err := o.runNode(ctx, job, node, def, outputs); err != nil {
			return o.fail(ctx, job, err)
		}
	}

	completed := time.Now().UTC()
	job.Status = models.JobStatusCompleted
	job.CompletedAt = &completed

	if err := o.jobs.SaveJob(ctx, job); err != nil {
		return o.fail(ctx, job, fmt.Errorf("failed to persist job: %w", err))
	}

	o.publish(ctx, job.ID, broadcast.EventJobComplete, broadcast.CompletePayload{
		Outputs:     job.Outputs,
		CreditsUsed: job.CreditsUsed,
	})

	logger.InfoContext(ctx, "Job completed",
		"nodes", len(ordered), "credits_used", job.CreditsUsed)

	return nil
}

func (o *Orchestrator) runNode(
	ctx context.Context,
	job *models.Job,
	node *models.WorkflowNode,
	def *registry.Definition,
	outputs map[string]map[string]any,
) error {
	ctx, span := otelhelper.StartSpan(ctx, o.tracer, "engine.node",
		attribute.String(otelhelper.NodeIDKey, node.ID),
		attribute.String(otelhelper.NodeTypeKey, node.Type),
		attribute.String(otelhelper.ProviderKey, string(def.Provider)),
	)
	defer span.End()

	inputs := ResolveInputs(node, job.Snapshot.Edges, outputs, job.Inputs)

	o.publish(ctx, job.ID, broadcast.EventJobStatus, broadcast.StatusPayload{
		NodeID:     node.ID,
		NodeStatus: string(models.NodeStatusRunning),
	})

	result, err := o.providers.Execute(ctx, def, inputs)
	if err != nil {
		nodeErr := &NodeError{NodeID: node.ID, Label: def.Label, Err: err}

		o.publish(ctx, job.ID, broadcast.EventJobNodeError, broadcast.NodeErrorPayload{
			NodeID: node.ID,
			Error:  nodeErr.Error(),
		})

		return nodeErr
	}

	// Charge only after the provider call succeeded. A charge failure here
	// (balance drained by concurrent spend) fails the node like any other
	// error; earlier charges stand.
	if def.CreditCost > 0 {
		err := o.ledger.Deduct(ctx, credits.Deduction{
			WorkspaceID: job.WorkspaceID,
			UserID:      job.UserID,
			Amount:      def.CreditCost,
			Reason:      credits.DeductReason(def.Label),
			JobID:       job.ID,
		})
		if err != nil {
			nodeErr := &NodeError{NodeID: node.ID, Label: def.Label, Err: err}

			o.publish(ctx, job.ID, broadcast.EventJobNodeError, broadcast.NodeErrorPayload{
				NodeID: node.ID,
				Error:  nodeErr.Error(),
			})

			return nodeErr
		}

		job.CreditsUsed += def.CreditCost
	}

	outputs[node.ID] = result

	// One event per produced port, so subscribers accumulate partial
	// results without clobbering earlier ports of the same node.
	for _, port := range def.Outputs {
		value, ok := result[port.ID]
		if !ok || value == nil {
			continue
		}

		output := models.JobOutput{NodeID: node.ID, PortID: port.ID, Type: port.Type}
		if url, ok := value.(string); ok {
			output.URL = url
		} else {
			output.Value = value
		}

		job.Outputs = append(job.Outputs, output)

		o.publish(ctx, job.ID, broadcast.EventJobOutput, broadcast.OutputPayload{
			NodeID: output.NodeID,
			PortID: output.PortID,
			Type:   string(output.Type),
			URL:    output.URL,
			Value:  output.Value,
		})
	}

	o.publish(ctx, job.ID, broadcast.EventJobStatus, broadcast.StatusPayload{
		NodeID:     node.ID,
		NodeStatus: string(models.NodeStatusCompleted),
	})

	return nil
}

// fail drives the job to its failed terminal state, keeping whatever
// outputs and credit spend accumulated before the failure.
func (o *Orchestrator) fail(ctx context.Context, job *models.Job, cause error) error {
	now := time.Now().UTC()
	job.Status = models.JobStatusFailed
	job.Error = cause.Error()
	job.CompletedAt = &now

	if err := o.jobs.SaveJob(ctx, job); err != nil {
		o.logger.ErrorContext(ctx, "Failed to persist failed job",
			"job_id", job.ID, "error", err)
	}

	o.publish(ctx, job.ID, broadcast.EventJobError, broadcast.ErrorPayload{
		Error: cause.Error(),
	})

	o.logger.ErrorContext(ctx, "Job failed",
		"job_id", job.ID, "credits_used", job.CreditsUsed, "error", cause)

	return cause
}

func (o *Orchestrator) publish(ctx context.Context, jobID, name string, payload any) {
	if err := o.broadcaster.Publish(ctx, jobID, broadcast.NewEvent(name, payload)); err != nil {
		o.logger.ErrorContext(ctx, "Failed to broadcast event",
			"job_id", jobID, "event", name, "error", err)
	}
}

