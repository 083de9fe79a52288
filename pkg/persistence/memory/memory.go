// Package memory provides an in-process persistence implementation for
// tests and single-binary development.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/persistence"
)

type Persistence struct {
	mu         sync.RWMutex
	workflows  map[string]*models.Workflow
	jobs       map[string]*models.Job
	workspaces map[string]*models.Workspace
}

func NewPersistence() *Persistence {
	return &Persistence{
		workflows:  make(map[string]*models.Workflow),
		jobs:       make(map[string]*models.Job),
		workspaces: make(map[string]*models.Workspace),
	}
}

func (p *Persistence) Workflows(ctx context.Context, workspaceID string) ([]*models.Workflow, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*models.Workflow

	for _, wf := range p.workflows {
		if workspaceID == "" || wf.WorkspaceID == workspaceID {
			copied := *wf
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (p *Persistence) SaveWorkflow(ctx context.Context, workflow *models.Workflow) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if workflow.CreatedAt.IsZero() {
		workflow.CreatedAt = time.Now().UTC()
	}

	workflow.UpdatedAt = time.Now().UTC()

	copied := *workflow
	p.workflows[workflow.ID] = &copied

	return nil
}

func (p *Persistence) WorkflowByID(ctx context.Context, id string) (*models.Workflow, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wf, ok := p.workflows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", persistence.ErrWorkflowNotFound, id)
	}

	copied := *wf

	return &copied, nil
}

func (p *Persistence) DeleteWorkflow(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.workflows[id]; !ok {
		return fmt.Errorf("%w: %s", persistence.ErrWorkflowNotFound, id)
	}

	delete(p.workflows, id)

	return nil
}

func (p *Persistence) Jobs(ctx context.Context, workspaceID string) ([]*models.Job, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*models.Job

	for _, job := range p.jobs {
		if workspaceID == "" || job.WorkspaceID == workspaceID {
			copied := *job
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (p *Persistence) SaveJob(ctx context.Context, job *models.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	copied := *job
	p.jobs[job.ID] = &copied

	return nil
}

func (p *Persistence) JobByID(ctx context.Context, id string) (*models.Job, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	job, ok := p.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", persistence.ErrJobNotFound, id)
	}

	copied := *job

	return &copied, nil
}

func (p *Persistence) Workspaces(ctx context.Context) ([]*models.Workspace, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*models.Workspace, 0, len(p.workspaces))

	for _, ws := range p.workspaces {
		copied := *ws
		out = append(out, &copied)
	}

	return out, nil
}

func (p *Persistence) SaveWorkspace(ctx context.Context, workspace *models.Workspace) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}

	copied := *workspace
	p.workspaces[workspace.ID] = &copied

	return nil
}

func (p *Persistence) WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ws, ok := p.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", persistence.ErrWorkspaceNotFound, id)
	}

	copied := *ws

	return &copied, nil
}

func (p *Persistence) SetWorkspaceCredits(ctx context.Context, workspaceID string, credits int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ws, ok := p.workspaces[workspaceID]
	if !ok {
		return fmt.Errorf("%w: %s", persistence.ErrWorkspaceNotFound, workspaceID)
	}

	ws.Credits = credits

	return nil
}

func (p *Persistence) HealthCheck(ctx context.Context) error {
	return nil
}

func (p *Persistence) Close(ctx context.Context) error {
	return nil
}
