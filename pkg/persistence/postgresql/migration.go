package postgresql

func migrations() map[int]string {
	return map[int]string{
		1: `
			CREATE TABLE workspaces (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255) NOT NULL,
				plan VARCHAR(50) NOT NULL DEFAULT 'free',
				credits INTEGER NOT NULL DEFAULT 0,
				owner_id VARCHAR(255) NOT NULL,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE UNIQUE INDEX idx_workspaces_slug ON workspaces(slug);
			CREATE INDEX idx_workspaces_owner_id ON workspaces(owner_id);

			CREATE TABLE workflows (
				id UUID PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				nodes JSONB NOT NULL DEFAULT '[]',
				edges JSONB NOT NULL DEFAULT '[]',
				owner_id VARCHAR(255) NOT NULL,
				workspace_id UUID NOT NULL REFERENCES workspaces(id),
				is_public BOOLEAN NOT NULL DEFAULT FALSE,
				is_template BOOLEAN NOT NULL DEFAULT FALSE,
				thumbnail_url TEXT,
				tags JSONB,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_workflows_workspace_id ON workflows(workspace_id);
			CREATE INDEX idx_workflows_created_at ON workflows(created_at);

			CREATE TABLE jobs (
				id UUID PRIMARY KEY,
				workflow_id UUID,
				workspace_id UUID NOT NULL REFERENCES workspaces(id),
				user_id VARCHAR(255) NOT NULL,
				status VARCHAR(50) NOT NULL CHECK (status IN ('queued', 'running', 'completed', 'failed', 'cancelled')),
				workflow_snapshot JSONB NOT NULL,
				inputs JSONB NOT NULL DEFAULT '{}',
				outputs JSONB NOT NULL DEFAULT '[]',
				credits_used INTEGER NOT NULL DEFAULT 0,
				error TEXT,
				started_at TIMESTAMP WITH TIME ZONE,
				completed_at TIMESTAMP WITH TIME ZONE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_jobs_workspace_id ON jobs(workspace_id);
			CREATE INDEX idx_jobs_status ON jobs(status);
			CREATE INDEX idx_jobs_created_at ON jobs(created_at);

			CREATE TABLE credit_transactions (
				id UUID PRIMARY KEY,
				workspace_id UUID NOT NULL REFERENCES workspaces(id),
				user_id VARCHAR(255) NOT NULL DEFAULT '',
				amount INTEGER NOT NULL,
				reason TEXT NOT NULL,
				job_id UUID,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);

			CREATE INDEX idx_credit_transactions_workspace_id ON credit_transactions(workspace_id);
			CREATE INDEX idx_credit_transactions_job_id ON credit_transactions(job_id);
		`,
	}
}
