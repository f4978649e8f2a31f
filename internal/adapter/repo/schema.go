package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// taskSchema is idempotent so every process can run it at startup without
// coordinating with its siblings.
const taskSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    task_id       TEXT PRIMARY KEY,
    api_type      TEXT NOT NULL,
    status        TEXT NOT NULL,
    result_url    TEXT,
    error_message TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS tasks_status_updated_at_idx ON tasks (status, updated_at);
CREATE INDEX IF NOT EXISTS tasks_created_at_idx ON tasks (created_at DESC);
`

// EnsureSchema creates the tasks table and its indexes if they do not exist
// yet. Both the API and the worker call it before taking traffic.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, taskSchema); err != nil {
		return fmt.Errorf("repo: ensure schema: %w", err)
	}
	return nil
}
