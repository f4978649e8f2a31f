package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"kiegw/internal/domain"
)

// TaskRepositoryPG implements domain.TaskRepository.
type TaskRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new task repository backed by PostgreSQL.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepositoryPG {
	return &TaskRepositoryPG{pool: pool}
}

// Create inserts a freshly acknowledged task record. Zero timestamps defer
// to the database clock.
func (r *TaskRepositoryPG) Create(ctx context.Context, rec *domain.TaskRecord) error {
	query := `
INSERT INTO tasks (task_id, api_type, status, result_url, error_message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()), COALESCE($7, NOW()));
`
	_, err := r.pool.Exec(ctx, query,
		rec.TaskID,
		rec.APIType,
		rec.Status,
		nullableString(rec.ResultURL),
		nullableString(rec.ErrorMessage),
		nullableTime(rec.CreatedAt),
		nullableTime(rec.UpdatedAt),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	return err
}

// Get fetches a task by its remote identifier.
func (r *TaskRepositoryPG) Get(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	query := `
SELECT task_id, api_type, status, COALESCE(result_url, ''), COALESCE(error_message, ''), created_at, updated_at
FROM tasks
WHERE task_id = $1;
`
	row := r.pool.QueryRow(ctx, query, taskID)
	var rec domain.TaskRecord
	if err := row.Scan(
		&rec.TaskID,
		&rec.APIType,
		&rec.Status,
		&rec.ResultURL,
		&rec.ErrorMessage,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Update writes the reconciled status and optionally the result/error fields.
func (r *TaskRepositoryPG) Update(ctx context.Context, taskID string, upd domain.TaskUpdate) error {
	query := `
UPDATE tasks
SET status = $2,
    updated_at = NOW(),
    result_url = COALESCE($3, result_url),
    error_message = COALESCE($4, error_message)
WHERE task_id = $1;
`
	tag, err := r.pool.Exec(ctx, query, taskID, upd.Status, upd.ResultURL, upd.ErrorMessage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecent returns the most recently created tasks, newest first.
func (r *TaskRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.TaskRecord, error) {
	query := `
SELECT task_id, api_type, status, COALESCE(result_url, ''), COALESCE(error_message, ''), created_at, updated_at
FROM tasks
ORDER BY created_at DESC
LIMIT $1;
`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// ListByStatus returns tasks in one canonical state, oldest update first so
// the reconciliation sweep favors the stalest records.
func (r *TaskRepositoryPG) ListByStatus(ctx context.Context, status domain.TaskStatus, limit int) ([]domain.TaskRecord, error) {
	query := `
SELECT task_id, api_type, status, COALESCE(result_url, ''), COALESCE(error_message, ''), created_at, updated_at
FROM tasks
WHERE status = $1
ORDER BY updated_at ASC
LIMIT $2;
`
	rows, err := r.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func scanTasks(rows pgx.Rows) ([]domain.TaskRecord, error) {
	var out []domain.TaskRecord
	for rows.Next() {
		var rec domain.TaskRecord
		if err := rows.Scan(
			&rec.TaskID,
			&rec.APIType,
			&rec.Status,
			&rec.ResultURL,
			&rec.ErrorMessage,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
