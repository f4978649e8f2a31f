package domain

import "context"

// TaskUpdate carries the reconciled fields written back after a successful
// remote poll. Nil pointers leave the stored value untouched.
type TaskUpdate struct {
	Status       TaskStatus
	ResultURL    *string
	ErrorMessage *string
}

// TaskRepository is the durable map from task id to last-known canonical
// status. Every operation touches exactly one record; concurrent writers are
// resolved last-write-wins because each write derives from a fresh poll.
type TaskRepository interface {
	Create(ctx context.Context, rec *TaskRecord) error
	Get(ctx context.Context, taskID string) (*TaskRecord, error)
	Update(ctx context.Context, taskID string, upd TaskUpdate) error
	ListRecent(ctx context.Context, limit int) ([]TaskRecord, error)
	ListByStatus(ctx context.Context, status TaskStatus, limit int) ([]TaskRecord, error)
}
