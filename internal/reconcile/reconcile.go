// Package reconcile folds fresh remote observations into the local task
// store. A refresh always prefers the live poll; the stored record is the
// fallback when the remote API cannot be reached or answers garbage.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kiegw/internal/domain"
	"kiegw/internal/infra"
	"kiegw/internal/kie"
)

// StatusClient is the slice of the Kie.ai client a refresh needs.
type StatusClient interface {
	TaskStatus(ctx context.Context, apiType domain.APIType, taskID string) (*kie.StatusResult, error)
}

// Options configures a Reconciler.
type Options struct {
	Client StatusClient
	Tasks  domain.TaskRepository
	Logger *infra.Logger
}

// Reconciler refreshes stored task records from the remote API.
type Reconciler struct {
	client StatusClient
	tasks  domain.TaskRepository
	logger *infra.Logger
}

// NewReconciler wires a reconciler from its dependencies.
func NewReconciler(opts Options) (*Reconciler, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("reconcile: status client is required")
	}
	if opts.Tasks == nil {
		return nil, fmt.Errorf("reconcile: task repository is required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("reconcile: logger is required")
	}
	return &Reconciler{client: opts.Client, tasks: opts.Tasks, logger: opts.Logger}, nil
}

// Refresh polls the remote status for one stored task, persists what it
// learned, and returns the refreshed record. When the poll fails the stored
// record is returned as-is so a flaky upstream never masks known state.
// Terminal tasks are re-polled too; backends may enrich a completed record
// after the fact.
func (r *Reconciler) Refresh(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	rec, err := r.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.probeUnknown(ctx, taskID)
		}
		return nil, err
	}

	res, err := r.client.TaskStatus(ctx, rec.APIType, rec.TaskID)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("task_id", rec.TaskID).
			Str("api_type", string(rec.APIType)).
			Msg("reconcile: status poll failed, serving stored record")
		return rec, nil
	}

	upd := domain.TaskUpdate{Status: res.Status}
	if res.ResultURL != "" {
		upd.ResultURL = &res.ResultURL
	}
	if res.ErrorMessage != "" {
		upd.ErrorMessage = &res.ErrorMessage
	}
	if err := r.tasks.Update(ctx, rec.TaskID, upd); err != nil {
		return nil, fmt.Errorf("reconcile: persist refresh: %w", err)
	}

	rec.Status = res.Status
	if res.ResultURL != "" {
		rec.ResultURL = res.ResultURL
	}
	if res.ErrorMessage != "" {
		rec.ErrorMessage = res.ErrorMessage
	}
	return rec, nil
}

// probeUnknown serves tasks that were never recorded locally. With no stored
// api_type the client probes every family endpoint in its fixed order; the
// first answer becomes a best-effort view that is returned without being
// persisted, since no endpoint identified the owning family authoritatively.
func (r *Reconciler) probeUnknown(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	res, err := r.client.TaskStatus(ctx, "", taskID)
	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("task_id", taskID).
			Msg("reconcile: unknown task probe found nothing")
		return nil, domain.ErrNotFound
	}
	now := time.Now().UTC()
	return &domain.TaskRecord{
		TaskID:       taskID,
		Status:       res.Status,
		ResultURL:    res.ResultURL,
		ErrorMessage: res.ErrorMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RefreshActive refreshes every pending and processing task, in that order.
// Individual poll failures are logged inside Refresh and do not stop the
// sweep; the returned count is the number of records examined.
func (r *Reconciler) RefreshActive(ctx context.Context, limit int) (int, error) {
	refreshed := 0
	for _, status := range []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusProcessing} {
		recs, err := r.tasks.ListByStatus(ctx, status, limit)
		if err != nil {
			return refreshed, fmt.Errorf("reconcile: list %s tasks: %w", status, err)
		}
		for _, rec := range recs {
			if ctx.Err() != nil {
				return refreshed, ctx.Err()
			}
			if _, err := r.Refresh(ctx, rec.TaskID); err != nil {
				r.logger.Error().
					Err(err).
					Str("task_id", rec.TaskID).
					Msg("reconcile: refresh failed")
				continue
			}
			refreshed++
		}
	}
	return refreshed, nil
}
