package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kiegw/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GetTask reconciles the stored record against the remote API and returns
// the refreshed view. A failed poll degrades to the stored record inside the
// refresher, so this endpoint only errors when the task is unknown.
func (a *App) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")
	if taskID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "bad_request"))
		return
	}
	rec, err := a.Refresher.Refresh(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", a.msg(r, "not_found"))
			return
		}
		a.Log.Error().Err(err).Str("task_id", taskID).Msg("handlers: refresh failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "internal"))
		return
	}
	a.json(w, http.StatusOK, rec)
}

// ListTasks returns stored tasks, optionally filtered by canonical status.
func (a *App) ListTasks(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	var (
		recs []domain.TaskRecord
		err  error
	)
	if v := r.URL.Query().Get("status"); v != "" {
		status, ok := domain.ParseTaskStatus(v)
		if !ok {
			a.error(w, http.StatusBadRequest, "bad_request", "status must be pending, processing, completed or failed")
			return
		}
		recs, err = a.Tasks.ListByStatus(r.Context(), status, limit)
	} else {
		recs, err = a.Tasks.ListRecent(r.Context(), limit)
	}
	if err != nil {
		a.Log.Error().Err(err).Msg("handlers: list tasks failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "internal"))
		return
	}
	if recs == nil {
		recs = []domain.TaskRecord{}
	}
	a.json(w, http.StatusOK, map[string]any{"tasks": recs})
}

// Veo1080p fetches the HD rendition URL for a completed Veo3 task.
func (a *App) Veo1080p(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")
	if taskID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "bad_request"))
		return
	}
	var index *int
	if v := r.URL.Query().Get("index"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "index must be a non-negative integer")
			return
		}
		index = &n
	}
	data, err := a.Kie.Veo1080p(r.Context(), taskID, index)
	if err != nil {
		a.Log.Warn().Err(err).Str("task_id", taskID).Msg("handlers: 1080p fetch failed")
		a.error(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{"task_id": taskID, "result_url": data.ResultURL})
}
