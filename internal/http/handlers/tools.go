package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

type invokeSuccess struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
	APIType string `json:"api_type"`
	Mode    string `json:"mode"`
	Message string `json:"message"`
}

type invokeFailure struct {
	Success           bool                  `json:"success"`
	Tool              string                `json:"tool"`
	Error             string                `json:"error"`
	Details           []validate.FieldError `json:"details,omitempty"`
	ParameterGuidance map[string]string     `json:"parameter_guidance,omitempty"`
}

// InvokeTool normalizes one tool invocation, validates it, submits exactly
// one job upstream, and records the acknowledged task locally.
func (a *App) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool")
	tool, ok := a.Tools.Get(name)
	if !ok {
		a.json(w, http.StatusNotFound, invokeFailure{
			Tool:  name,
			Error: a.msg(r, "unknown_tool"),
		})
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "bad_request"))
		return
	}

	cb := kie.Callbacks{
		Override:   r.Header.Get("X-Callback-Url"),
		Configured: a.Cfg.CallbackURL,
		Fallback:   a.Cfg.CallbackURLFallback,
	}
	job, err := tool.Resolve(json.RawMessage(raw), cb)
	if err != nil {
		var violations *validate.Violations
		if errors.As(err, &violations) {
			a.json(w, http.StatusBadRequest, invokeFailure{
				Tool:              name,
				Error:             a.msg(r, "bad_request"),
				Details:           violations.Fields,
				ParameterGuidance: tool.Guidance,
			})
			return
		}
		a.Log.Error().Err(err).Str("tool", name).Msg("handlers: resolve failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "internal"))
		return
	}

	taskID, err := a.Kie.Submit(r.Context(), job)
	if err != nil {
		// Upstream rejections are surfaced verbatim; no local record exists
		// for a task the remote API never acknowledged.
		a.Log.Warn().Err(err).Str("tool", name).Msg("handlers: submission failed")
		a.json(w, http.StatusBadGateway, invokeFailure{
			Tool:  name,
			Error: err.Error(),
		})
		return
	}

	now := time.Now().UTC()
	rec := &domain.TaskRecord{
		TaskID:    taskID,
		APIType:   job.APIType,
		Status:    domain.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Tasks.Create(r.Context(), rec); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		// The task already runs remotely, so the invocation still succeeded.
		a.Log.Error().Err(err).Str("task_id", taskID).Msg("handlers: record task failed")
	}

	a.json(w, http.StatusOK, invokeSuccess{
		Success: true,
		TaskID:  taskID,
		APIType: string(job.APIType),
		Mode:    job.Mode,
		Message: "task submitted; poll /v1/tasks/" + taskID + " for status",
	})
}

// ListTools returns the registered tool names with their parameter guidance.
func (a *App) ListTools(w http.ResponseWriter, r *http.Request) {
	type toolInfo struct {
		Name              string            `json:"name"`
		ParameterGuidance map[string]string `json:"parameter_guidance"`
	}
	out := make([]toolInfo, 0)
	for _, name := range a.Tools.Names() {
		tool, _ := a.Tools.Get(name)
		out = append(out, toolInfo{Name: name, ParameterGuidance: tool.Guidance})
	}
	a.json(w, http.StatusOK, map[string]any{"tools": out})
}
