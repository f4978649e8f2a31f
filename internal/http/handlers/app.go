package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"kiegw/internal/domain"
	"kiegw/internal/infra"
	"kiegw/internal/kie"
	"kiegw/internal/middleware"
	"kiegw/internal/tools"
)

// SubmitClient is the slice of the Kie.ai client the HTTP surface needs.
type SubmitClient interface {
	Submit(ctx context.Context, job *kie.Job) (string, error)
	Veo1080p(ctx context.Context, taskID string, index *int) (*kie.Veo1080pData, error)
}

// TaskRefresher reconciles one stored task against the remote API.
type TaskRefresher interface {
	Refresh(ctx context.Context, taskID string) (*domain.TaskRecord, error)
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Cfg       *infra.Config
	Log       *infra.Logger
	Tools     *tools.Registry
	Kie       SubmitClient
	Tasks     domain.TaskRepository
	Refresher TaskRefresher
}

// localized generic messages, keyed by locale then message code.
var messages = map[string]map[string]string{
	"en": {
		"bad_request":    "invalid request payload",
		"unknown_tool":   "unknown tool",
		"not_found":      "task not found",
		"upstream_error": "generation service rejected the request",
		"internal":       "internal server error",
	},
	"id": {
		"bad_request":    "payload permintaan tidak valid",
		"unknown_tool":   "tool tidak dikenal",
		"not_found":      "task tidak ditemukan",
		"upstream_error": "layanan generasi menolak permintaan",
		"internal":       "kesalahan internal server",
	},
}

func (a *App) msg(r *http.Request, code string) string {
	locale := middleware.LocaleFromContext(r.Context())
	if m, ok := messages[locale][code]; ok {
		return m
	}
	return messages["en"][code]
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
