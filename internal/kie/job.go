package kie

import "kiegw/internal/domain"

// Job is a fully resolved submission: one concrete endpoint plus the exact
// request body that endpoint expects. Tools produce Jobs; the Client only
// transports them.
type Job struct {
	APIType domain.APIType
	Mode    string
	Path    string
	Body    map[string]any
}

// WrapJob builds a jobs-family submission around the shared createTask
// envelope {model, input, callBackUrl}.
func WrapJob(apiType domain.APIType, mode, model string, input map[string]any, callBackURL string) *Job {
	body := map[string]any{
		"model": model,
		"input": input,
	}
	if callBackURL != "" {
		body["callBackUrl"] = callBackURL
	}
	return &Job{APIType: apiType, Mode: mode, Path: "/jobs/createTask", Body: body}
}

// Callbacks resolves the completion-notification URL for a submission.
type Callbacks struct {
	Override   string // per-call override, e.g. from a request header
	Configured string // process-wide default
	Fallback   string // last resort
}

// Resolve picks the first non-empty URL in precedence order: the request's
// own callBackUrl, the per-call override, the configured default, the
// fallback.
func (c Callbacks) Resolve(request string) string {
	for _, u := range []string{request, c.Override, c.Configured, c.Fallback} {
		if u != "" {
			return u
		}
	}
	return ""
}
