package kie

import (
	"encoding/json"
	"fmt"

	"kiegw/internal/domain"
)

// StatusResult is one remote observation mapped onto the canonical task
// states. ResultURL and ErrorMessage are empty unless the payload carried
// them.
type StatusResult struct {
	Status       domain.TaskStatus
	ResultURL    string
	ErrorMessage string
}

const jobsStatusPath = "/jobs/recordInfo"

// statusPaths lists the families that poll somewhere other than the shared
// jobs endpoint.
var statusPaths = map[domain.APIType]string{
	domain.APITypeVeo3:        "/veo/record-info",
	domain.APITypeSuno:        "/generate/record-info",
	domain.APITypeMidjourney:  "/mj/record-info",
	domain.APITypeGPT4oImage:  "/gpt4o-image/record-info",
	domain.APITypeFluxKontext: "/flux/kontext/record-info",
	domain.APITypeRunwayAleph: "/aleph/record-info",
}

// fallbackStatusPaths is the probe order for task ids whose api_type is not
// recognized. First endpoint that answers wins.
var fallbackStatusPaths = []string{
	jobsStatusPath,
	"/veo/record-info",
	"/generate/record-info",
	"/mj/record-info",
	"/gpt4o-image/record-info",
	"/flux/kontext/record-info",
}

func statusPath(apiType domain.APIType) (string, bool) {
	if p, ok := statusPaths[apiType]; ok {
		return p, true
	}
	if apiType.Known() {
		return jobsStatusPath, true
	}
	return "", false
}

type statusParser func(data json.RawMessage) (*StatusResult, error)

// statusParsers keys the families that deviate from the flat job payload.
var statusParsers = map[domain.APIType]statusParser{
	domain.APITypeSuno:        parseSuno,
	domain.APITypeGPT4oImage:  parseGPT4o,
	domain.APITypeFluxKontext: parseFluxKontext,
}

func parseStatus(apiType domain.APIType, data json.RawMessage) (*StatusResult, error) {
	if parse, ok := statusParsers[apiType]; ok {
		return parse(data)
	}
	return parseFlatJob(data)
}

// parseFlatJob handles the default record shape shared by the jobs family,
// veo3 and midjourney: a state string, a failMsg, and a resultJson field
// that is itself a serialized JSON document holding resultUrls.
func parseFlatJob(data json.RawMessage) (*StatusResult, error) {
	var rec struct {
		State      string `json:"state"`
		ResultJSON string `json:"resultJson"`
		FailMsg    string `json:"failMsg"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("kie: decode record: %w", err)
	}

	res := &StatusResult{ErrorMessage: rec.FailMsg}
	switch rec.State {
	case "success":
		res.Status = domain.TaskStatusCompleted
	case "fail":
		res.Status = domain.TaskStatusFailed
	case "generating", "processing":
		res.Status = domain.TaskStatusProcessing
	default:
		// waiting, queuing, queued and anything unrecognized.
		res.Status = domain.TaskStatusPending
	}

	if rec.ResultJSON != "" {
		var inner struct {
			ResultURLs []string `json:"resultUrls"`
		}
		if err := json.Unmarshal([]byte(rec.ResultJSON), &inner); err == nil && len(inner.ResultURLs) > 0 {
			res.ResultURL = inner.ResultURLs[0]
		}
	}
	return res, nil
}

func parseSuno(data json.RawMessage) (*StatusResult, error) {
	var rec struct {
		Status   string `json:"status"`
		Response struct {
			SunoData []struct {
				AudioURL string `json:"audioUrl"`
			} `json:"sunoData"`
		} `json:"response"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("kie: decode suno record: %w", err)
	}

	res := &StatusResult{ErrorMessage: rec.ErrorMessage}
	switch rec.Status {
	case "SUCCESS":
		res.Status = domain.TaskStatusCompleted
	case "CREATE_TASK_FAILED", "GENERATE_AUDIO_FAILED", "CALLBACK_EXCEPTION", "SENSITIVE_WORD_ERROR":
		res.Status = domain.TaskStatusFailed
	case "TEXT_SUCCESS", "FIRST_SUCCESS":
		// Partial renditions exist but the task is still running.
		res.Status = domain.TaskStatusProcessing
	default:
		res.Status = domain.TaskStatusPending
	}

	if len(rec.Response.SunoData) > 0 {
		res.ResultURL = rec.Response.SunoData[0].AudioURL
	}
	return res, nil
}

func parseGPT4o(data json.RawMessage) (*StatusResult, error) {
	var rec struct {
		SuccessFlag int `json:"successFlag"`
		Response    struct {
			ResultURLs []string `json:"result_urls"`
		} `json:"response"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("kie: decode gpt4o record: %w", err)
	}

	res := &StatusResult{ErrorMessage: rec.ErrorMessage}
	switch rec.SuccessFlag {
	case 0:
		res.Status = domain.TaskStatusProcessing
	case 1:
		res.Status = domain.TaskStatusCompleted
	default:
		res.Status = domain.TaskStatusFailed
	}
	if len(rec.Response.ResultURLs) > 0 {
		res.ResultURL = rec.Response.ResultURLs[0]
	}
	return res, nil
}

func parseFluxKontext(data json.RawMessage) (*StatusResult, error) {
	var rec struct {
		SuccessFlag int `json:"successFlag"`
		Response    struct {
			ResultImageURL string `json:"resultImageUrl"`
		} `json:"response"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("kie: decode flux record: %w", err)
	}

	res := &StatusResult{ErrorMessage: rec.ErrorMessage}
	switch rec.SuccessFlag {
	case 0:
		res.Status = domain.TaskStatusProcessing
	case 1:
		res.Status = domain.TaskStatusCompleted
	default:
		res.Status = domain.TaskStatusFailed
	}
	res.ResultURL = rec.Response.ResultImageURL
	return res, nil
}
