package kie

import (
	"encoding/json"
	"testing"

	"kiegw/internal/domain"
)

func TestParseFlatJobStates(t *testing.T) {
	cases := []struct {
		state string
		want  domain.TaskStatus
	}{
		{"waiting", domain.TaskStatusPending},
		{"queuing", domain.TaskStatusPending},
		{"queued", domain.TaskStatusPending},
		{"generating", domain.TaskStatusProcessing},
		{"processing", domain.TaskStatusProcessing},
		{"success", domain.TaskStatusCompleted},
		{"fail", domain.TaskStatusFailed},
		{"some-new-state", domain.TaskStatusPending},
	}
	for _, tc := range cases {
		data, _ := json.Marshal(map[string]any{"state": tc.state})
		res, err := parseFlatJob(data)
		if err != nil {
			t.Fatalf("%s: %v", tc.state, err)
		}
		if res.Status != tc.want {
			t.Errorf("state %q → %s, want %s", tc.state, res.Status, tc.want)
		}
	}
}

func TestParseFlatJobDoubleEncodedResult(t *testing.T) {
	data, _ := json.Marshal(map[string]any{
		"state":      "success",
		"resultJson": `{"resultUrls":["https://a/b.mp3","https://a/c.mp3"]}`,
	})
	res, err := parseFlatJob(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Status != domain.TaskStatusCompleted {
		t.Fatalf("status = %s", res.Status)
	}
	if res.ResultURL != "https://a/b.mp3" {
		t.Fatalf("resultURL = %q, want first URL", res.ResultURL)
	}
}

func TestParseFlatJobMalformedResultJSONKeepsStatus(t *testing.T) {
	data, _ := json.Marshal(map[string]any{
		"state":      "success",
		"resultJson": "{not json",
	})
	res, err := parseFlatJob(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Status != domain.TaskStatusCompleted || res.ResultURL != "" {
		t.Fatalf("res = %+v", res)
	}
}

func TestParseFlatJobFailure(t *testing.T) {
	data, _ := json.Marshal(map[string]any{"state": "fail", "failMsg": "content policy"})
	res, err := parseFlatJob(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Status != domain.TaskStatusFailed || res.ErrorMessage != "content policy" {
		t.Fatalf("res = %+v", res)
	}
}

func TestParseSuno(t *testing.T) {
	cases := []struct {
		status string
		want   domain.TaskStatus
	}{
		{"PENDING", domain.TaskStatusPending},
		{"TEXT_SUCCESS", domain.TaskStatusProcessing},
		{"FIRST_SUCCESS", domain.TaskStatusProcessing},
		{"SUCCESS", domain.TaskStatusCompleted},
		{"CREATE_TASK_FAILED", domain.TaskStatusFailed},
		{"GENERATE_AUDIO_FAILED", domain.TaskStatusFailed},
		{"CALLBACK_EXCEPTION", domain.TaskStatusFailed},
		{"SENSITIVE_WORD_ERROR", domain.TaskStatusFailed},
	}
	for _, tc := range cases {
		data, _ := json.Marshal(map[string]any{"status": tc.status})
		res, err := parseSuno(data)
		if err != nil {
			t.Fatalf("%s: %v", tc.status, err)
		}
		if res.Status != tc.want {
			t.Errorf("status %q → %s, want %s", tc.status, res.Status, tc.want)
		}
	}

	data, _ := json.Marshal(map[string]any{
		"status": "SUCCESS",
		"response": map[string]any{
			"sunoData": []any{
				map[string]any{"audioUrl": "https://cdn.example.com/song.mp3"},
				map[string]any{"audioUrl": "https://cdn.example.com/song2.mp3"},
			},
		},
	})
	res, err := parseSuno(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.ResultURL != "https://cdn.example.com/song.mp3" {
		t.Fatalf("resultURL = %q, want first track", res.ResultURL)
	}
}

func TestParseGPT4oFlags(t *testing.T) {
	cases := []struct {
		flag int
		want domain.TaskStatus
	}{
		{0, domain.TaskStatusProcessing},
		{1, domain.TaskStatusCompleted},
		{2, domain.TaskStatusFailed},
	}
	for _, tc := range cases {
		data, _ := json.Marshal(map[string]any{
			"successFlag": tc.flag,
			"response":    map[string]any{"result_urls": []string{"https://cdn.example.com/img.png"}},
		})
		res, err := parseGPT4o(data)
		if err != nil {
			t.Fatalf("flag %d: %v", tc.flag, err)
		}
		if res.Status != tc.want {
			t.Errorf("flag %d → %s, want %s", tc.flag, res.Status, tc.want)
		}
		if res.ResultURL != "https://cdn.example.com/img.png" {
			t.Errorf("flag %d: resultURL = %q", tc.flag, res.ResultURL)
		}
	}
}

func TestParseFluxKontextFlags(t *testing.T) {
	cases := []struct {
		flag int
		want domain.TaskStatus
	}{
		{0, domain.TaskStatusProcessing},
		{1, domain.TaskStatusCompleted},
		{2, domain.TaskStatusFailed},
		{3, domain.TaskStatusFailed},
	}
	for _, tc := range cases {
		data, _ := json.Marshal(map[string]any{
			"successFlag": tc.flag,
			"response":    map[string]any{"resultImageUrl": "https://cdn.example.com/flux.jpeg"},
		})
		res, err := parseFluxKontext(data)
		if err != nil {
			t.Fatalf("flag %d: %v", tc.flag, err)
		}
		if res.Status != tc.want {
			t.Errorf("flag %d → %s, want %s", tc.flag, res.Status, tc.want)
		}
	}
}

func TestStatusPathCoversEveryKnownAPIType(t *testing.T) {
	for apiType := range allAPITypes() {
		if _, ok := statusPath(apiType); !ok {
			t.Errorf("no status path for %s", apiType)
		}
	}
}

func allAPITypes() map[domain.APIType]struct{} {
	return map[domain.APIType]struct{}{
		domain.APITypeNanoBanana:        {},
		domain.APITypeNanoBananaEdit:    {},
		domain.APITypeNanoBananaUpscale: {},
		domain.APITypeVeo3:              {},
		domain.APITypeSuno:              {},
		domain.APITypeElevenLabsTTS:     {},
		domain.APITypeElevenLabsSFX:     {},
		domain.APITypeSeedanceVideo:     {},
		domain.APITypeSeedreamImage:     {},
		domain.APITypeQwenImage:         {},
		domain.APITypeMidjourney:        {},
		domain.APITypeGPT4oImage:        {},
		domain.APITypeFluxKontext:       {},
		domain.APITypeKlingVideo:        {},
		domain.APITypeHailuo:            {},
		domain.APITypeSoraVideo:         {},
		domain.APITypeWanVideo:          {},
		domain.APITypeRunwayAleph:       {},
		domain.APITypeRecraftRemoveBG:   {},
		domain.APITypeIdeogramReframe:   {},
	}
}

func TestCallbackPrecedence(t *testing.T) {
	cb := Callbacks{
		Override:   "https://override.example.com/cb",
		Configured: "https://configured.example.com/cb",
		Fallback:   "https://fallback.example.com/cb",
	}

	if got := cb.Resolve("https://request.example.com/cb"); got != "https://request.example.com/cb" {
		t.Fatalf("request URL should win, got %q", got)
	}
	if got := cb.Resolve(""); got != "https://override.example.com/cb" {
		t.Fatalf("override should win over configured, got %q", got)
	}
	cb.Override = ""
	if got := cb.Resolve(""); got != "https://configured.example.com/cb" {
		t.Fatalf("configured should win over fallback, got %q", got)
	}
	cb.Configured = ""
	if got := cb.Resolve(""); got != "https://fallback.example.com/cb" {
		t.Fatalf("fallback should be last resort, got %q", got)
	}
}
