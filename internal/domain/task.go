package domain

import "time"

// APIType tags a task with the backend family that issued it. It is fixed at
// creation time and selects both the status-poll endpoint and the payload
// parser on every subsequent poll.
type APIType string

const (
	APITypeNanoBanana        APIType = "nano-banana"
	APITypeNanoBananaEdit    APIType = "nano-banana-edit"
	APITypeNanoBananaUpscale APIType = "nano-banana-upscale"
	APITypeVeo3              APIType = "veo3"
	APITypeSuno              APIType = "suno"
	APITypeElevenLabsTTS     APIType = "elevenlabs-tts"
	APITypeElevenLabsSFX     APIType = "elevenlabs-sound-effects"
	APITypeSeedanceVideo     APIType = "bytedance-seedance-video"
	APITypeSeedreamImage     APIType = "bytedance-seedream-image"
	APITypeQwenImage         APIType = "qwen-image"
	APITypeMidjourney        APIType = "midjourney"
	APITypeGPT4oImage        APIType = "openai-4o-image"
	APITypeFluxKontext       APIType = "flux-kontext-image"
	APITypeKlingVideo        APIType = "kling-3.0-video"
	APITypeHailuo            APIType = "hailuo"
	APITypeSoraVideo         APIType = "sora-video"
	APITypeWanVideo          APIType = "wan-video"
	APITypeRunwayAleph       APIType = "runway-aleph-video"
	APITypeRecraftRemoveBG   APIType = "recraft-remove-background"
	APITypeIdeogramReframe   APIType = "ideogram-reframe"
)

var apiTypes = map[APIType]struct{}{
	APITypeNanoBanana:        {},
	APITypeNanoBananaEdit:    {},
	APITypeNanoBananaUpscale: {},
	APITypeVeo3:              {},
	APITypeSuno:              {},
	APITypeElevenLabsTTS:     {},
	APITypeElevenLabsSFX:     {},
	APITypeSeedanceVideo:     {},
	APITypeSeedreamImage:     {},
	APITypeQwenImage:         {},
	APITypeMidjourney:        {},
	APITypeGPT4oImage:        {},
	APITypeFluxKontext:       {},
	APITypeKlingVideo:        {},
	APITypeHailuo:            {},
	APITypeSoraVideo:         {},
	APITypeWanVideo:          {},
	APITypeRunwayAleph:       {},
	APITypeRecraftRemoveBG:   {},
	APITypeIdeogramReframe:   {},
}

// Known reports whether the value is one of the recognized backend families.
func (t APIType) Known() bool {
	_, ok := apiTypes[t]
	return ok
}

// TaskStatus is the canonical lifecycle state every backend vocabulary is
// normalized into.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// ParseTaskStatus maps an external spelling onto a canonical status.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusProcessing, TaskStatusCompleted, TaskStatusFailed:
		return TaskStatus(s), true
	}
	return "", false
}

// Terminal reports whether the status can no longer progress. Terminal tasks
// are still re-polled on demand; backends may enrich them after completion.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// TaskRecord is the locally cached view of a remote generation task. The
// record is created only after the remote API acknowledged the submission
// with a task id, and is mutated only with state derived from a fresh poll.
type TaskRecord struct {
	TaskID       string     `json:"task_id"`
	APIType      APIType    `json:"api_type"`
	Status       TaskStatus `json:"status"`
	ResultURL    string     `json:"result_url,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
