package tools

import (
	"encoding/json"
	"strconv"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func klingVideo() *Tool {
	return &Tool{
		Name: "kling_video",
		Guidance: map[string]string{
			"prompt":         "Required: video description, 1-5000 characters",
			"image_urls":     "Optional: 1-2 image URLs (start frame, optional end frame)",
			"duration":       `String number of seconds, "3"-"15" (default: "5")`,
			"aspect_ratio":   `"16:9", "9:16" or "1:1" (default: "16:9")`,
			"mode":           `"std" or "pro" (default: "std")`,
			"sound":          "Generate native audio (default: false)",
			"multi_shots":    "Multi-shot film mode; requires a non-empty multi_prompt",
			"multi_prompt":   "Per-shot list: each entry needs prompt and duration 1-12 seconds",
			"kling_elements": "Recurring characters/objects: each needs name and description, plus optional image or video reference URLs",
			"callBackUrl":    "Optional: URL notified when the task completes",
		},
		Resolve: resolveKling,
	}
}

type klingShot struct {
	Prompt   *string `json:"prompt"`
	Duration *int    `json:"duration"`
}

type klingElement struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	ElementInputURLs     []string `json:"element_input_urls"`
	ElementInputVideoURLs []string `json:"element_input_video_urls"`
}

type klingRequest struct {
	Prompt        *string        `json:"prompt"`
	ImageURLs     []string       `json:"image_urls"`
	Duration      *string        `json:"duration"`
	AspectRatio   *string        `json:"aspect_ratio"`
	Mode          *string        `json:"mode"`
	Sound         *bool          `json:"sound"`
	MultiShots    *bool          `json:"multi_shots"`
	MultiPrompt   []klingShot    `json:"multi_prompt"`
	KlingElements []klingElement `json:"kling_elements"`
	CallBackURL   *string        `json:"callBackUrl"`
}

func resolveKling(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req klingRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	if len(req.ImageURLs) > 0 {
		v.URLList("image_urls", req.ImageURLs, 1, 2)
	}
	duration := str(req.Duration, "5")
	if n, err := strconv.Atoi(duration); err != nil || n < 3 || n > 15 {
		v.Add("duration", "must be a string number between 3 and 15, got %q", duration)
	}
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspect_ratio", aspect, "16:9", "9:16", "1:1")
	mode := str(req.Mode, "std")
	v.Enum("mode", mode, "std", "pro")
	if boolean(req.MultiShots, false) {
		if len(req.MultiPrompt) == 0 {
			v.Add("multi_prompt", "required and non-empty when multi_shots is true")
		}
		for i, shot := range req.MultiPrompt {
			if shot.Prompt == nil || *shot.Prompt == "" {
				v.Add("multi_prompt", "entry %d: prompt is required", i)
			}
			if shot.Duration == nil {
				v.Add("multi_prompt", "entry %d: duration is required", i)
			} else if *shot.Duration < 1 || *shot.Duration > 12 {
				v.Add("multi_prompt", "entry %d: duration must be between 1 and 12, got %d", i, *shot.Duration)
			}
		}
	}
	for i, el := range req.KlingElements {
		if el.Name == nil || *el.Name == "" {
			v.Add("kling_elements", "entry %d: name is required", i)
		}
		if el.Description == nil || *el.Description == "" {
			v.Add("kling_elements", "entry %d: description is required", i)
		}
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"prompt":       *req.Prompt,
		"duration":     duration,
		"aspect_ratio": aspect,
		"mode":         mode,
		"sound":        boolean(req.Sound, false),
	}
	jobMode := "text-to-video"
	if len(req.ImageURLs) > 0 {
		jobMode = "image-to-video"
		input["image_urls"] = req.ImageURLs
	}
	if boolean(req.MultiShots, false) {
		jobMode = "multi-shot"
		input["multi_shots"] = true
		shots := make([]map[string]any, 0, len(req.MultiPrompt))
		for _, shot := range req.MultiPrompt {
			shots = append(shots, map[string]any{"prompt": *shot.Prompt, "duration": *shot.Duration})
		}
		input["multi_prompt"] = shots
	}
	if len(req.KlingElements) > 0 {
		elements := make([]map[string]any, 0, len(req.KlingElements))
		for _, el := range req.KlingElements {
			entry := map[string]any{"name": *el.Name, "description": *el.Description}
			if len(el.ElementInputURLs) > 0 {
				entry["element_input_urls"] = el.ElementInputURLs
			}
			if len(el.ElementInputVideoURLs) > 0 {
				entry["element_input_video_urls"] = el.ElementInputVideoURLs
			}
			elements = append(elements, entry)
		}
		input["kling_elements"] = elements
	}
	return kie.WrapJob(domain.APITypeKlingVideo, jobMode, "kling-3.0/video", input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
