package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func wanVideo() *Tool {
	return &Tool{
		Name: "wan_video",
		Guidance: map[string]string{
			"prompt":                  "Required: video description, 1-800 characters",
			"image_url":               "Optional: source image URL, switches to image-to-video",
			"aspect_ratio":            `"16:9", "9:16" or "1:1", text mode only (default: "16:9")`,
			"resolution":              `"720p" or "1080p" (default: "1080p")`,
			"duration":                `"5" or "10" seconds, image mode only (default: "5")`,
			"negative_prompt":         "Max 500 characters",
			"enable_prompt_expansion": "Default: true",
			"seed":                    "Optional random seed",
			"callBackUrl":             "Optional: URL notified when the task completes",
		},
		Resolve: resolveWan,
	}
}

type wanRequest struct {
	Prompt                *string `json:"prompt"`
	ImageURL              *string `json:"image_url"`
	AspectRatio           *string `json:"aspect_ratio"`
	Resolution            *string `json:"resolution"`
	Duration              *string `json:"duration"`
	NegativePrompt        *string `json:"negative_prompt"`
	EnablePromptExpansion *bool   `json:"enable_prompt_expansion"`
	Seed                  *int    `json:"seed"`
	CallBackURL           *string `json:"callBackUrl"`
}

func resolveWan(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req wanRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 800)
	}
	imageToVideo := req.ImageURL != nil
	if imageToVideo {
		v.URL("image_url", *req.ImageURL)
	}
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspect_ratio", aspect, "16:9", "9:16", "1:1")
	resolution := str(req.Resolution, "1080p")
	v.Enum("resolution", resolution, "720p", "1080p")
	duration := str(req.Duration, "5")
	v.Enum("duration", duration, "5", "10")
	negative := str(req.NegativePrompt, "")
	v.StringLen("negative_prompt", negative, 0, 500)
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"prompt":                  *req.Prompt,
		"resolution":              resolution,
		"negative_prompt":         negative,
		"enable_prompt_expansion": boolean(req.EnablePromptExpansion, true),
	}
	mode := "text-to-video"
	model := "wan/2-5-text-to-video"
	if imageToVideo {
		mode = "image-to-video"
		model = "wan/2-5-image-to-video"
		input["image_url"] = *req.ImageURL
		input["duration"] = duration
	} else {
		input["aspect_ratio"] = aspect
	}
	if req.Seed != nil {
		input["seed"] = *req.Seed
	}
	return kie.WrapJob(domain.APITypeWanVideo, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
