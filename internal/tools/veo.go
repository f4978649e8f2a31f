package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func veo3GenerateVideo() *Tool {
	return &Tool{
		Name: "veo3_generate_video",
		Guidance: map[string]string{
			"prompt":            "Required: video description, 1-2000 characters",
			"imageUrls":         "Optional: 1-2 image URLs for image-to-video (1 = unfold around it, 2 = start/end frame transition)",
			"model":             `"veo3" (quality) or "veo3_fast" (cost-efficient, default: "veo3")`,
			"watermark":         "Optional: watermark text, max 100 characters",
			"aspectRatio":       `"16:9", "9:16" or "Auto" (default: "16:9")`,
			"seeds":             "Optional: random seed, 10000-99999",
			"enableFallback":    "Optional: fall back on content policy failures (fallback videos cannot use the 1080P endpoint)",
			"enableTranslation": "Optional: auto-translate prompts to English (default: true)",
			"callBackUrl":       "Optional: URL notified when the task completes",
		},
		Resolve: resolveVeo3,
	}
}

type veo3Request struct {
	Prompt            *string  `json:"prompt"`
	ImageURLs         []string `json:"imageUrls"`
	Model             *string  `json:"model"`
	Watermark         *string  `json:"watermark"`
	AspectRatio       *string  `json:"aspectRatio"`
	Seeds             *int     `json:"seeds"`
	EnableFallback    *bool    `json:"enableFallback"`
	EnableTranslation *bool    `json:"enableTranslation"`
	CallBackURL       *string  `json:"callBackUrl"`
}

func resolveVeo3(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req veo3Request
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 2000)
	}
	mode := "text-to-video"
	if len(req.ImageURLs) > 0 {
		mode = "image-to-video"
		v.URLList("imageUrls", req.ImageURLs, 1, 2)
	}
	model := str(req.Model, "veo3")
	v.Enum("model", model, "veo3", "veo3_fast")
	if req.Watermark != nil {
		v.StringLen("watermark", *req.Watermark, 0, 100)
	}
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspectRatio", aspect, "16:9", "9:16", "Auto")
	if req.Seeds != nil {
		v.IntRange("seeds", *req.Seeds, 10000, 99999)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"prompt":            *req.Prompt,
		"model":             model,
		"aspectRatio":       aspect,
		"enableFallback":    boolean(req.EnableFallback, false),
		"enableTranslation": boolean(req.EnableTranslation, true),
	}
	if len(req.ImageURLs) > 0 {
		body["imageUrls"] = req.ImageURLs
	}
	if req.Watermark != nil {
		body["watermark"] = *req.Watermark
	}
	if req.Seeds != nil {
		body["seeds"] = *req.Seeds
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}
	return &kie.Job{APIType: domain.APITypeVeo3, Mode: mode, Path: "/veo/generate", Body: body}, nil
}
