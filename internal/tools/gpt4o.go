package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func openAI4oImage() *Tool {
	return &Tool{
		Name: "openai_4o_image",
		Guidance: map[string]string{
			"prompt":         "Image description, 1-5000 characters (required unless filesUrl is provided)",
			"filesUrl":       "Up to 5 source image URLs (required unless prompt is provided)",
			"maskUrl":        "Optional: mask URL for editing; requires exactly one filesUrl entry",
			"size":           `"1:1", "3:2" or "2:3" (default: "1:1")`,
			"nVariants":      "Number of variants, 1-4 (default: 4)",
			"isEnhance":      "Default: false",
			"uploadCn":       "Default: false",
			"enableFallback": "Fall back to another model on failure (default: true)",
			"fallbackModel":  `"GPT_IMAGE_1" or "FLUX_MAX" (default: "FLUX_MAX")`,
			"callBackUrl":    "Optional: URL notified when the task completes",
		},
		Resolve: resolveOpenAI4o,
	}
}

type openAI4oRequest struct {
	Prompt         *string  `json:"prompt"`
	FilesURL       []string `json:"filesUrl"`
	MaskURL        *string  `json:"maskUrl"`
	Size           *string  `json:"size"`
	NVariants      *int     `json:"nVariants"`
	IsEnhance      *bool    `json:"isEnhance"`
	UploadCn       *bool    `json:"uploadCn"`
	EnableFallback *bool    `json:"enableFallback"`
	FallbackModel  *string  `json:"fallbackModel"`
	CallBackURL    *string  `json:"callBackUrl"`
}

func resolveOpenAI4o(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req openAI4oRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	hasPrompt := req.Prompt != nil
	hasImages := len(req.FilesURL) > 0
	if !hasPrompt && !hasImages {
		v.Add("", "at least one of prompt or filesUrl is required")
	}
	if hasPrompt {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	if hasImages {
		v.URLList("filesUrl", req.FilesURL, 1, 5)
	}
	if req.MaskURL != nil {
		v.URL("maskUrl", *req.MaskURL)
		if !hasImages {
			v.Add("maskUrl", "requires filesUrl")
		} else if len(req.FilesURL) > 1 {
			v.Add("maskUrl", "requires exactly one filesUrl entry")
		}
	}
	size := str(req.Size, "1:1")
	v.Enum("size", size, "1:1", "3:2", "2:3")
	nVariants := integer(req.NVariants, 4)
	v.IntRange("nVariants", nVariants, 1, 4)
	fallbackModel := str(req.FallbackModel, "FLUX_MAX")
	v.Enum("fallbackModel", fallbackModel, "GPT_IMAGE_1", "FLUX_MAX")
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"size":           size,
		"nVariants":      nVariants,
		"isEnhance":      boolean(req.IsEnhance, false),
		"uploadCn":       boolean(req.UploadCn, false),
		"enableFallback": boolean(req.EnableFallback, true),
		"fallbackModel":  fallbackModel,
	}
	mode := "text-to-image"
	if hasPrompt {
		body["prompt"] = *req.Prompt
	}
	if hasImages {
		body["filesUrl"] = req.FilesURL
		mode = "image-variants"
	}
	if req.MaskURL != nil {
		body["maskUrl"] = *req.MaskURL
		mode = "edit"
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}
	return &kie.Job{APIType: domain.APITypeGPT4oImage, Mode: mode, Path: "/gpt4o-image/generate", Body: body}, nil
}
