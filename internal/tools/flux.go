package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func fluxKontextImage() *Tool {
	return &Tool{
		Name: "flux_kontext_image",
		Guidance: map[string]string{
			"prompt":           "Required: image description or edit instruction, 1-5000 characters",
			"inputImage":       "Optional: source image URL, switches to edit mode (safetyTolerance must then be 0-2)",
			"aspectRatio":      `"21:9", "16:9", "4:3", "1:1", "3:4" or "9:16" (default: "16:9")`,
			"outputFormat":     `"jpeg" or "png" (default: "jpeg")`,
			"promptUpsampling": "Default: false",
			"model":            `"flux-kontext-pro" or "flux-kontext-max" (default: "flux-kontext-pro")`,
			"safetyTolerance":  "0-6, most strict to least strict (default: 6; edit mode caps at 2)",
			"enableTranslation": "Auto-translate prompts to English (default: true)",
			"uploadCn":          "Default: false",
			"watermark":         "Optional watermark identifier",
			"callBackUrl":       "Optional: URL notified when the task completes",
		},
		Resolve: resolveFluxKontext,
	}
}

type fluxKontextRequest struct {
	Prompt            *string `json:"prompt"`
	InputImage        *string `json:"inputImage"`
	AspectRatio       *string `json:"aspectRatio"`
	OutputFormat      *string `json:"outputFormat"`
	PromptUpsampling  *bool   `json:"promptUpsampling"`
	Model             *string `json:"model"`
	SafetyTolerance   *int    `json:"safetyTolerance"`
	EnableTranslation *bool   `json:"enableTranslation"`
	UploadCn          *bool   `json:"uploadCn"`
	Watermark         *string `json:"watermark"`
	CallBackURL       *string `json:"callBackUrl"`
}

func resolveFluxKontext(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req fluxKontextRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	edit := req.InputImage != nil

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	if edit {
		v.URL("inputImage", *req.InputImage)
	}
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspectRatio", aspect, "21:9", "16:9", "4:3", "1:1", "3:4", "9:16")
	outputFormat := str(req.OutputFormat, "jpeg")
	v.Enum("outputFormat", outputFormat, "jpeg", "png")
	model := str(req.Model, "flux-kontext-pro")
	v.Enum("model", model, "flux-kontext-pro", "flux-kontext-max")
	safety := integer(req.SafetyTolerance, 6)
	v.IntRange("safetyTolerance", safety, 0, 6)
	if edit && safety > 2 {
		v.Add("safetyTolerance", "must be between 0 and 2 in edit mode, got %d", safety)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"prompt":            *req.Prompt,
		"enableTranslation": boolean(req.EnableTranslation, true),
		"uploadCn":          boolean(req.UploadCn, false),
		"aspectRatio":       aspect,
		"outputFormat":      outputFormat,
		"promptUpsampling":  boolean(req.PromptUpsampling, false),
		"model":             model,
		"safetyTolerance":   safety,
	}
	mode := "text-to-image"
	if edit {
		mode = "edit"
		body["inputImage"] = *req.InputImage
	}
	if req.Watermark != nil {
		body["watermark"] = *req.Watermark
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}
	return &kie.Job{APIType: domain.APITypeFluxKontext, Mode: mode, Path: "/flux/kontext/generate", Body: body}, nil
}
