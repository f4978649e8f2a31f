package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func qwenImage() *Tool {
	return &Tool{
		Name: "qwen_image",
		Guidance: map[string]string{
			"prompt":                "Required: image description (max 5000 characters, 2000 in edit mode)",
			"image_url":             "Optional: source image URL, switches to edit mode",
			"image_size":            `Named size such as "square_hd" (default)`,
			"num_inference_steps":   "2-250 (edit mode 2-49; default 30, edit 25)",
			"guidance_scale":        "0-20 (default 2.5, edit 4)",
			"enable_safety_checker": "Default: false",
			"output_format":         `"png" or "jpeg" (default: "png")`,
			"negative_prompt":       "Max 500 characters",
			"acceleration":          `"none", "regular" or "high" (default: "none")`,
			"num_images":            `Edit mode only: "1"-"4"`,
			"sync_mode":             "Edit mode only: wait for the result inline",
			"callBackUrl":           "Optional: URL notified when the task completes",
		},
		Resolve: resolveQwen,
	}
}

type qwenRequest struct {
	Prompt              *string  `json:"prompt"`
	ImageURL            *string  `json:"image_url"`
	ImageSize           *string  `json:"image_size"`
	NumInferenceSteps   *int     `json:"num_inference_steps"`
	Seed                *int     `json:"seed"`
	GuidanceScale       *float64 `json:"guidance_scale"`
	EnableSafetyChecker *bool    `json:"enable_safety_checker"`
	OutputFormat        *string  `json:"output_format"`
	NegativePrompt      *string  `json:"negative_prompt"`
	Acceleration        *string  `json:"acceleration"`
	NumImages           *string  `json:"num_images"`
	SyncMode            *bool    `json:"sync_mode"`
	CallBackURL         *string  `json:"callBackUrl"`
}

func resolveQwen(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req qwenRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	edit := req.ImageURL != nil

	var v validate.Violations
	maxPrompt := 5000
	if edit {
		maxPrompt = 2000
	}
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, maxPrompt)
	}
	if edit {
		v.URL("image_url", *req.ImageURL)
	}
	imageSize := str(req.ImageSize, "square_hd")
	v.Enum("image_size", imageSize,
		"square", "square_hd", "portrait_4_3", "portrait_16_9", "landscape_4_3", "landscape_16_9")
	maxSteps := 250
	defaultSteps := 30
	if edit {
		maxSteps = 49
		defaultSteps = 25
	}
	steps := integer(req.NumInferenceSteps, defaultSteps)
	v.IntRange("num_inference_steps", steps, 2, maxSteps)
	defaultGuidance := 2.5
	if edit {
		defaultGuidance = 4
	}
	guidance := number(req.GuidanceScale, defaultGuidance)
	v.FloatRange("guidance_scale", guidance, 0, 20)
	outputFormat := str(req.OutputFormat, "png")
	v.Enum("output_format", outputFormat, "png", "jpeg")
	defaultNegative := " "
	if edit {
		defaultNegative = "blurry, ugly"
	}
	negative := str(req.NegativePrompt, defaultNegative)
	v.StringLen("negative_prompt", negative, 0, 500)
	acceleration := str(req.Acceleration, "none")
	v.Enum("acceleration", acceleration, "none", "regular", "high")
	if req.NumImages != nil {
		if !edit {
			v.Add("num_images", "only valid in edit mode")
		}
		v.Enum("num_images", *req.NumImages, "1", "2", "3", "4")
	}
	if req.SyncMode != nil && !edit {
		v.Add("sync_mode", "only valid in edit mode")
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"prompt":                *req.Prompt,
		"image_size":            imageSize,
		"num_inference_steps":   steps,
		"guidance_scale":        guidance,
		"enable_safety_checker": boolean(req.EnableSafetyChecker, false),
		"output_format":         outputFormat,
		"negative_prompt":       negative,
		"acceleration":          acceleration,
	}
	if req.Seed != nil {
		input["seed"] = *req.Seed
	}
	mode := "text-to-image"
	model := "qwen/text-to-image"
	if edit {
		mode = "edit"
		model = "qwen/image-edit"
		input["image_url"] = *req.ImageURL
		if req.NumImages != nil {
			input["num_images"] = *req.NumImages
		}
		if req.SyncMode != nil {
			input["sync_mode"] = *req.SyncMode
		}
	}
	return kie.WrapJob(domain.APITypeQwenImage, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
