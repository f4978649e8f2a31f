package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func ideogramReframe() *Tool {
	return &Tool{
		Name: "ideogram_reframe",
		Guidance: map[string]string{
			"image_url":       "Required: URL of the image to reframe",
			"image_size":      `"square", "square_hd", "portrait_4_3", "portrait_16_9", "landscape_4_3" or "landscape_16_9" (default: "square_hd")`,
			"rendering_speed": `"TURBO", "BALANCED" or "QUALITY" (default: "BALANCED")`,
			"style":           `"AUTO", "GENERAL", "REALISTIC" or "DESIGN" (default: "AUTO")`,
			"num_images":      `"1" to "4" (default: "1")`,
			"seed":            "Optional: random seed, 0-2147483647 (default: 0)",
			"callBackUrl":     "Optional: URL notified when the task completes",
		},
		Resolve: resolveIdeogramReframe,
	}
}

type ideogramReframeRequest struct {
	ImageURL       *string `json:"image_url"`
	ImageSize      *string `json:"image_size"`
	RenderingSpeed *string `json:"rendering_speed"`
	Style          *string `json:"style"`
	NumImages      *string `json:"num_images"`
	Seed           *int    `json:"seed"`
	CallBackURL    *string `json:"callBackUrl"`
}

func resolveIdeogramReframe(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req ideogramReframeRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.ImageURL == nil {
		v.Add("image_url", "required")
	} else {
		v.URL("image_url", *req.ImageURL)
	}
	imageSize := str(req.ImageSize, "square_hd")
	v.Enum("image_size", imageSize,
		"square", "square_hd", "portrait_4_3", "portrait_16_9", "landscape_4_3", "landscape_16_9")
	speed := str(req.RenderingSpeed, "BALANCED")
	v.Enum("rendering_speed", speed, "TURBO", "BALANCED", "QUALITY")
	style := str(req.Style, "AUTO")
	v.Enum("style", style, "AUTO", "GENERAL", "REALISTIC", "DESIGN")
	numImages := str(req.NumImages, "1")
	v.Enum("num_images", numImages, "1", "2", "3", "4")
	seed := integer(req.Seed, 0)
	v.IntRange("seed", seed, 0, 2147483647)
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"image_url":       *req.ImageURL,
		"image_size":      imageSize,
		"rendering_speed": speed,
		"style":           style,
		"num_images":      numImages,
		"seed":            seed,
	}
	return kie.WrapJob(domain.APITypeIdeogramReframe, "reframe", "ideogram/v3-reframe", input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
