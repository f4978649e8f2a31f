package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func seedreamImage() *Tool {
	return &Tool{
		Name: "bytedance_seedream_image",
		Guidance: map[string]string{
			"prompt":           "Required: image description, 1-5000 characters",
			"image_urls":       "Optional: 1-14 reference image URLs, switches to edit mode",
			"version":          `"4" or "5-lite" (default: "5-lite")`,
			"aspect_ratio":     `5-lite only: "1:1", "4:3", "3:4", "16:9", "9:16", "2:3", "3:2" or "21:9" (default: "1:1")`,
			"quality":          `5-lite only: "basic" or "high" (default: "basic")`,
			"image_size":       `V4 only: named size such as "square_hd" (default)`,
			"image_resolution": `V4 only: "1K", "2K" or "4K" (default: "1K")`,
			"max_images":       "V4 only: 1-6 (default: 1)",
			"seed":             "V4 only: random seed (default: -1)",
			"callBackUrl":      "Optional: URL notified when the task completes",
		},
		Resolve: resolveSeedream,
	}
}

type seedreamRequest struct {
	Prompt          *string  `json:"prompt"`
	ImageURLs       []string `json:"image_urls"`
	Version         *string  `json:"version"`
	AspectRatio     *string  `json:"aspect_ratio"`
	Quality         *string  `json:"quality"`
	ImageSize       *string  `json:"image_size"`
	ImageResolution *string  `json:"image_resolution"`
	MaxImages       *int     `json:"max_images"`
	Seed            *int     `json:"seed"`
	CallBackURL     *string  `json:"callBackUrl"`
}

func resolveSeedream(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req seedreamRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	edit := len(req.ImageURLs) > 0
	if edit {
		v.URLList("image_urls", req.ImageURLs, 1, 14)
	}
	version := str(req.Version, "5-lite")
	v.Enum("version", version, "4", "5-lite")
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}

	mode := "text-to-image"
	if edit {
		mode = "edit"
	}

	var model string
	input := map[string]any{}
	if version == "4" {
		imageSize := str(req.ImageSize, "square_hd")
		v.Enum("image_size", imageSize,
			"square", "square_hd", "portrait_4_3", "portrait_3_2", "portrait_16_9",
			"landscape_4_3", "landscape_3_2", "landscape_16_9", "landscape_21_9")
		imageResolution := str(req.ImageResolution, "1K")
		v.Enum("image_resolution", imageResolution, "1K", "2K", "4K")
		maxImages := integer(req.MaxImages, 1)
		v.IntRange("max_images", maxImages, 1, 6)
		if err := v.Err(); err != nil {
			return nil, err
		}
		input["prompt"] = *req.Prompt
		input["image_size"] = imageSize
		input["image_resolution"] = imageResolution
		input["max_images"] = maxImages
		input["seed"] = integer(req.Seed, -1)
		model = "bytedance/seedream-v4-text-to-image"
		if edit {
			model = "bytedance/seedream-v4-edit"
		}
	} else {
		aspect := str(req.AspectRatio, "1:1")
		v.Enum("aspect_ratio", aspect, "1:1", "4:3", "3:4", "16:9", "9:16", "2:3", "3:2", "21:9")
		quality := str(req.Quality, "basic")
		v.Enum("quality", quality, "basic", "high")
		if err := v.Err(); err != nil {
			return nil, err
		}
		input["prompt"] = *req.Prompt
		input["aspect_ratio"] = aspect
		input["quality"] = quality
		model = "seedream/5-lite-text-to-image"
		if edit {
			model = "seedream/5-lite-image-to-image"
		}
	}
	if edit {
		input["image_urls"] = req.ImageURLs
	}
	return kie.WrapJob(domain.APITypeSeedreamImage, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
