package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func hailuoVideo() *Tool {
	return &Tool{
		Name: "hailuo_video",
		Guidance: map[string]string{
			"prompt":          "Required: video description, 1-1500 characters",
			"imageUrl":        "Optional: source image URL, switches to image-to-video",
			"endImageUrl":     "Optional: end frame URL, requires imageUrl",
			"version":         `"02" or "2.3" (default: "02")`,
			"quality":         `"standard" or "pro" (default: "standard")`,
			"duration":        `"6" or "10" seconds, standard quality only (default: "6")`,
			"resolution":      `"512P", "768P" or "1080P" (default: "768P"; 02 forbids 1080P, 2.3 forbids 512P and 10s+1080P)`,
			"promptOptimizer": "Default: true",
			"callBackUrl":     "Optional: URL notified when the task completes",
		},
		Resolve: resolveHailuo,
	}
}

type hailuoRequest struct {
	Prompt          *string `json:"prompt"`
	ImageURL        *string `json:"imageUrl"`
	EndImageURL     *string `json:"endImageUrl"`
	Version         *string `json:"version"`
	Quality         *string `json:"quality"`
	Duration        *string `json:"duration"`
	Resolution      *string `json:"resolution"`
	PromptOptimizer *bool   `json:"promptOptimizer"`
	CallBackURL     *string `json:"callBackUrl"`
}

func resolveHailuo(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req hailuoRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 1500)
	}
	imageToVideo := req.ImageURL != nil
	if imageToVideo {
		v.URL("imageUrl", *req.ImageURL)
	}
	if req.EndImageURL != nil {
		if !imageToVideo {
			v.Add("endImageUrl", "requires imageUrl")
		}
		v.URL("endImageUrl", *req.EndImageURL)
	}
	version := str(req.Version, "02")
	v.Enum("version", version, "02", "2.3")
	quality := str(req.Quality, "standard")
	v.Enum("quality", quality, "standard", "pro")
	duration := str(req.Duration, "6")
	v.Enum("duration", duration, "6", "10")
	resolution := str(req.Resolution, "768P")
	v.Enum("resolution", resolution, "512P", "768P", "1080P")
	if version == "2.3" {
		if resolution == "512P" {
			v.Add("resolution", "512P is not available for version 2.3")
		}
		if duration == "10" && resolution == "1080P" {
			v.Add("", "version 2.3 does not support 10s together with 1080P")
		}
	}
	if version == "02" && resolution == "1080P" {
		v.Add("resolution", "1080P is not available for version 02")
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	versionPrefix := "02"
	if version == "2.3" {
		versionPrefix = "2-3"
	}
	mode := "text-to-video"
	if imageToVideo {
		mode = "image-to-video"
	}
	model := "hailuo/" + versionPrefix + "-" + mode + "-" + quality

	input := map[string]any{
		"prompt":           *req.Prompt,
		"prompt_optimizer": boolean(req.PromptOptimizer, true),
	}
	if imageToVideo {
		input["image_url"] = *req.ImageURL
		if req.EndImageURL != nil {
			input["end_image_url"] = *req.EndImageURL
		}
	}
	// Pro model pricing bakes in duration and resolution; only the standard
	// tier accepts them.
	if quality == "standard" {
		input["duration"] = duration
		if imageToVideo {
			input["resolution"] = resolution
		}
	}
	return kie.WrapJob(domain.APITypeHailuo, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
