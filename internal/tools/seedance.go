package tools

import (
	"encoding/json"
	"strconv"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func seedanceVideo() *Tool {
	return &Tool{
		Name: "bytedance_seedance_video",
		Guidance: map[string]string{
			"prompt":                "Required: video description, 1-10000 characters",
			"image_url":             "Optional: source image URL, switches to image-to-video",
			"quality":               `"lite" or "pro" (default: "lite")`,
			"aspect_ratio":          `"1:1", "9:16", "16:9", "4:3", "3:4", "21:9" or "9:21" (default: "16:9"; 9:21 is text-to-video only)`,
			"resolution":            `"480p", "720p" or "1080p" (default: "720p")`,
			"duration":              `String number of seconds, "2"-"12" (default: "5")`,
			"camera_fixed":          "Keep the camera static (default: false)",
			"seed":                  "-1 to 2147483647 (default: -1, random)",
			"enable_safety_checker": "Default: false",
			"end_image_url":         "Optional: end frame URL, requires image_url",
			"callBackUrl":           "Optional: URL notified when the task completes",
		},
		Resolve: resolveSeedance,
	}
}

type seedanceRequest struct {
	Prompt              *string `json:"prompt"`
	ImageURL            *string `json:"image_url"`
	Quality             *string `json:"quality"`
	AspectRatio         *string `json:"aspect_ratio"`
	Resolution          *string `json:"resolution"`
	Duration            *string `json:"duration"`
	CameraFixed         *bool   `json:"camera_fixed"`
	Seed                *int    `json:"seed"`
	EnableSafetyChecker *bool   `json:"enable_safety_checker"`
	EndImageURL         *string `json:"end_image_url"`
	CallBackURL         *string `json:"callBackUrl"`
}

func resolveSeedance(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req seedanceRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 10000)
	}
	imageToVideo := req.ImageURL != nil
	if imageToVideo {
		v.URL("image_url", *req.ImageURL)
	}
	quality := str(req.Quality, "lite")
	v.Enum("quality", quality, "lite", "pro")
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspect_ratio", aspect, "1:1", "9:16", "16:9", "4:3", "3:4", "21:9", "9:21")
	if imageToVideo && aspect == "9:21" {
		v.Add("aspect_ratio", "9:21 is not supported in image-to-video mode")
	}
	resolution := str(req.Resolution, "720p")
	v.Enum("resolution", resolution, "480p", "720p", "1080p")
	duration := str(req.Duration, "5")
	if n, err := strconv.Atoi(duration); err != nil || n < 2 || n > 12 {
		v.Add("duration", "must be a string number between 2 and 12, got %q", duration)
	}
	seed := integer(req.Seed, -1)
	v.IntRange("seed", seed, -1, 2147483647)
	if req.EndImageURL != nil {
		if !imageToVideo {
			v.Add("end_image_url", "requires image_url")
		}
		v.URL("end_image_url", *req.EndImageURL)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"prompt":                *req.Prompt,
		"aspect_ratio":          aspect,
		"resolution":            resolution,
		"duration":              duration,
		"camera_fixed":          boolean(req.CameraFixed, false),
		"seed":                  seed,
		"enable_safety_checker": boolean(req.EnableSafetyChecker, false),
	}
	mode := "text-to-video"
	if imageToVideo {
		mode = "image-to-video"
		input["image_url"] = *req.ImageURL
		if req.EndImageURL != nil {
			input["end_image_url"] = *req.EndImageURL
		}
	}
	model := "bytedance/v1-" + quality + "-" + mode
	return kie.WrapJob(domain.APITypeSeedanceVideo, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
