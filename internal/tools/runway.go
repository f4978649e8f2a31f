package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func runwayAlephVideo() *Tool {
	return &Tool{
		Name: "runway_aleph_video",
		Guidance: map[string]string{
			"prompt":         "Required: how to transform the source video, 1-1000 characters",
			"videoUrl":       "Required: URL of the source video to transform",
			"waterMark":      `Optional: watermark text, max 100 characters (default: "")`,
			"uploadCn":       "Optional: route the upload through the China region (default: false)",
			"aspectRatio":    `"16:9", "9:16", "4:3", "3:4", "1:1" or "21:9" (default: "16:9")`,
			"seed":           "Optional: random seed, 1-999999",
			"referenceImage": "Optional: reference image URL guiding the transformation",
			"callBackUrl":    "Optional: URL notified when the task completes",
		},
		Resolve: resolveRunwayAleph,
	}
}

type runwayAlephRequest struct {
	Prompt         *string `json:"prompt"`
	VideoURL       *string `json:"videoUrl"`
	WaterMark      *string `json:"waterMark"`
	UploadCn       *bool   `json:"uploadCn"`
	AspectRatio    *string `json:"aspectRatio"`
	Seed           *int    `json:"seed"`
	ReferenceImage *string `json:"referenceImage"`
	CallBackURL    *string `json:"callBackUrl"`
}

func resolveRunwayAleph(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req runwayAlephRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 1000)
	}
	if req.VideoURL == nil {
		v.Add("videoUrl", "required")
	} else {
		v.URL("videoUrl", *req.VideoURL)
	}
	if req.WaterMark != nil {
		v.StringLen("waterMark", *req.WaterMark, 0, 100)
	}
	aspect := str(req.AspectRatio, "16:9")
	v.Enum("aspectRatio", aspect, "16:9", "9:16", "4:3", "3:4", "1:1", "21:9")
	if req.Seed != nil {
		v.IntRange("seed", *req.Seed, 1, 999999)
	}
	if req.ReferenceImage != nil {
		v.URL("referenceImage", *req.ReferenceImage)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"prompt":      *req.Prompt,
		"videoUrl":    *req.VideoURL,
		"waterMark":   str(req.WaterMark, ""),
		"uploadCn":    boolean(req.UploadCn, false),
		"aspectRatio": aspect,
	}
	if req.Seed != nil {
		body["seed"] = *req.Seed
	}
	if req.ReferenceImage != nil {
		body["referenceImage"] = *req.ReferenceImage
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}
	return &kie.Job{APIType: domain.APITypeRunwayAleph, Mode: "video-to-video", Path: "/aleph/generate", Body: body}, nil
}
