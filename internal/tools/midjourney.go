package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func midjourneyGenerate() *Tool {
	return &Tool{
		Name: "midjourney_generate",
		Guidance: map[string]string{
			"prompt":                "Required: image description, 1-4000 characters",
			"fileUrl":               "Optional: single reference image URL",
			"fileUrls":              "Optional: up to 5 reference image URLs (takes precedence over fileUrl)",
			"taskType":              `"mj_txt2img", "mj_img2img", "mj_style_reference", "mj_omni_reference", "mj_video" or "mj_video_hd" (auto-detected when omitted)`,
			"aspectRatio":           `"1:1", "9:16", "16:9", "4:3", "3:4", "21:9", "2:3" or "3:2" (default: "1:1")`,
			"version":               `Midjourney version (default: "7")`,
			"speed":                 `"relax", "fast" or "turbo" (omitted for video and omni tasks)`,
			"variety":               "0-100",
			"stylization":           "0-1000",
			"weirdness":             "0-3000",
			"motion":                `"low" or "high" (required for explicit video task types)`,
			"videoBatchSize":        "1-4 videos per task",
			"high_definition_video": "Use the HD video pipeline (default: false)",
			"ow":                    "Omni reference weight text, 1-4000 characters (required for mj_omni_reference)",
			"enableTranslation":     "Auto-translate prompts to English (default: false)",
			"waterMark":             "Watermark text, max 100 characters",
			"callBackUrl":           "Optional: URL notified when the task completes",
		},
		Resolve: resolveMidjourney,
	}
}

type midjourneyRequest struct {
	Prompt              *string  `json:"prompt"`
	FileURL             *string  `json:"fileUrl"`
	FileURLs            []string `json:"fileUrls"`
	TaskType            *string  `json:"taskType"`
	AspectRatio         *string  `json:"aspectRatio"`
	Version             *string  `json:"version"`
	Speed               *string  `json:"speed"`
	Variety             *int     `json:"variety"`
	Stylization         *int     `json:"stylization"`
	Weirdness           *int     `json:"weirdness"`
	Motion              *string  `json:"motion"`
	VideoBatchSize      *int     `json:"videoBatchSize"`
	HighDefinitionVideo *bool    `json:"high_definition_video"`
	OW                  *string  `json:"ow"`
	EnableTranslation   *bool    `json:"enableTranslation"`
	WaterMark           *string  `json:"waterMark"`
	CallBackURL         *string  `json:"callBackUrl"`
}

func resolveMidjourney(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req midjourneyRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 4000)
	}
	if req.FileURL != nil {
		v.URL("fileUrl", *req.FileURL)
	}
	if len(req.FileURLs) > 0 {
		v.URLList("fileUrls", req.FileURLs, 1, 5)
	}
	hasImage := req.FileURL != nil || len(req.FileURLs) > 0
	videoHint := req.Motion != nil || req.VideoBatchSize != nil || boolean(req.HighDefinitionVideo, false)

	taskType := str(req.TaskType, "")
	explicit := taskType != ""
	if explicit {
		v.Enum("taskType", taskType,
			"mj_txt2img", "mj_img2img", "mj_style_reference", "mj_omni_reference", "mj_video", "mj_video_hd")
	} else {
		switch {
		case req.OW != nil:
			taskType = "mj_omni_reference"
		case videoHint:
			taskType = "mj_video"
			if boolean(req.HighDefinitionVideo, false) {
				taskType = "mj_video_hd"
			}
		case hasImage:
			taskType = "mj_img2img"
		default:
			taskType = "mj_txt2img"
		}
	}

	isVideo := taskType == "mj_video" || taskType == "mj_video_hd"
	isOmni := taskType == "mj_omni_reference"
	if explicit && isVideo && req.Motion == nil {
		v.Add("motion", "required for video task types")
	}
	if isOmni && req.OW == nil {
		v.Add("ow", "required for omni reference tasks")
	}
	switch taskType {
	case "mj_img2img", "mj_style_reference", "mj_omni_reference", "mj_video", "mj_video_hd":
		if !hasImage {
			v.Add("", "task type %s requires fileUrl or fileUrls", taskType)
		}
	case "mj_txt2img":
		if hasImage {
			v.Add("", "mj_txt2img must not include an image URL")
		}
	}

	aspect := str(req.AspectRatio, "1:1")
	v.Enum("aspectRatio", aspect, "1:1", "9:16", "16:9", "4:3", "3:4", "21:9", "2:3", "3:2")
	if req.Speed != nil {
		v.Enum("speed", *req.Speed, "relax", "fast", "turbo")
	}
	if req.Variety != nil {
		v.IntRange("variety", *req.Variety, 0, 100)
	}
	if req.Stylization != nil {
		v.IntRange("stylization", *req.Stylization, 0, 1000)
	}
	if req.Weirdness != nil {
		v.IntRange("weirdness", *req.Weirdness, 0, 3000)
	}
	if req.Motion != nil {
		v.Enum("motion", *req.Motion, "low", "high")
	}
	if req.VideoBatchSize != nil {
		v.IntRange("videoBatchSize", *req.VideoBatchSize, 1, 4)
	}
	if req.OW != nil {
		v.StringLen("ow", *req.OW, 1, 4000)
	}
	if req.WaterMark != nil {
		v.StringLen("waterMark", *req.WaterMark, 0, 100)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"taskType":          taskType,
		"prompt":            *req.Prompt,
		"aspectRatio":       aspect,
		"version":           str(req.Version, "7"),
		"enableTranslation": boolean(req.EnableTranslation, false),
	}
	if len(req.FileURLs) > 0 {
		body["fileUrls"] = req.FileURLs
	} else if req.FileURL != nil {
		body["fileUrls"] = []string{*req.FileURL}
	}
	if req.Speed != nil && !isVideo && !isOmni {
		body["speed"] = *req.Speed
	}
	if req.Variety != nil {
		body["variety"] = *req.Variety
	}
	if req.Stylization != nil {
		body["stylization"] = *req.Stylization
	}
	if req.Weirdness != nil {
		body["weirdness"] = *req.Weirdness
	}
	if req.WaterMark != nil {
		body["waterMark"] = *req.WaterMark
	}
	if isOmni {
		body["ow"] = *req.OW
	}
	if isVideo {
		body["motion"] = str(req.Motion, "high")
		if req.VideoBatchSize != nil {
			body["videoBatchSize"] = *req.VideoBatchSize
		}
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}
	return &kie.Job{APIType: domain.APITypeMidjourney, Mode: taskType, Path: "/mj/generate", Body: body}, nil
}
