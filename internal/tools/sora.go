package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func soraVideo() *Tool {
	return &Tool{
		Name: "sora_video",
		Guidance: map[string]string{
			"prompt":           "Video description, 1-5000 characters (omit for storyboard mode)",
			"image_urls":       "1-10 image URLs (alone = storyboard, with prompt = image-to-video)",
			"aspect_ratio":     `"portrait" or "landscape" (default: "landscape")`,
			"n_frames":         `"10", "15" or "25" seconds (default: "10"; storyboard allows 15 or 25 only)`,
			"size":             `"standard" or "high" (default: "standard"; high uses the pro models)`,
			"remove_watermark": "Default: true",
			"callBackUrl":      "Optional: URL notified when the task completes",
		},
		Resolve: resolveSora,
	}
}

type soraRequest struct {
	Prompt          *string  `json:"prompt"`
	ImageURLs       []string `json:"image_urls"`
	AspectRatio     *string  `json:"aspect_ratio"`
	NFrames         *string  `json:"n_frames"`
	Size            *string  `json:"size"`
	RemoveWatermark *bool    `json:"remove_watermark"`
	CallBackURL     *string  `json:"callBackUrl"`
}

func resolveSora(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req soraRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	hasPrompt := req.Prompt != nil
	hasImages := len(req.ImageURLs) > 0

	var v validate.Violations
	if !hasPrompt && !hasImages {
		v.Add("", "provide prompt (text-to-video), image_urls (storyboard), or both (image-to-video)")
	}
	if hasPrompt {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	if hasImages {
		v.URLList("image_urls", req.ImageURLs, 1, 10)
	}
	aspect := str(req.AspectRatio, "landscape")
	v.Enum("aspect_ratio", aspect, "portrait", "landscape")
	size := str(req.Size, "standard")
	v.Enum("size", size, "standard", "high")

	storyboard := hasImages && !hasPrompt
	defaultFrames := "10"
	if storyboard {
		defaultFrames = "15"
	}
	nFrames := str(req.NFrames, defaultFrames)
	v.Enum("n_frames", nFrames, "10", "15", "25")
	if storyboard && nFrames == "10" {
		v.Add("n_frames", "storyboard mode supports 15 or 25 seconds only")
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"aspect_ratio":     aspect,
		"n_frames":         nFrames,
		"size":             size,
		"remove_watermark": boolean(req.RemoveWatermark, true),
	}
	pro := ""
	if size == "high" {
		pro = "-pro"
	}
	var mode, model string
	switch {
	case storyboard:
		mode = "storyboard"
		model = "openai/sora-2-storyboard"
		input["image_urls"] = req.ImageURLs
	case hasPrompt && hasImages:
		mode = "image-to-video"
		model = "openai/sora-2" + pro + "-image-to-video"
		input["prompt"] = *req.Prompt
		input["image_urls"] = req.ImageURLs
	default:
		mode = "text-to-video"
		model = "openai/sora-2" + pro + "-text-to-video"
		input["prompt"] = *req.Prompt
	}
	return kie.WrapJob(domain.APITypeSoraVideo, mode, model, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
