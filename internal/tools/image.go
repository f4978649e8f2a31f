package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func nanoBananaImage() *Tool {
	return &Tool{
		Name: "nano_banana_image",
		Guidance: map[string]string{
			"prompt":        "Required for generate and edit modes: image description, 1-5000 characters",
			"image_urls":    "Edit mode: 1-14 reference image URLs",
			"image":         "Upscale mode: URL of the image to upscale (jpeg/png/webp)",
			"scale":         "Upscale mode: upscale factor 1-4 (default: 2)",
			"face_enhance":  "Upscale mode: enable face enhancement (default: false)",
			"output_format": `"png" or "jpg" (default: "png")`,
			"aspect_ratio":  `"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9" or "auto" (default: "1:1")`,
			"resolution":    `"1K", "2K" or "4K" (default: "1K")`,
			"callBackUrl":   "Optional: URL notified when the task completes",
		},
		Resolve: resolveNanoBanana,
	}
}

type nanoBananaRequest struct {
	Prompt       *string  `json:"prompt"`
	ImageURLs    []string `json:"image_urls"`
	Image        *string  `json:"image"`
	Scale        *int     `json:"scale"`
	FaceEnhance  *bool    `json:"face_enhance"`
	OutputFormat *string  `json:"output_format"`
	AspectRatio  *string  `json:"aspect_ratio"`
	Resolution   *string  `json:"resolution"`
	CallBackURL  *string  `json:"callBackUrl"`
}

// resolveNanoBanana detects the mode structurally: an image URL means
// upscale, reference images mean edit, a bare prompt means generate.
func resolveNanoBanana(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req nanoBananaRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	outputFormat := str(req.OutputFormat, "png")
	v.Enum("output_format", outputFormat, "png", "jpg")
	aspect := str(req.AspectRatio, "1:1")
	v.Enum("aspect_ratio", aspect, "1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9", "auto")
	resolution := str(req.Resolution, "1K")
	v.Enum("resolution", resolution, "1K", "2K", "4K")
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}

	switch {
	case req.Image != nil:
		if req.Prompt != nil || len(req.ImageURLs) > 0 {
			v.Add("", "upscale mode: prompt and image_urls must not be provided")
		}
		v.URL("image", *req.Image)
		scale := integer(req.Scale, 2)
		v.IntRange("scale", scale, 1, 4)
		if err := v.Err(); err != nil {
			return nil, err
		}
		input := map[string]any{
			"image":        *req.Image,
			"scale":        scale,
			"face_enhance": boolean(req.FaceEnhance, false),
		}
		return kie.WrapJob(domain.APITypeNanoBananaUpscale, "upscale", "nano-banana/upscale", input, cb.Resolve(str(req.CallBackURL, ""))), nil

	case len(req.ImageURLs) > 0:
		if req.Prompt == nil {
			v.Add("prompt", "required in edit mode")
		} else {
			v.StringLen("prompt", *req.Prompt, 1, 5000)
		}
		if req.Scale != nil {
			v.Add("scale", "only valid in upscale mode")
		}
		v.URLList("image_urls", req.ImageURLs, 1, 14)
		if err := v.Err(); err != nil {
			return nil, err
		}
		input := map[string]any{
			"prompt":        *req.Prompt,
			"output_format": outputFormat,
			"aspect_ratio":  aspect,
			"resolution":    resolution,
			"image_input":   req.ImageURLs,
		}
		return kie.WrapJob(domain.APITypeNanoBananaEdit, "edit", "nano-banana-2", input, cb.Resolve(str(req.CallBackURL, ""))), nil

	case req.Prompt != nil:
		v.StringLen("prompt", *req.Prompt, 1, 5000)
		if req.Scale != nil {
			v.Add("scale", "only valid in upscale mode")
		}
		if err := v.Err(); err != nil {
			return nil, err
		}
		input := map[string]any{
			"prompt":        *req.Prompt,
			"output_format": outputFormat,
			"aspect_ratio":  aspect,
			"resolution":    resolution,
			"image_input":   []string{},
		}
		return kie.WrapJob(domain.APITypeNanoBanana, "generate", "nano-banana-2", input, cb.Resolve(str(req.CallBackURL, ""))), nil

	default:
		v.Add("", "no valid mode: provide prompt (generate), prompt + image_urls (edit), or image (upscale)")
		return nil, v.Err()
	}
}
