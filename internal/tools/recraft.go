package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func recraftRemoveBackground() *Tool {
	return &Tool{
		Name: "recraft_remove_background",
		Guidance: map[string]string{
			"image":       "Required: URL of the image to strip the background from",
			"callBackUrl": "Optional: URL notified when the task completes",
		},
		Resolve: resolveRecraftRemoveBG,
	}
}

type recraftRemoveBGRequest struct {
	Image       *string `json:"image"`
	CallBackURL *string `json:"callBackUrl"`
}

func resolveRecraftRemoveBG(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req recraftRemoveBGRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Image == nil {
		v.Add("image", "required")
	} else {
		v.URL("image", *req.Image)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{"image": *req.Image}
	return kie.WrapJob(domain.APITypeRecraftRemoveBG, "remove-background", "recraft/remove-background", input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
