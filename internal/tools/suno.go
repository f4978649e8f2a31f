package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

func sunoGenerateMusic() *Tool {
	return &Tool{
		Name: "suno_generate_music",
		Guidance: map[string]string{
			"prompt":              "Required: song description or lyrics, 1-5000 characters",
			"customMode":          "Required: true for full control (style and title become required)",
			"instrumental":        "Required: true to generate music without vocals",
			"model":               `"V3_5", "V4", "V4_5", "V4_5PLUS" or "V5" (default: "V5")`,
			"style":               "Music style, max 1000 characters (required in customMode)",
			"title":               "Song title, max 80 characters (required in customMode)",
			"negativeTags":        "Styles to avoid, max 200 characters",
			"vocalGender":         `"m" or "f"`,
			"styleWeight":         "0-1 in steps of 0.01",
			"weirdnessConstraint": "0-1 in steps of 0.01",
			"audioWeight":         "0-1 in steps of 0.01",
			"callBackUrl":         "Optional: URL notified when the task completes",
		},
		Resolve: resolveSuno,
	}
}

type sunoRequest struct {
	Prompt              *string  `json:"prompt"`
	CustomMode          *bool    `json:"customMode"`
	Instrumental        *bool    `json:"instrumental"`
	Model               *string  `json:"model"`
	Style               *string  `json:"style"`
	Title               *string  `json:"title"`
	NegativeTags        *string  `json:"negativeTags"`
	VocalGender         *string  `json:"vocalGender"`
	StyleWeight         *float64 `json:"styleWeight"`
	WeirdnessConstraint *float64 `json:"weirdnessConstraint"`
	AudioWeight         *float64 `json:"audioWeight"`
	CallBackURL         *string  `json:"callBackUrl"`
}

func resolveSuno(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req sunoRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Prompt == nil {
		v.Add("prompt", "required")
	} else {
		v.StringLen("prompt", *req.Prompt, 1, 5000)
	}
	if req.CustomMode == nil {
		v.Add("customMode", "required")
	}
	if req.Instrumental == nil {
		v.Add("instrumental", "required")
	}
	model := str(req.Model, "V5")
	v.Enum("model", model, "V3_5", "V4", "V4_5", "V4_5PLUS", "V5")
	if req.Style != nil {
		v.StringLen("style", *req.Style, 0, 1000)
	}
	if req.Title != nil {
		v.StringLen("title", *req.Title, 0, 80)
	}
	if req.NegativeTags != nil {
		v.StringLen("negativeTags", *req.NegativeTags, 0, 200)
	}
	if req.VocalGender != nil {
		v.Enum("vocalGender", *req.VocalGender, "m", "f")
	}
	for field, val := range map[string]*float64{
		"styleWeight":         req.StyleWeight,
		"weirdnessConstraint": req.WeirdnessConstraint,
		"audioWeight":         req.AudioWeight,
	} {
		if val != nil {
			v.FloatRange(field, *val, 0, 1)
			v.Step(field, *val, 0.01)
		}
	}
	if boolean(req.CustomMode, false) {
		if req.Style == nil || *req.Style == "" {
			v.Add("style", "required in customMode")
		}
		if req.Title == nil || *req.Title == "" {
			v.Add("title", "required in customMode")
		}
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"prompt":       *req.Prompt,
		"customMode":   *req.CustomMode,
		"instrumental": *req.Instrumental,
		"model":        model,
	}
	if req.Style != nil {
		body["style"] = *req.Style
	}
	if req.Title != nil {
		body["title"] = *req.Title
	}
	if req.NegativeTags != nil {
		body["negativeTags"] = *req.NegativeTags
	}
	if req.VocalGender != nil {
		body["vocalGender"] = *req.VocalGender
	}
	if req.StyleWeight != nil {
		body["styleWeight"] = *req.StyleWeight
	}
	if req.WeirdnessConstraint != nil {
		body["weirdnessConstraint"] = *req.WeirdnessConstraint
	}
	if req.AudioWeight != nil {
		body["audioWeight"] = *req.AudioWeight
	}
	if cbURL := cb.Resolve(str(req.CallBackURL, "")); cbURL != "" {
		body["callBackUrl"] = cbURL
	}

	mode := "custom"
	if !*req.CustomMode {
		mode = "simple"
	}
	return &kie.Job{APIType: domain.APITypeSuno, Mode: mode, Path: "/generate", Body: body}, nil
}
