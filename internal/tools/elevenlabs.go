package tools

import (
	"encoding/json"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

var elevenLabsVoices = []string{
	"Rachel", "Aria", "Roger", "Sarah", "Laura", "Charlie", "George",
	"Callum", "River", "Liam", "Charlotte", "Alice", "Matilda", "Will",
	"Jessica", "Eric", "Chris", "Brian", "Daniel", "Lily", "Bill",
}

var soundEffectFormats = []string{
	"mp3_22050_32", "mp3_44100_32", "mp3_44100_64", "mp3_44100_96",
	"mp3_44100_128", "mp3_44100_192",
	"pcm_8000", "pcm_16000", "pcm_22050", "pcm_24000", "pcm_44100", "pcm_48000",
	"ulaw_8000", "alaw_8000",
	"opus_48000_32", "opus_48000_64", "opus_48000_96", "opus_48000_128",
	"opus_48000_192",
}

func elevenLabsTTS() *Tool {
	return &Tool{
		Name: "elevenlabs_tts",
		Guidance: map[string]string{
			"text":             "Required: text to speak, 1-5000 characters",
			"model":            `"turbo" or "multilingual" (default: "turbo")`,
			"voice":            `One of the 21 preset voices (default: "Rachel")`,
			"stability":        "0-1 in steps of 0.01 (default: 0.5)",
			"similarity_boost": "0-1 in steps of 0.01 (default: 0.75)",
			"style":            "0-1 in steps of 0.01 (default: 0)",
			"speed":            "0.7-1.2 in steps of 0.01 (default: 1)",
			"timestamps":       "Return word timestamps (default: false)",
			"previous_text":    "Context before the text, max 5000 characters (multilingual only)",
			"next_text":        "Context after the text, max 5000 characters (multilingual only)",
			"language_code":    "Language hint, max 500 characters (turbo only)",
			"callBackUrl":      "Optional: URL notified when the task completes",
		},
		Resolve: resolveElevenLabsTTS,
	}
}

type ttsRequest struct {
	Text            *string  `json:"text"`
	Model           *string  `json:"model"`
	Voice           *string  `json:"voice"`
	Stability       *float64 `json:"stability"`
	SimilarityBoost *float64 `json:"similarity_boost"`
	Style           *float64 `json:"style"`
	Speed           *float64 `json:"speed"`
	Timestamps      *bool    `json:"timestamps"`
	PreviousText    *string  `json:"previous_text"`
	NextText        *string  `json:"next_text"`
	LanguageCode    *string  `json:"language_code"`
	CallBackURL     *string  `json:"callBackUrl"`
}

func resolveElevenLabsTTS(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req ttsRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Text == nil {
		v.Add("text", "required")
	} else {
		v.StringLen("text", *req.Text, 1, 5000)
	}
	model := str(req.Model, "turbo")
	v.Enum("model", model, "turbo", "multilingual")
	voice := str(req.Voice, "Rachel")
	v.Enum("voice", voice, elevenLabsVoices...)
	for field, p := range map[string]struct {
		val      *float64
		min, max float64
		step     float64
	}{
		"stability":        {req.Stability, 0, 1, 0.01},
		"similarity_boost": {req.SimilarityBoost, 0, 1, 0.01},
		"style":            {req.Style, 0, 1, 0.01},
		"speed":            {req.Speed, 0.7, 1.2, 0.01},
	} {
		if p.val != nil {
			v.FloatRange(field, *p.val, p.min, p.max)
			v.Step(field, *p.val, p.step)
		}
	}
	if req.PreviousText != nil {
		v.StringLen("previous_text", *req.PreviousText, 0, 5000)
	}
	if req.NextText != nil {
		v.StringLen("next_text", *req.NextText, 0, 5000)
	}
	if req.LanguageCode != nil {
		v.StringLen("language_code", *req.LanguageCode, 0, 500)
	}
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"text":             *req.Text,
		"voice":            voice,
		"stability":        number(req.Stability, 0.5),
		"similarity_boost": number(req.SimilarityBoost, 0.75),
		"style":            number(req.Style, 0),
		"speed":            number(req.Speed, 1),
		"timestamps":       boolean(req.Timestamps, false),
	}
	modelID := "elevenlabs/text-to-speech-turbo-2-5"
	if model == "multilingual" {
		modelID = "elevenlabs/text-to-speech-multilingual-v2"
		input["previous_text"] = str(req.PreviousText, "")
		input["next_text"] = str(req.NextText, "")
	} else {
		input["language_code"] = str(req.LanguageCode, "")
	}
	return kie.WrapJob(domain.APITypeElevenLabsTTS, model, modelID, input, cb.Resolve(str(req.CallBackURL, ""))), nil
}

func elevenLabsSoundEffects() *Tool {
	return &Tool{
		Name: "elevenlabs_ttsfx",
		Guidance: map[string]string{
			"text":             "Required: sound effect description, 1-5000 characters",
			"loop":             "Generate a seamless loop (default: false)",
			"duration_seconds": "0.5-22 in steps of 0.1 (omitted when unset, the model decides)",
			"prompt_influence": "0-1 in steps of 0.01 (default: 0.3)",
			"output_format":    `Audio container/bitrate, e.g. "mp3_44100_192" (default)`,
			"callBackUrl":      "Optional: URL notified when the task completes",
		},
		Resolve: resolveElevenLabsSoundEffects,
	}
}

type soundEffectsRequest struct {
	Text            *string  `json:"text"`
	Loop            *bool    `json:"loop"`
	DurationSeconds *float64 `json:"duration_seconds"`
	PromptInfluence *float64 `json:"prompt_influence"`
	OutputFormat    *string  `json:"output_format"`
	CallBackURL     *string  `json:"callBackUrl"`
}

func resolveElevenLabsSoundEffects(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error) {
	var req soundEffectsRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}

	var v validate.Violations
	if req.Text == nil {
		v.Add("text", "required")
	} else {
		v.StringLen("text", *req.Text, 1, 5000)
	}
	if req.DurationSeconds != nil {
		v.FloatRange("duration_seconds", *req.DurationSeconds, 0.5, 22)
		v.Step("duration_seconds", *req.DurationSeconds, 0.1)
	}
	if req.PromptInfluence != nil {
		v.FloatRange("prompt_influence", *req.PromptInfluence, 0, 1)
		v.Step("prompt_influence", *req.PromptInfluence, 0.01)
	}
	format := str(req.OutputFormat, "mp3_44100_192")
	v.Enum("output_format", format, soundEffectFormats...)
	if req.CallBackURL != nil {
		v.URL("callBackUrl", *req.CallBackURL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"text":             *req.Text,
		"loop":             boolean(req.Loop, false),
		"prompt_influence": number(req.PromptInfluence, 0.3),
		"output_format":    format,
	}
	if req.DurationSeconds != nil {
		input["duration_seconds"] = *req.DurationSeconds
	}
	return kie.WrapJob(domain.APITypeElevenLabsSFX, "sound-effect", "elevenlabs/sound-effect-v2", input, cb.Resolve(str(req.CallBackURL, ""))), nil
}
