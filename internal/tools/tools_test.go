package tools

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"kiegw/internal/domain"
	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

var testCallbacks = kie.Callbacks{Fallback: "https://proxy.kie.test/callback"}

func resolve(t *testing.T, tool string, args map[string]any) (*kie.Job, error) {
	t.Helper()
	reg := NewRegistry()
	tl, ok := reg.Get(tool)
	if !ok {
		t.Fatalf("tool %s not registered", tool)
	}
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	return tl.Resolve(raw, testCallbacks)
}

func mustResolve(t *testing.T, tool string, args map[string]any) *kie.Job {
	t.Helper()
	job, err := resolve(t, tool, args)
	if err != nil {
		t.Fatalf("%s: resolve: %v", tool, err)
	}
	return job
}

func mustFail(t *testing.T, tool string, args map[string]any) *validate.Violations {
	t.Helper()
	_, err := resolve(t, tool, args)
	if err == nil {
		t.Fatalf("%s: resolve should fail for %v", tool, args)
	}
	var v *validate.Violations
	if !errors.As(err, &v) {
		t.Fatalf("%s: err = %T, want *validate.Violations", tool, err)
	}
	return v
}

// Every registered tool must resolve some minimal valid argument object to
// exactly one job.
func TestEveryToolResolvesMinimalRequest(t *testing.T) {
	minimal := map[string]map[string]any{
		"nano_banana_image":         {"prompt": "a sunset"},
		"veo3_generate_video":       {"prompt": "a sunset"},
		"suno_generate_music":       {"prompt": "an upbeat song", "customMode": false, "instrumental": false},
		"elevenlabs_tts":            {"text": "hello"},
		"elevenlabs_ttsfx":          {"text": "rain on a tin roof"},
		"bytedance_seedance_video":  {"prompt": "a sunset"},
		"bytedance_seedream_image":  {"prompt": "a sunset"},
		"qwen_image":                {"prompt": "a sunset"},
		"midjourney_generate":       {"prompt": "a sunset"},
		"openai_4o_image":           {"prompt": "a sunset"},
		"flux_kontext_image":        {"prompt": "a sunset"},
		"kling_video":               {"prompt": "a sunset"},
		"hailuo_video":              {"prompt": "a sunset"},
		"sora_video":                {"prompt": "a sunset"},
		"wan_video":                 {"prompt": "a sunset"},
		"runway_aleph_video":        {"prompt": "make it snow", "videoUrl": "https://example.com/in.mp4"},
		"recraft_remove_background": {"image": "https://example.com/a.png"},
		"ideogram_reframe":          {"image_url": "https://example.com/a.png"},
	}
	reg := NewRegistry()
	for _, name := range reg.Names() {
		args, ok := minimal[name]
		if !ok {
			t.Errorf("no minimal request defined for %s", name)
			continue
		}
		job := mustResolve(t, name, args)
		if job.Path == "" || job.APIType == "" || job.Mode == "" {
			t.Errorf("%s: incomplete job %+v", name, job)
		}
		if !job.APIType.Known() {
			t.Errorf("%s: api type %q not registered", name, job.APIType)
		}
	}
}

func TestNanoBananaModeDetection(t *testing.T) {
	gen := mustResolve(t, "nano_banana_image", map[string]any{"prompt": "a cat"})
	if gen.Mode != "generate" || gen.APIType != domain.APITypeNanoBanana {
		t.Fatalf("generate job = %+v", gen)
	}
	if gen.Body["model"] != "nano-banana-2" {
		t.Fatalf("generate model = %v", gen.Body["model"])
	}

	edit := mustResolve(t, "nano_banana_image", map[string]any{
		"prompt":     "make it blue",
		"image_urls": []string{"https://example.com/a.png"},
	})
	if edit.Mode != "edit" || edit.APIType != domain.APITypeNanoBananaEdit {
		t.Fatalf("edit job = %+v", edit)
	}

	up := mustResolve(t, "nano_banana_image", map[string]any{
		"image": "https://example.com/a.png",
		"scale": 3,
	})
	if up.Mode != "upscale" || up.APIType != domain.APITypeNanoBananaUpscale {
		t.Fatalf("upscale job = %+v", up)
	}
	if up.Body["model"] != "nano-banana/upscale" {
		t.Fatalf("upscale model = %v", up.Body["model"])
	}
}

func TestNanoBananaModeExclusivity(t *testing.T) {
	mustFail(t, "nano_banana_image", map[string]any{})
	mustFail(t, "nano_banana_image", map[string]any{
		"image":  "https://example.com/a.png",
		"prompt": "not allowed in upscale",
	})
	mustFail(t, "nano_banana_image", map[string]any{
		"image_urls": []string{"https://example.com/a.png"},
	})
	mustFail(t, "nano_banana_image", map[string]any{
		"prompt": "generate",
		"scale":  2,
	})
}

func TestPromptLengthBoundary(t *testing.T) {
	if _, err := resolve(t, "nano_banana_image", map[string]any{"prompt": strings.Repeat("x", 5000)}); err != nil {
		t.Fatalf("5000 characters should pass: %v", err)
	}
	v := mustFail(t, "nano_banana_image", map[string]any{"prompt": strings.Repeat("x", 5001)})
	if len(v.Fields) != 1 || v.Fields[0].Field != "prompt" {
		t.Fatalf("violations = %+v", v.Fields)
	}
}

func TestReferenceImageCardinality(t *testing.T) {
	urls := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "https://example.com/ref.png"
		}
		return out
	}
	if _, err := resolve(t, "nano_banana_image", map[string]any{"prompt": "edit", "image_urls": urls(14)}); err != nil {
		t.Fatalf("14 reference images should pass: %v", err)
	}
	mustFail(t, "nano_banana_image", map[string]any{"prompt": "edit", "image_urls": urls(15)})
}

func TestVeo3SeedsRange(t *testing.T) {
	mustFail(t, "veo3_generate_video", map[string]any{"prompt": "a storm", "seeds": 9999})
	job := mustResolve(t, "veo3_generate_video", map[string]any{"prompt": "a storm", "seeds": 10000})
	if job.Body["seeds"] != 10000 {
		t.Fatalf("seeds = %v", job.Body["seeds"])
	}
	if job.Path != "/veo/generate" {
		t.Fatalf("path = %s", job.Path)
	}
}

func TestVeo3ImageURLsSwitchMode(t *testing.T) {
	job := mustResolve(t, "veo3_generate_video", map[string]any{
		"prompt":    "animate",
		"imageUrls": []string{"https://example.com/start.png", "https://example.com/end.png"},
	})
	if job.Mode != "image-to-video" {
		t.Fatalf("mode = %s", job.Mode)
	}
	mustFail(t, "veo3_generate_video", map[string]any{
		"prompt":    "animate",
		"imageUrls": []string{"https://example.com/1.png", "https://example.com/2.png", "https://example.com/3.png"},
	})
}

func TestSunoCustomModeRequirements(t *testing.T) {
	v := mustFail(t, "suno_generate_music", map[string]any{
		"prompt":       "a ballad",
		"customMode":   true,
		"instrumental": true,
	})
	fields := map[string]bool{}
	for _, f := range v.Fields {
		fields[f.Field] = true
	}
	if !fields["style"] || !fields["title"] {
		t.Fatalf("expected style and title violations, got %+v", v.Fields)
	}

	job := mustResolve(t, "suno_generate_music", map[string]any{
		"prompt":       "a ballad",
		"customMode":   true,
		"instrumental": true,
		"style":        "folk",
		"title":        "Evening",
	})
	if job.Body["model"] != "V5" {
		t.Fatalf("default model = %v", job.Body["model"])
	}
}

func TestSunoStepGrid(t *testing.T) {
	mustFail(t, "suno_generate_music", map[string]any{
		"prompt":       "a ballad",
		"customMode":   false,
		"instrumental": false,
		"styleWeight":  0.015,
	})
	job := mustResolve(t, "suno_generate_music", map[string]any{
		"prompt":       "a ballad",
		"customMode":   false,
		"instrumental": false,
		"styleWeight":  0.25,
	})
	if job.Body["styleWeight"] != 0.25 {
		t.Fatalf("styleWeight = %v", job.Body["styleWeight"])
	}
}

func TestElevenLabsModelSelection(t *testing.T) {
	turbo := mustResolve(t, "elevenlabs_tts", map[string]any{"text": "hello"})
	if turbo.Body["model"] != "elevenlabs/text-to-speech-turbo-2-5" {
		t.Fatalf("turbo model = %v", turbo.Body["model"])
	}
	input := turbo.Body["input"].(map[string]any)
	if _, ok := input["language_code"]; !ok {
		t.Fatalf("turbo input missing language_code: %v", input)
	}
	if _, ok := input["previous_text"]; ok {
		t.Fatalf("turbo input must not carry previous_text")
	}

	multi := mustResolve(t, "elevenlabs_tts", map[string]any{"text": "hallo", "model": "multilingual"})
	if multi.Body["model"] != "elevenlabs/text-to-speech-multilingual-v2" {
		t.Fatalf("multilingual model = %v", multi.Body["model"])
	}
	minput := multi.Body["input"].(map[string]any)
	if _, ok := minput["previous_text"]; !ok {
		t.Fatalf("multilingual input missing previous_text")
	}
	if _, ok := minput["language_code"]; ok {
		t.Fatalf("multilingual input must not carry language_code")
	}
}

func TestSoundEffectsDurationOmittedWhenUnset(t *testing.T) {
	job := mustResolve(t, "elevenlabs_ttsfx", map[string]any{"text": "thunder"})
	input := job.Body["input"].(map[string]any)
	if _, ok := input["duration_seconds"]; ok {
		t.Fatalf("duration_seconds should be omitted when unset")
	}
	mustFail(t, "elevenlabs_ttsfx", map[string]any{"text": "thunder", "duration_seconds": 0.55})
}

func TestSeedanceAspectConstraint(t *testing.T) {
	if _, err := resolve(t, "bytedance_seedance_video", map[string]any{"prompt": "wide", "aspect_ratio": "9:21"}); err != nil {
		t.Fatalf("9:21 is valid for text-to-video: %v", err)
	}
	mustFail(t, "bytedance_seedance_video", map[string]any{
		"prompt":       "wide",
		"aspect_ratio": "9:21",
		"image_url":    "https://example.com/a.png",
	})
	mustFail(t, "bytedance_seedance_video", map[string]any{
		"prompt":        "wide",
		"end_image_url": "https://example.com/end.png",
	})
	job := mustResolve(t, "bytedance_seedance_video", map[string]any{
		"prompt":    "wide",
		"quality":   "pro",
		"image_url": "https://example.com/a.png",
	})
	if job.Body["model"] != "bytedance/v1-pro-image-to-video" {
		t.Fatalf("model = %v", job.Body["model"])
	}
}

func TestSeedreamVersionSelection(t *testing.T) {
	lite := mustResolve(t, "bytedance_seedream_image", map[string]any{"prompt": "a lake"})
	if lite.Body["model"] != "seedream/5-lite-text-to-image" {
		t.Fatalf("default model = %v", lite.Body["model"])
	}
	v4 := mustResolve(t, "bytedance_seedream_image", map[string]any{
		"prompt":     "a lake",
		"version":    "4",
		"image_urls": []string{"https://example.com/a.png"},
	})
	if v4.Body["model"] != "bytedance/seedream-v4-edit" {
		t.Fatalf("v4 edit model = %v", v4.Body["model"])
	}
	input := v4.Body["input"].(map[string]any)
	if input["seed"] != -1 {
		t.Fatalf("v4 default seed = %v", input["seed"])
	}
	mustFail(t, "bytedance_seedream_image", map[string]any{"prompt": "a lake", "version": "4.5"})
}

func TestQwenModeDependentBounds(t *testing.T) {
	if _, err := resolve(t, "qwen_image", map[string]any{"prompt": "x", "num_inference_steps": 250}); err != nil {
		t.Fatalf("250 steps valid in text mode: %v", err)
	}
	mustFail(t, "qwen_image", map[string]any{
		"prompt":              "x",
		"image_url":           "https://example.com/a.png",
		"num_inference_steps": 50,
	})
	mustFail(t, "qwen_image", map[string]any{
		"prompt":    strings.Repeat("x", 2001),
		"image_url": "https://example.com/a.png",
	})
	edit := mustResolve(t, "qwen_image", map[string]any{
		"prompt":    "touch up",
		"image_url": "https://example.com/a.png",
	})
	input := edit.Body["input"].(map[string]any)
	if input["num_inference_steps"] != 25 || input["guidance_scale"] != 4.0 {
		t.Fatalf("edit defaults = %v", input)
	}
	if input["negative_prompt"] != "blurry, ugly" {
		t.Fatalf("edit negative_prompt = %v", input["negative_prompt"])
	}
	mustFail(t, "qwen_image", map[string]any{"prompt": "x", "num_images": "2"})
}

func TestMidjourneyTaskTypeDetection(t *testing.T) {
	txt := mustResolve(t, "midjourney_generate", map[string]any{"prompt": "a castle"})
	if txt.Body["taskType"] != "mj_txt2img" {
		t.Fatalf("taskType = %v", txt.Body["taskType"])
	}

	img := mustResolve(t, "midjourney_generate", map[string]any{
		"prompt":  "a castle",
		"fileUrl": "https://example.com/ref.png",
	})
	if img.Body["taskType"] != "mj_img2img" {
		t.Fatalf("taskType = %v", img.Body["taskType"])
	}
	urls, ok := img.Body["fileUrls"].([]string)
	if !ok || len(urls) != 1 {
		t.Fatalf("fileUrls = %v", img.Body["fileUrls"])
	}

	video := mustResolve(t, "midjourney_generate", map[string]any{
		"prompt":  "a castle",
		"fileUrl": "https://example.com/ref.png",
		"motion":  "low",
	})
	if video.Body["taskType"] != "mj_video" {
		t.Fatalf("taskType = %v", video.Body["taskType"])
	}
	if video.Body["motion"] != "low" {
		t.Fatalf("motion = %v", video.Body["motion"])
	}
	if _, ok := video.Body["speed"]; ok {
		t.Fatalf("speed must be omitted for video tasks")
	}

	omni := mustResolve(t, "midjourney_generate", map[string]any{
		"prompt":  "a castle",
		"fileUrl": "https://example.com/ref.png",
		"ow":      "the subject",
	})
	if omni.Body["taskType"] != "mj_omni_reference" {
		t.Fatalf("taskType = %v", omni.Body["taskType"])
	}

	mustFail(t, "midjourney_generate", map[string]any{
		"prompt":   "a castle",
		"taskType": "mj_video",
		"fileUrl":  "https://example.com/ref.png",
	})
	mustFail(t, "midjourney_generate", map[string]any{
		"prompt":   "a castle",
		"taskType": "mj_txt2img",
		"fileUrl":  "https://example.com/ref.png",
	})
}

func TestOpenAI4oMaskRules(t *testing.T) {
	mustFail(t, "openai_4o_image", map[string]any{})
	mustFail(t, "openai_4o_image", map[string]any{
		"prompt":  "fix the sky",
		"maskUrl": "https://example.com/mask.png",
	})
	mustFail(t, "openai_4o_image", map[string]any{
		"filesUrl": []string{"https://example.com/1.png", "https://example.com/2.png"},
		"maskUrl":  "https://example.com/mask.png",
	})
	job := mustResolve(t, "openai_4o_image", map[string]any{
		"filesUrl": []string{"https://example.com/1.png"},
		"maskUrl":  "https://example.com/mask.png",
	})
	if job.Mode != "edit" {
		t.Fatalf("mode = %s", job.Mode)
	}
	if job.Body["enableFallback"] != true || job.Body["fallbackModel"] != "FLUX_MAX" {
		t.Fatalf("fallback defaults = %v", job.Body)
	}
}

func TestFluxKontextSafetyToleranceByMode(t *testing.T) {
	if _, err := resolve(t, "flux_kontext_image", map[string]any{"prompt": "a city"}); err != nil {
		t.Fatalf("default tolerance 6 valid in generate mode: %v", err)
	}
	mustFail(t, "flux_kontext_image", map[string]any{
		"prompt":     "a city",
		"inputImage": "https://example.com/a.png",
	})
	job := mustResolve(t, "flux_kontext_image", map[string]any{
		"prompt":          "a city",
		"inputImage":      "https://example.com/a.png",
		"safetyTolerance": 2,
	})
	if job.Mode != "edit" || job.Body["safetyTolerance"] != 2 {
		t.Fatalf("job = %+v", job)
	}
}

func TestKlingDurationRange(t *testing.T) {
	mustFail(t, "kling_video", map[string]any{"prompt": "a chase", "duration": "2"})
	mustFail(t, "kling_video", map[string]any{"prompt": "a chase", "duration": "16"})
	mustFail(t, "kling_video", map[string]any{"prompt": "a chase", "duration": "abc"})
	for _, d := range []string{"3", "7", "15"} {
		job := mustResolve(t, "kling_video", map[string]any{"prompt": "a chase", "duration": d})
		input := job.Body["input"].(map[string]any)
		if input["duration"] != d {
			t.Fatalf("duration = %v", input["duration"])
		}
		if job.Body["model"] != "kling-3.0/video" {
			t.Fatalf("model = %v", job.Body["model"])
		}
	}
}

func TestKlingMultiShots(t *testing.T) {
	mustFail(t, "kling_video", map[string]any{"prompt": "a film", "multi_shots": true})
	mustFail(t, "kling_video", map[string]any{
		"prompt":       "a film",
		"multi_shots":  true,
		"multi_prompt": []map[string]any{{"prompt": "scene", "duration": 13}},
	})
	job := mustResolve(t, "kling_video", map[string]any{
		"prompt":      "a film",
		"multi_shots": true,
		"multi_prompt": []map[string]any{
			{"prompt": "opening", "duration": 4},
			{"prompt": "finale", "duration": 5},
		},
	})
	if job.Mode != "multi-shot" {
		t.Fatalf("mode = %s", job.Mode)
	}
}

func TestKlingElementsRequireNameAndDescription(t *testing.T) {
	mustFail(t, "kling_video", map[string]any{
		"prompt":         "a scene",
		"kling_elements": []map[string]any{{"name": "Hero"}},
	})
	job := mustResolve(t, "kling_video", map[string]any{
		"prompt": "a scene",
		"kling_elements": []map[string]any{{
			"name":               "Hero",
			"description":        "tall man in a red cape",
			"element_input_urls": []string{"https://example.com/hero.png"},
		}},
	})
	input := job.Body["input"].(map[string]any)
	if _, ok := input["kling_elements"]; !ok {
		t.Fatalf("kling_elements missing from input")
	}
}

func TestHailuoVersionConstraints(t *testing.T) {
	mustFail(t, "hailuo_video", map[string]any{"prompt": "a dance", "resolution": "1080P"})
	mustFail(t, "hailuo_video", map[string]any{"prompt": "a dance", "version": "2.3", "resolution": "512P"})
	mustFail(t, "hailuo_video", map[string]any{
		"prompt": "a dance", "version": "2.3", "duration": "10", "resolution": "1080P",
	})
	job := mustResolve(t, "hailuo_video", map[string]any{
		"prompt":   "a dance",
		"version":  "2.3",
		"quality":  "pro",
		"imageUrl": "https://example.com/a.png",
	})
	if job.Body["model"] != "hailuo/2-3-image-to-video-pro" {
		t.Fatalf("model = %v", job.Body["model"])
	}
	input := job.Body["input"].(map[string]any)
	if _, ok := input["duration"]; ok {
		t.Fatalf("pro quality must not send duration")
	}
}

func TestSoraModes(t *testing.T) {
	story := mustResolve(t, "sora_video", map[string]any{
		"image_urls": []string{"https://example.com/1.png"},
	})
	if story.Mode != "storyboard" || story.Body["model"] != "openai/sora-2-storyboard" {
		t.Fatalf("storyboard job = %+v", story)
	}
	input := story.Body["input"].(map[string]any)
	if input["n_frames"] != "15" {
		t.Fatalf("storyboard default n_frames = %v", input["n_frames"])
	}
	mustFail(t, "sora_video", map[string]any{
		"image_urls": []string{"https://example.com/1.png"},
		"n_frames":   "10",
	})

	pro := mustResolve(t, "sora_video", map[string]any{
		"prompt":     "a parade",
		"image_urls": []string{"https://example.com/1.png"},
		"size":       "high",
	})
	if pro.Body["model"] != "openai/sora-2-pro-image-to-video" {
		t.Fatalf("pro model = %v", pro.Body["model"])
	}
	mustFail(t, "sora_video", map[string]any{})
}

func TestWanModeSpecificParams(t *testing.T) {
	text := mustResolve(t, "wan_video", map[string]any{"prompt": "a river"})
	input := text.Body["input"].(map[string]any)
	if _, ok := input["aspect_ratio"]; !ok {
		t.Fatalf("text mode sends aspect_ratio")
	}
	if _, ok := input["duration"]; ok {
		t.Fatalf("text mode must not send duration")
	}

	img := mustResolve(t, "wan_video", map[string]any{
		"prompt":    "a river",
		"image_url": "https://example.com/a.png",
	})
	iinput := img.Body["input"].(map[string]any)
	if _, ok := iinput["aspect_ratio"]; ok {
		t.Fatalf("image mode must not send aspect_ratio")
	}
	if iinput["duration"] != "5" {
		t.Fatalf("image mode default duration = %v", iinput["duration"])
	}
	mustFail(t, "wan_video", map[string]any{"prompt": strings.Repeat("x", 801)})
}

func TestRunwayAlephRequiresSourceVideo(t *testing.T) {
	mustFail(t, "runway_aleph_video", map[string]any{"prompt": "make it snow"})
	mustFail(t, "runway_aleph_video", map[string]any{
		"prompt": "make it snow", "videoUrl": "https://example.com/in.mp4", "seed": 1000000,
	})
	job := mustResolve(t, "runway_aleph_video", map[string]any{
		"prompt":   "make it snow",
		"videoUrl": "https://example.com/in.mp4",
		"seed":     42,
	})
	if job.Path != "/aleph/generate" || job.Mode != "video-to-video" {
		t.Fatalf("job = %+v", job)
	}
	if job.Body["aspectRatio"] != "16:9" || job.Body["waterMark"] != "" || job.Body["uploadCn"] != false {
		t.Fatalf("defaults missing: %+v", job.Body)
	}
	if job.Body["seed"] != 42 {
		t.Fatalf("seed = %v", job.Body["seed"])
	}
	if _, ok := job.Body["referenceImage"]; ok {
		t.Fatalf("referenceImage must be omitted when unset")
	}
}

func TestRecraftRemoveBackground(t *testing.T) {
	mustFail(t, "recraft_remove_background", map[string]any{})
	mustFail(t, "recraft_remove_background", map[string]any{"image": "not a url"})
	job := mustResolve(t, "recraft_remove_background", map[string]any{
		"image": "https://example.com/portrait.png",
	})
	if job.Body["model"] != "recraft/remove-background" {
		t.Fatalf("model = %v", job.Body["model"])
	}
	input := job.Body["input"].(map[string]any)
	if input["image"] != "https://example.com/portrait.png" {
		t.Fatalf("input = %+v", input)
	}
}

func TestIdeogramReframeDefaults(t *testing.T) {
	mustFail(t, "ideogram_reframe", map[string]any{})
	mustFail(t, "ideogram_reframe", map[string]any{
		"image_url": "https://example.com/a.png", "num_images": "5",
	})
	job := mustResolve(t, "ideogram_reframe", map[string]any{
		"image_url": "https://example.com/a.png",
	})
	if job.Body["model"] != "ideogram/v3-reframe" {
		t.Fatalf("model = %v", job.Body["model"])
	}
	input := job.Body["input"].(map[string]any)
	if input["image_size"] != "square_hd" || input["rendering_speed"] != "BALANCED" ||
		input["style"] != "AUTO" || input["num_images"] != "1" || input["seed"] != 0 {
		t.Fatalf("defaults = %+v", input)
	}
}

func TestCallbackFallsBackWhenRequestOmitsIt(t *testing.T) {
	job := mustResolve(t, "qwen_image", map[string]any{"prompt": "a fox"})
	if job.Body["callBackUrl"] != "https://proxy.kie.test/callback" {
		t.Fatalf("callBackUrl = %v", job.Body["callBackUrl"])
	}
	withCB := mustResolve(t, "qwen_image", map[string]any{
		"prompt":      "a fox",
		"callBackUrl": "https://hooks.example.com/done",
	})
	if withCB.Body["callBackUrl"] != "https://hooks.example.com/done" {
		t.Fatalf("request callback should win, got %v", withCB.Body["callBackUrl"])
	}
}

func TestMalformedArgumentsRejected(t *testing.T) {
	reg := NewRegistry()
	tl, _ := reg.Get("qwen_image")
	if _, err := tl.Resolve(json.RawMessage(`{"prompt": 5}`), testCallbacks); err == nil {
		t.Fatal("type mismatch should fail validation")
	}
	if _, err := tl.Resolve(nil, testCallbacks); err == nil {
		t.Fatal("empty arguments should fail validation (prompt required)")
	}
}
