// Package tools normalizes raw tool invocations into concrete submissions.
// Each tool parses its argument object, detects the structural mode from
// which parameters are present, validates the mode-dependent constraints,
// applies documented defaults, and resolves to exactly one job: a model,
// a submission path, and the body that endpoint expects.
package tools

import (
	"encoding/json"
	"sort"

	"kiegw/internal/kie"
	"kiegw/internal/validate"
)

// Tool is one externally invocable generation operation.
type Tool struct {
	Name string
	// Guidance is the static per-field remediation table returned alongside
	// validation failures.
	Guidance map[string]string
	Resolve  func(raw json.RawMessage, cb kie.Callbacks) (*kie.Job, error)
}

// Registry holds every registered tool keyed by its external name.
type Registry struct {
	tools map[string]*Tool
}

// NewRegistry builds the registry with the full tool surface.
func NewRegistry() *Registry {
	r := &Registry{tools: map[string]*Tool{}}
	for _, t := range []*Tool{
		nanoBananaImage(),
		veo3GenerateVideo(),
		sunoGenerateMusic(),
		elevenLabsTTS(),
		elevenLabsSoundEffects(),
		seedanceVideo(),
		seedreamImage(),
		qwenImage(),
		midjourneyGenerate(),
		openAI4oImage(),
		fluxKontextImage(),
		klingVideo(),
		hailuoVideo(),
		soraVideo(),
		wanVideo(),
		runwayAlephVideo(),
		recraftRemoveBackground(),
		ideogramReframe(),
	} {
		r.tools[t.Name] = t
	}
	return r
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names lists every registered tool in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var v validate.Violations
		v.Add("", "malformed argument object: %v", err)
		return &v
	}
	return nil
}

func str(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func boolean(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func integer(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func number(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}
