// Package validate provides the building blocks for tool request
// validation. Checks accumulate into a Violations value so a caller sees
// every broken constraint at once instead of only the first.
package validate

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"
)

// FieldError names one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Violations collects every constraint a request breaks.
type Violations struct {
	Fields []FieldError
}

// Add records a violation against a field. An empty field name marks a
// cross-field (mode) violation.
func (v *Violations) Add(field, format string, args ...any) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no violations were recorded.
func (v *Violations) Empty() bool { return len(v.Fields) == 0 }

// Err returns the collected violations as an error, or nil when clean.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *Violations) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.String())
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// StringLen enforces length bounds counted in Unicode code points.
func (v *Violations) StringLen(field, s string, min, max int) {
	n := utf8.RuneCountInString(s)
	if n < min {
		v.Add(field, "must be at least %d characters, got %d", min, n)
	}
	if max > 0 && n > max {
		v.Add(field, "must be at most %d characters, got %d", max, n)
	}
}

// URL requires a syntactically valid absolute URL.
func (v *Violations) URL(field, raw string) {
	if !validURL(raw) {
		v.Add(field, "must be a valid URL")
	}
}

// URLList enforces element-count bounds and per-element URL validity.
func (v *Violations) URLList(field string, urls []string, min, max int) {
	if len(urls) < min {
		v.Add(field, "must contain at least %d URL(s), got %d", min, len(urls))
	}
	if max > 0 && len(urls) > max {
		v.Add(field, "must contain at most %d URL(s), got %d", max, len(urls))
	}
	for i, u := range urls {
		if !validURL(u) {
			v.Add(fmt.Sprintf("%s[%d]", field, i), "must be a valid URL")
		}
	}
}

// Enum requires the value to be one of the allowed spellings.
func (v *Violations) Enum(field, val string, allowed ...string) {
	for _, a := range allowed {
		if val == a {
			return
		}
	}
	v.Add(field, "must be one of [%s], got %q", strings.Join(allowed, ", "), val)
}

// IntRange enforces an inclusive integer range.
func (v *Violations) IntRange(field string, n, min, max int) {
	if n < min || n > max {
		v.Add(field, "must be between %d and %d, got %d", min, max, n)
	}
}

// FloatRange enforces an inclusive numeric range.
func (v *Violations) FloatRange(field string, x, min, max float64) {
	if x < min || x > max {
		v.Add(field, "must be between %v and %v, got %v", min, max, x)
	}
}

// Step rejects values that do not land on the step grid (e.g. 0.015 for a
// 0.01 step). Comparison tolerates float representation error.
func (v *Violations) Step(field string, x, step float64) {
	if step <= 0 {
		return
	}
	r := x / step
	if math.Abs(r-math.Round(r)) > 1e-6 {
		v.Add(field, "must be a multiple of %v, got %v", step, x)
	}
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
