package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey is the context key under which the negotiated locale is stored.
var LocaleKey = localeContextKey{}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Indonesian,
})

// Locale negotiates the response language from the X-Locale header or, when
// absent, from Accept-Language. Unsupported languages fall back to English.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hint := r.Header.Get("X-Locale")
		if hint == "" {
			hint = r.Header.Get("Accept-Language")
		}
		tag, _ := language.MatchStrings(localeMatcher, hint)
		base, _ := tag.Base()
		ctx := context.WithValue(r.Context(), LocaleKey, base.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext returns the negotiated locale, defaulting to English.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return "en"
}
