package middleware

import (
	"context"
	"net/http"

	"github.com/cardbox/cardbox/internal/utils"
)

type ctxKey int

const localeKey ctxKey = 1

var supportedLocales = []string{"en", "fr"}

// Locale extracts the locale from the lang query param or Accept-Language
// and stores it in the request context. French is the default, matching the
// tool's original audience.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := utils.DetermineLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), supportedLocales, "fr")
		ctx := context.WithValue(r.Context(), localeKey, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext retrieves the locale stored by Locale.
func LocaleFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(localeKey).(string); ok {
		return s
	}
	return "fr"
}
