package http

import (
	"net/http"

	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

// Query parameter and cookie that select the response language explicitly.
const (
	langQueryParam = "lang"
	langCookie     = "lang"
)

func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		explicit := []string{r.URL.Query().Get(langQueryParam)}
		if cookie, err := r.Cookie(langCookie); err == nil {
			explicit = append(explicit, cookie.Value)
		}

		tag := h.translator.Resolve(explicit, r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(utils.WithLanguage(r.Context(), tag)))
	})
}
