package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-soap-gateway/internal/utils"
)

func TestWithLocale(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		cookie         string
		acceptLanguage string
		want           language.Tag
	}{
		{name: "default", target: "/health", want: language.Portuguese},
		{name: "query", target: "/health?lang=en", want: language.English},
		{name: "cookie", target: "/health", cookie: "en", want: language.English},
		{name: "query beats cookie", target: "/health?lang=pt", cookie: "en", want: language.Portuguese},
		{name: "accept language", target: "/health", acceptLanguage: "en-GB,en;q=0.8", want: language.English},
		{name: "cookie beats header", target: "/health", cookie: "pt", acceptLanguage: "en", want: language.Portuguese},
		{name: "unsupported query falls through", target: "/health?lang=xx-invalid-", acceptLanguage: "en", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)

			var got language.Tag
			var ok bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = utils.GetLanguageFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: langCookie, Value: tt.cookie})
			}
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			rr := httptest.NewRecorder()
			h.withLocale(next).ServeHTTP(rr, req)

			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), rr.Header().Get("Content-Language"))
		})
	}
}
