package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tm, pair := newTokens(t)

	testCases := []struct {
		name      string
		target    string
		token     string
		wantLevel string
		wantRoute string
		wantUser  float64
	}{
		{
			name:      "authenticated request",
			target:    "/orders/abc",
			token:     pair.AccessToken,
			wantLevel: "INFO",
			wantRoute: "/orders/{code}",
			wantUser:  42,
		},
		{
			name:      "rejected request",
			target:    "/orders/abc",
			wantLevel: "WARN",
			wantRoute: "/orders/{code}",
		},
		{
			name:      "handler failure",
			target:    "/boom",
			wantLevel: "ERROR",
			wantRoute: "/boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(middleware.Logger(logger))
			r.With(middleware.Authenticate(tm)).Get("/orders/{code}", echoUser)
			r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, tc.wantRoute, entry["route"])
			if tc.wantUser == 0 {
				assert.NotContains(t, entry, "user_id")
				return
			}
			assert.Equal(t, tc.wantUser, entry["user_id"])
		})
	}
}
