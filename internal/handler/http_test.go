package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	userID    = int64(7)
	orderCode = "3f1c6a8e-2b7d-4c1e-9a55-0d6f1b2c3d4e"
	lineCode  = "9b2e4f60-7c1a-4d3b-8e2f-5a6b7c8d9e0f"
	itemCode  = "c4a1f2e3-5b6d-4e7f-8a9b-0c1d2e3f4a5b"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser подменяет аутентификацию: кладет в контекст заранее известные claims.
func asUser(role entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithClaims(r.Context(), auth.Claims{UserID: userID, Role: role, Kind: auth.KindAccess})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// anonymous пропускает запрос без claims.
func anonymous(next http.Handler) http.Handler { return next }

type router interface {
	Init(r chi.Router)
}

type response struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Result  struct {
		Message      string            `json:"message"`
		Data         json.RawMessage   `json:"data"`
		ErrorMessage string            `json:"errorMessage"`
		Fields       map[string]string `json:"fields"`
	} `json:"result"`
}

func serve(t *testing.T, h router, method, target string, body any) (*httptest.ResponseRecorder, response) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	r := chi.NewRouter()
	h.Init(r)

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}
