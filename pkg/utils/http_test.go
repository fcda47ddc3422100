package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOK(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteOK(rr, http.StatusCreated, "created", map[string]string{"code": "abc"}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(http.StatusCreated), body["status"])

	result := body["result"].(map[string]any)
	assert.Equal(t, "created", result["message"])
	assert.Equal(t, "abc", result["data"].(map[string]any)["code"])
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteError(rr, "order not found", http.StatusNotFound))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	result := body["result"].(map[string]any)
	assert.Equal(t, "order not found", result["errorMessage"])
	assert.NotEmpty(t, result["timestamp"])
}

func TestWriteValidationError(t *testing.T) {
	type req struct {
		ItemCode string `json:"item_code" validate:"required"`
		Quantity int    `json:"quantity" validate:"min=1"`
	}

	err := validator.New().Struct(req{})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ItemCode":"required"`)
	assert.Contains(t, rr.Body.String(), `"Quantity":"min"`)
}

func TestDecodeBody_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeBody(r, &v))
}
