package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Response - общий конверт всех ответов API
// swagger:model Response
type Response struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Result  any  `json:"result"`
}

// Success - результат успешного запроса
// swagger:model Success
type Success struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Failure - результат неуспешного запроса
// swagger:model Failure
type Failure struct {
	Timestamp    time.Time         `json:"timestamp"`
	ErrorMessage string            `json:"errorMessage"`
	Fields       map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func WriteOK(w http.ResponseWriter, code int, message string, data any) error {
	return WriteJSON(w, Response{
		Success: true,
		Status:  code,
		Result:  Success{Message: message, Data: data},
	}, code)
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, Response{
		Success: false,
		Status:  code,
		Result:  Failure{Timestamp: time.Now(), ErrorMessage: message},
	}, code)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := Failure{
		Timestamp:    time.Now(),
		ErrorMessage: "invalid request",
		Fields:       make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			field := err.Field()
			res.Fields[field] = err.Tag()
		}
	}

	return WriteJSON(w, Response{
		Success: false,
		Status:  http.StatusBadRequest,
		Result:  res,
	}, http.StatusBadRequest)
}
