package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

type Middleware = func(http.Handler) http.Handler

type errorMapping struct {
	err  error
	code int
}

// Порядок важен: InsufficientStockError разбирается отдельно, чтобы вернуть
// клиенту позицию и остаток.
var errorStatuses = []errorMapping{
	{entities.ErrItemNotFound, http.StatusNotFound},
	{entities.ErrOrderNotFound, http.StatusNotFound},
	{entities.ErrCartLineNotFound, http.StatusNotFound},
	{entities.ErrUserNotFound, http.StatusNotFound},

	{entities.ErrCartEmpty, http.StatusBadRequest},
	{entities.ErrInvalidQuantity, http.StatusBadRequest},
	{entities.ErrInvalidCategory, http.StatusBadRequest},

	{entities.ErrInsufficientStock, http.StatusConflict},
	{entities.ErrOrderAlreadyCancelled, http.StatusConflict},
	{entities.ErrOrderStatusConflict, http.StatusConflict},
	{entities.ErrItemAlreadyExists, http.StatusConflict},
	{entities.ErrEmailTaken, http.StatusConflict},
	{entities.ErrConcurrentUpdate, http.StatusConflict},

	{entities.ErrInvalidCredentials, http.StatusUnauthorized},
	{entities.ErrInvalidToken, http.StatusUnauthorized},
}

func errorStatus(err error) (int, string) {
	var stockErr *entities.InsufficientStockError
	if errors.As(err, &stockErr) {
		return http.StatusConflict, stockErr.Error()
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

// writeServiceError отвечает клиенту по ошибке сервиса. Внутренние ошибки
// логируются целиком, наружу уходит только общий текст.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, msg string, attrs ...any) {
	code, message := errorStatus(err)
	if code == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), msg, append(attrs, slog.Any("error", err))...)
	}
	utils.WriteError(w, message, code)
}

func currentUser(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return claims, ok
}
