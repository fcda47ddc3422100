package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	AccessCookie  = "token"
	RefreshCookie = "refresh_token"
)

type AuthService interface {
	Register(ctx context.Context, cmd entities.RegisterCmd) (int64, error)
	Login(ctx context.Context, email, password string) (entities.TokenPair, error)
	Reissue(ctx context.Context, refreshToken string) (entities.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
	Profile(ctx context.Context, userID int64) (entities.User, error)
}

type AuthHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          AuthService
	authenticate Middleware
	secure       bool
}

// NewAuthHandler создает обработчик аутентификации. secure включает флаг
// Secure у cookie, в разработке он выключен.
func NewAuthHandler(logger *slog.Logger, svc AuthService, authenticate Middleware, secure bool) *AuthHandler {
	return &AuthHandler{
		logger:       logger.With(slog.String("handler", "auth")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
		secure:       secure,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/join", h.Register)
		r.Post("/login", h.Login)
		r.Post("/reissue", h.Reissue)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Profile)
		})
	})
}

// Register регистрирует покупателя.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Данные пользователя"
// @Success      201      {object}  utils.Response{result=utils.Success{data=int}}
// @Failure      409      {object}  utils.Response{result=utils.Failure} "Email занят"
// @Router       /api/auth/join [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	id, err := h.svc.Register(r.Context(), entities.RegisterCmd{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to register user")
		return
	}
	utils.WriteOK(w, http.StatusCreated, "user registered", id)
}

// Login выдает пару токенов.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Email и пароль"
// @Success      200      {object}  utils.Response{result=utils.Success{data=Tokens}}
// @Failure      401      {object}  utils.Response{result=utils.Failure} "Неверные данные"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	pair, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to login")
		return
	}

	h.setTokenCookies(w, pair)
	utils.WriteOK(w, http.StatusOK, "logged in", Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Reissue обменивает refresh токен на новую пару.
// @Summary      Обновить токены
// @Description  Refresh токен берется из тела запроса или из cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ReissueRequest  false  "Refresh токен"
// @Success      200      {object}  utils.Response{result=utils.Success{data=Tokens}}
// @Failure      401      {object}  utils.Response{result=utils.Failure} "Токен недействителен"
// @Router       /api/auth/reissue [post]
func (h *AuthHandler) Reissue(w http.ResponseWriter, r *http.Request) {
	var req ReissueRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if req.RefreshToken == "" {
		if c, err := r.Cookie(RefreshCookie); err == nil {
			req.RefreshToken = c.Value
		}
	}
	if req.RefreshToken == "" {
		utils.WriteError(w, entities.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	pair, err := h.svc.Reissue(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to reissue tokens")
		return
	}

	h.setTokenCookies(w, pair)
	utils.WriteOK(w, http.StatusOK, "tokens reissued", Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout отзывает refresh токен.
// @Summary      Выход
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  utils.Response{result=utils.Success}
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), user.UserID); err != nil {
		writeServiceError(h.logger, w, r, err, "failed to logout", slog.Int64("user_id", user.UserID))
		return
	}

	h.clearTokenCookies(w)
	utils.WriteOK(w, http.StatusOK, "logged out", nil)
}

// Profile возвращает текущего пользователя.
// @Summary      Профиль
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  utils.Response{result=utils.Success{data=User}}
// @Router       /api/auth/me [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.svc.Profile(r.Context(), claims.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		// пользователь удален, а токен еще жив
		utils.WriteError(w, entities.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to get profile", slog.Int64("user_id", claims.UserID))
		return
	}

	utils.WriteOK(w, http.StatusOK, "profile", User{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}

func (h *AuthHandler) setTokenCookies(w http.ResponseWriter, pair entities.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    pair.RefreshToken,
		Path:     "/api/auth",
		MaxAge:   int(pair.RefreshTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: AccessCookie, Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: RefreshCookie, Path: "/api/auth", MaxAge: -1})
}
