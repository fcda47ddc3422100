package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pair = entities.TokenPair{AccessToken: "access", RefreshToken: "refresh", RefreshTTL: time.Hour}

func TestAuthHandler_Register(t *testing.T) {
	testCases := []struct {
		name         string
		body         map[string]any
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
	}{
		{
			name: "success",
			body: map[string]any{"email": "kim@example.com", "password": "password1", "name": "Kim"},
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, entities.RegisterCmd{
					Email: "kim@example.com", Password: "password1", Name: "Kim",
				}).Return(1, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "email taken",
			body: map[string]any{"email": "kim@example.com", "password": "password1", "name": "Kim"},
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, mock.Anything).Return(0, entities.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "short password",
			body:         map[string]any{"email": "kim@example.com", "password": "123", "name": "Kim"},
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "bad email",
			body:         map[string]any{"email": "kim", "password": "password1", "name": "Kim"},
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
			rr, _ := serve(t, h, http.MethodPost, "/api/auth/join", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets cookies", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Login(mock.Anything, "kim@example.com", "password1").Return(pair, nil).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, resp := serve(t, h, http.MethodPost, "/api/auth/login", map[string]any{
			"email": "kim@example.com", "password": "password1",
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var tokens handler.Tokens
		require.NoError(t, json.Unmarshal(resp.Result.Data, &tokens))
		assert.Equal(t, "access", tokens.AccessToken)

		cookies := map[string]*http.Cookie{}
		for _, c := range rr.Result().Cookies() {
			cookies[c.Name] = c
		}
		require.Contains(t, cookies, handler.AccessCookie)
		require.Contains(t, cookies, handler.RefreshCookie)
		assert.Equal(t, "access", cookies[handler.AccessCookie].Value)
		assert.True(t, cookies[handler.RefreshCookie].HttpOnly)
		assert.Equal(t, 3600, cookies[handler.RefreshCookie].MaxAge)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
			Return(entities.TokenPair{}, entities.ErrInvalidCredentials).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, resp := serve(t, h, http.MethodPost, "/api/auth/login", map[string]any{
			"email": "kim@example.com", "password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid email or password", resp.Result.ErrorMessage)
	})
}

func TestAuthHandler_Reissue(t *testing.T) {
	t.Run("from body", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Reissue(mock.Anything, "old").Return(pair, nil).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, _ := serve(t, h, http.MethodPost, "/api/auth/reissue", map[string]any{"refresh_token": "old"})

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("from cookie", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Reissue(mock.Anything, "old").Return(pair, nil).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		r := chi.NewRouter()
		h.Init(r)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/reissue", nil)
		req.AddCookie(&http.Cookie{Name: handler.RefreshCookie, Value: "old"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), `"refresh_token":"refresh"`))
	})

	t.Run("missing token", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, _ := serve(t, h, http.MethodPost, "/api/auth/reissue", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("revoked", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Reissue(mock.Anything, "old").Return(entities.TokenPair{}, entities.ErrInvalidToken).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, _ := serve(t, h, http.MethodPost, "/api/auth/reissue", map[string]any{"refresh_token": "old"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Logout(mock.Anything, userID).Return(nil).Once()

	h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
	rr, _ := serve(t, h, http.MethodPost, "/api/auth/logout", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	for _, c := range rr.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge, c.Name)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Profile(mock.Anything, userID).Return(entities.User{
			ID: userID, Email: "kim@example.com", Name: "Kim", Role: entities.RoleUser, PasswordHash: "hash",
		}, nil).Once()

		h := handler.NewAuthHandler(discardLogger(), svc, asUser(entities.RoleUser), false)
		rr, resp := serve(t, h, http.MethodGet, "/api/auth/me", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, string(resp.Result.Data), "hash")
		var user handler.User
		require.NoError(t, json.Unmarshal(resp.Result.Data, &user))
		assert.Equal(t, "user", user.Role)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)

		h := handler.NewAuthHandler(discardLogger(), svc, anonymous, false)
		rr, _ := serve(t, h, http.MethodGet, "/api/auth/me", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
