package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

type Claims struct {
	UserID int64         `json:"uid"`
	Role   entities.Role `json:"role"`
	Kind   Kind          `json:"kind"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(cfg config.JWT) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// Issue выпускает пару токенов. У каждого токена свой jti, поэтому
// повторный выпуск в ту же секунду все равно дает новый refresh токен.
func (m *TokenManager) Issue(user entities.User) (entities.TokenPair, error) {
	access, err := m.sign(user, KindAccess, m.accessTTL)
	if err != nil {
		return entities.TokenPair{}, err
	}
	refresh, err := m.sign(user, KindRefresh, m.refreshTTL)
	if err != nil {
		return entities.TokenPair{}, err
	}
	return entities.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		RefreshTTL:   m.refreshTTL,
	}, nil
}

func (m *TokenManager) sign(user entities.User, kind Kind, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return token, nil
}

// Parse проверяет подпись, срок действия и тип токена.
func (m *TokenManager) Parse(token string, kind Kind) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Claims{}, errors.Join(entities.ErrInvalidToken, err)
	}
	if claims.Kind != kind {
		return Claims{}, fmt.Errorf("%w: expected %s token", entities.ErrInvalidToken, kind)
	}
	return claims, nil
}

type claimsKey struct{}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// FromContext возвращает данные пользователя, положенные middleware аутентификации.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(Claims)
	return c, ok
}
