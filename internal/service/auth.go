package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	Create(ctx context.Context, user entities.User) (entities.User, error)
	FindByEmail(ctx context.Context, email string) (entities.User, error)
	FindByID(ctx context.Context, id int64) (entities.User, error)
}

type SessionRepo interface {
	SaveRefresh(ctx context.Context, userID int64, token string, ttl time.Duration) error
	ConsumeRefresh(ctx context.Context, userID int64, token string) error
	DeleteRefresh(ctx context.Context, userID int64) error
}

type TokenManager interface {
	Issue(user entities.User) (entities.TokenPair, error)
	Parse(token string, kind auth.Kind) (auth.Claims, error)
}

type authService struct {
	logger   *slog.Logger
	users    UserRepo
	sessions SessionRepo
	tokens   TokenManager
}

func NewAuthService(logger *slog.Logger, users UserRepo, sessions SessionRepo, tokens TokenManager) *authService {
	return &authService{
		logger:   logger.With(slog.String("service", "auth")),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, cmd entities.RegisterCmd) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, entities.User{
		Email:        strings.TrimSpace(cmd.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(cmd.Name),
		Role:         entities.RoleUser,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("user registered", slog.Int64("user_id", user.ID))
	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (entities.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.TokenPair{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.TokenPair{}, entities.ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Reissue меняет refresh токен на новую пару. Токен списывается атомарно
// вместе с проверкой, так что каждый refresh токен одноразовый.
func (s *authService) Reissue(ctx context.Context, refreshToken string) (entities.TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.KindRefresh)
	if err != nil {
		return entities.TokenPair{}, err
	}

	if err := s.sessions.ConsumeRefresh(ctx, claims.UserID, refreshToken); err != nil {
		return entities.TokenPair{}, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.TokenPair{}, entities.ErrInvalidToken
	}
	if err != nil {
		return entities.TokenPair{}, err
	}

	return s.issue(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID int64) error {
	return s.sessions.DeleteRefresh(ctx, userID)
}

func (s *authService) Profile(ctx context.Context, userID int64) (entities.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *authService) issue(ctx context.Context, user entities.User) (entities.TokenPair, error) {
	pair, err := s.tokens.Issue(user)
	if err != nil {
		return entities.TokenPair{}, err
	}
	if err := s.sessions.SaveRefresh(ctx, user.ID, pair.RefreshToken, pair.RefreshTTL); err != nil {
		return entities.TokenPair{}, err
	}
	return pair, nil
}
