package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type userRepo struct {
	base
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{base: newBase(db)}
}

func (r *userRepo) Create(ctx context.Context, user entities.User) (entities.User, error) {
	role := user.Role
	if role == "" {
		role = entities.RoleUser
	}

	query, args := r.qb.Insert("users").
		Columns("email", "password_hash", "name", "role").
		Values(strings.ToLower(user.Email), user.PasswordHash, user.Name, role).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		MustSql()

	var created User
	err := r.getContext(ctx, &created, query, args...)
	if isUniqueViolation(err) {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return UserToEntity(created), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.findOne(ctx, sq.Eq{"email": strings.ToLower(email), "deleted_at": nil})
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id, "deleted_at": nil})
}

func (r *userRepo) findOne(ctx context.Context, cond sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).From("users").Where(cond).MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}
