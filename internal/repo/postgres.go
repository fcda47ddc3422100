package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

// base содержит общее для всех postgres репозиториев: подключение,
// построитель запросов и выбор между транзакцией и пулом.
type base struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newBase(db *sqlx.DB) base {
	return base{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r base) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	return res, translateError(err)
}

func (r base) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return translateError(trm.Conn(ctx, r.db).GetContext(ctx, dest, query, args...))
}

func (r base) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return translateError(trm.Conn(ctx, r.db).SelectContext(ctx, dest, query, args...))
}

// translateError переводит ошибки сериализации и дедлоки в ErrConcurrentUpdate,
// чтобы сервис мог повторить транзакцию целиком.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqSerializationFailure, pqDeadlockDetected:
			return errors.Join(entities.ErrConcurrentUpdate, err)
		}
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
