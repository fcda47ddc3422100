package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

// FindReadyByUser возвращает открытую корзину пользователя.
// lock=true берет блокировку строки заказа до конца транзакции.
func (r *orderRepo) FindReadyByUser(ctx context.Context, userID int64, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID, "status": entities.StatusReady, "deleted_at": nil})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	return r.findOne(ctx, q)
}

// CreateReady создает корзину, если ее еще нет. При гонке двух запросов
// вторая вставка упирается в частичный уникальный индекс и ничего не делает,
// после чего оба читают одну и ту же строку.
func (r *orderRepo) CreateReady(ctx context.Context, userID int64) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("code", "user_id", "status").
		Values(uuid.NewString(), userID, entities.StatusReady).
		Suffix("ON CONFLICT (user_id) WHERE status = 'ready' AND deleted_at IS NULL DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return r.FindReadyByUser(ctx, userID, true)
}

func (r *orderRepo) FindByCode(ctx context.Context, code string, lock bool) (entities.Order, error) {
	if !validCode(code) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"code": code, "deleted_at": nil})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	return r.findOne(ctx, q)
}

func (r *orderRepo) findOne(ctx context.Context, q sq.SelectBuilder) (entities.Order, error) {
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

// ListByUser возвращает историю заказов без открытой корзины.
func (r *orderRepo) ListByUser(ctx context.Context, userID int64, status entities.OrderStatus, page entities.PageRequest) ([]entities.Order, int, error) {
	cond := sq.And{
		sq.Eq{"user_id": userID, "deleted_at": nil},
		sq.NotEq{"status": entities.StatusReady},
	}
	if status != "" && status != entities.StatusWhole {
		cond = append(cond, sq.Eq{"status": status})
	}

	query, args := r.qb.Select("COUNT(*)").From("orders").Where(cond).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	query, args = r.qb.Select(orderColumns...).
		From("orders").
		Where(cond).
		OrderBy("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, total, nil
}

func (r *orderRepo) AddLine(ctx context.Context, line entities.OrderLine) (entities.OrderLine, error) {
	if line.Code == "" {
		line.Code = uuid.NewString()
	}

	query, args := r.qb.Insert("order_lines").
		Columns("code", "order_id", "item_id", "quantity", "price", "size").
		Values(line.Code, line.OrderID, line.ItemID, line.Quantity, line.Price, line.Size).
		Suffix("RETURNING id, created_at").
		MustSql()

	var row struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.OrderLine{}, fmt.Errorf("failed to add order line: %w", err)
	}
	line.ID = row.ID
	line.CreatedAt = row.CreatedAt
	return line, nil
}

// ListLines возвращает живые позиции заказа вместе с кодом и названием товара.
// Товар мог быть удален из каталога после оформления, поэтому join без фильтра по deleted_at.
func (r *orderRepo) ListLines(ctx context.Context, orderID int64) ([]entities.OrderLine, error) {
	query, args := r.qb.Select(orderLineColumns...).
		From("order_lines ol").
		Join("items i ON i.id = ol.item_id").
		Where(sq.Eq{"ol.order_id": orderID, "ol.deleted_at": nil}).
		OrderBy("ol.id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list order lines: %w", err)
	}

	result := make([]entities.OrderLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, OrderLineToEntity(l))
	}
	return result, nil
}

func (r *orderRepo) SoftDeleteLine(ctx context.Context, lineID int64) error {
	query, args := r.qb.Update("order_lines").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": lineID, "deleted_at": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order line: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order line: %w", err)
	}
	if n == 0 {
		return entities.ErrCartLineNotFound
	}
	return nil
}

func (r *orderRepo) SoftDeleteLines(ctx context.Context, orderID int64) error {
	query, args := r.qb.Update("order_lines").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"order_id": orderID, "deleted_at": nil}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order lines: %w", err)
	}
	return nil
}

// SnapshotLinePrices фиксирует в позициях текущие цены товаров, чтобы
// детали заказа не зависели от последующих изменений каталога.
func (r *orderRepo) SnapshotLinePrices(ctx context.Context, orderID int64) error {
	const query = `UPDATE order_lines ol
		SET price = i.price
		FROM items i
		WHERE i.id = ol.item_id AND ol.order_id = $1 AND ol.deleted_at IS NULL`

	if _, err := r.execContext(ctx, query, orderID); err != nil {
		return fmt.Errorf("failed to snapshot line prices: %w", err)
	}
	return nil
}

// Complete переводит корзину в DONE. Апдейт условный: если заказ уже
// не в READY, возвращается ErrOrderStatusConflict.
func (r *orderRepo) Complete(ctx context.Context, orderID int64, total int64, addr entities.Address) error {
	address, err := jsonString(addr)
	if err != nil {
		return fmt.Errorf("failed to marshal address: %w", err)
	}

	query, args := r.qb.Update("orders").
		Set("status", entities.StatusDone).
		Set("total_price", total).
		Set("address", address).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID, "status": entities.StatusReady, "deleted_at": nil}).
		MustSql()

	return r.expectOne(ctx, "complete order", query, args)
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID int64, from, to entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", to).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID, "status": from, "deleted_at": nil}).
		MustSql()

	return r.expectOne(ctx, "update order status", query, args)
}

func (r *orderRepo) expectOne(ctx context.Context, op, query string, args []any) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return entities.ErrOrderStatusConflict
	}
	return nil
}
