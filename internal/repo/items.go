package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type itemRepo struct {
	base
}

func NewItemRepo(db *sqlx.DB) *itemRepo {
	return &itemRepo{base: newBase(db)}
}

func (r *itemRepo) FindByCode(ctx context.Context, code string) (entities.Item, error) {
	if !validCode(code) {
		return entities.Item{}, entities.ErrItemNotFound
	}

	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"code": code, "deleted_at": nil}).
		MustSql()

	var item Item
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Item{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return ItemToEntity(item), nil
}

// LockByIDs блокирует строки товаров до конца транзакции. Блокировки берутся
// по возрастанию id, чтобы встречные оформления не ловили дедлок.
func (r *itemRepo) LockByIDs(ctx context.Context, ids []int64) ([]entities.Item, error) {
	if len(ids) == 0 {
		return []entities.Item{}, nil
	}

	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": ids, "deleted_at": nil}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock items: %w", err)
	}

	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

// ApplyStockDelta применяет изменение остатка условным апдейтом: если остаток
// ушел бы в минус, строка не обновляется и возвращается ErrInsufficientStock.
func (r *itemRepo) ApplyStockDelta(ctx context.Context, d entities.StockDelta) error {
	query, args := r.qb.Update("items").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", d.Stock)).
		Set("sales_count", sq.Expr("sales_count + ?", d.Sales)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ItemID}).
		Where(sq.Expr("stock_quantity + ? >= 0", d.Stock)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to apply stock delta: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to apply stock delta: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", d.ItemID, entities.ErrInsufficientStock)
	}
	return nil
}

func (r *itemRepo) RestockByCode(ctx context.Context, code string, quantity int) error {
	if !validCode(code) {
		return entities.ErrItemNotFound
	}

	query, args := r.qb.Update("items").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"code": code, "deleted_at": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restock item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to restock item: %w", err)
	}
	if n == 0 {
		return entities.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	attrs, err := attributesJSON(item.Attributes)
	if err != nil {
		return entities.Item{}, fmt.Errorf("failed to marshal attributes: %w", err)
	}

	query, args := r.qb.Insert("items").
		Columns("code", "name", "description", "category", "sub_category", "gender",
			"size", "price", "stock_quantity", "sales_count", "attributes").
		Values(item.Code, item.Name, item.Description, item.Category, item.SubCategory, item.Gender,
			item.Size, item.Price, item.StockQuantity, 0, attrs).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		MustSql()

	var created Item
	err = r.getContext(ctx, &created, query, args...)
	if isUniqueViolation(err) {
		return entities.Item{}, entities.ErrItemAlreadyExists
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("failed to create item: %w", err)
	}
	return ItemToEntity(created), nil
}

func (r *itemRepo) Update(ctx context.Context, item entities.Item) error {
	attrs, err := attributesJSON(item.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	query, args := r.qb.Update("items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("size", item.Size).
		Set("price", item.Price).
		Set("stock_quantity", item.StockQuantity).
		Set("attributes", attrs).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": item.ID, "deleted_at": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrItemAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n == 0 {
		return entities.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) SoftDelete(ctx context.Context, code string) error {
	if !validCode(code) {
		return entities.ErrItemNotFound
	}

	query, args := r.qb.Update("items").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"code": code, "deleted_at": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n == 0 {
		return entities.ErrItemNotFound
	}
	return nil
}

func (r *itemRepo) Search(ctx context.Context, f entities.ItemFilter, page entities.PageRequest) ([]entities.Item, int, error) {
	cond := itemFilter(f)

	query, args := r.qb.Select("COUNT(*)").From("items").Where(cond).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}
	if total == 0 {
		return []entities.Item{}, 0, nil
	}

	query, args = r.qb.Select(itemColumns...).
		From("items").
		Where(cond).
		OrderBy("sales_count DESC", "id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search items: %w", err)
	}

	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, total, nil
}

func itemFilter(f entities.ItemFilter) sq.And {
	cond := sq.And{sq.Eq{"deleted_at": nil}}
	if f.Category != "" {
		cond = append(cond, sq.Eq{"category": f.Category})
	}
	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		cond = append(cond, sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}})
	}
	if f.Gender != "" {
		cond = append(cond, sq.Eq{"gender": f.Gender})
	}
	if f.MinPrice > 0 {
		cond = append(cond, sq.GtOrEq{"price": f.MinPrice})
	}
	if f.MaxPrice > 0 {
		cond = append(cond, sq.LtOrEq{"price": f.MaxPrice})
	}
	if f.Size != "" {
		cond = append(cond, sq.Eq{"size": f.Size})
	}
	return cond
}

func validCode(code string) bool {
	return uuid.Validate(code) == nil
}

func attributesJSON(attrs map[string]string) (string, error) {
	if attrs == nil {
		return "{}", nil
	}
	return jsonString(attrs)
}
