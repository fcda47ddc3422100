package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type CatalogRepo interface {
	FindByCode(ctx context.Context, code string) (entities.Item, error)
	LockByIDs(ctx context.Context, ids []int64) ([]entities.Item, error)
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
	Update(ctx context.Context, item entities.Item) error
	SoftDelete(ctx context.Context, code string) error
	Search(ctx context.Context, f entities.ItemFilter, page entities.PageRequest) ([]entities.Item, int, error)
	RestockByCode(ctx context.Context, code string, quantity int) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type itemService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CatalogRepo
	cache     Cache
	group     singleflight.Group
}

func NewItemService(logger *slog.Logger, txManager trm.Manager, repo CatalogRepo, cache Cache) *itemService {
	return &itemService{
		logger:    logger.With(slog.String("service", "item")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

func (s *itemService) CreateItem(ctx context.Context, cmd entities.CreateItemCmd) (string, error) {
	if !cmd.Category.Valid() || !cmd.Category.HasSubCategory(cmd.SubCategory) {
		return "", entities.ErrInvalidCategory
	}

	item, err := s.repo.Create(ctx, entities.Item{
		Code:          uuid.NewString(),
		Name:          strings.TrimSpace(cmd.Name),
		Description:   cmd.Description,
		Category:      cmd.Category,
		SubCategory:   cmd.SubCategory,
		Gender:        cmd.Gender,
		Size:          cmd.Size,
		Price:         cmd.Price,
		StockQuantity: cmd.StockQuantity,
		Attributes:    cmd.Attributes,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("item created", slog.String("code", item.Code), slog.String("name", item.Name))
	return item.Code, nil
}

// UpdateItem частично обновляет товар. Строка блокируется, чтобы
// не затереть списание остатка параллельным оформлением заказа.
func (s *itemService) UpdateItem(ctx context.Context, code string, cmd entities.UpdateItemCmd) (entities.Item, error) {
	var updated entities.Item
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		locked, err := s.repo.LockByIDs(ctx, []int64{item.ID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return entities.ErrItemNotFound
		}
		item = locked[0]

		if cmd.Name != nil {
			item.Name = strings.TrimSpace(*cmd.Name)
		}
		if cmd.Description != nil {
			item.Description = *cmd.Description
		}
		if cmd.Size != nil {
			item.Size = *cmd.Size
		}
		if cmd.Price != nil {
			item.Price = *cmd.Price
		}
		if cmd.StockQuantity != nil {
			item.StockQuantity = *cmd.StockQuantity
		}
		if cmd.Attributes != nil {
			item.Attributes = cmd.Attributes
		}

		if err := s.repo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return entities.Item{}, err
	}

	s.cache.Delete(code)
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, code string) error {
	if err := s.repo.SoftDelete(ctx, code); err != nil {
		return err
	}
	s.cache.Delete(code)
	s.logger.Info("item deleted", slog.String("code", code))
	return nil
}

// GetItem читает товар через кэш. Одновременные промахи по одному коду
// схлопываются в один запрос к базе.
func (s *itemService) GetItem(ctx context.Context, code string) (entities.Item, error) {
	if data, ok := s.cache.Get(code); ok {
		var item entities.Item
		if err := item.Unmarshal(data); err == nil {
			return item, nil
		}
		s.logger.Warn("broken cache entry", slog.String("code", code))
		s.cache.Delete(code)
	}

	// загрузка общая для всех ждущих, отмена одного клиента не должна ронять остальных
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(code, func() (any, error) {
		item, err := s.repo.FindByCode(loadCtx, code)
		if err != nil {
			return entities.Item{}, err
		}

		data, err := item.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal item", slog.String("code", code), slog.Any("error", err))
			return item, nil
		}
		s.cache.Set(code, data)
		return item, nil
	})
	if err != nil {
		return entities.Item{}, err
	}
	return v.(entities.Item), nil
}

func (s *itemService) SearchItems(ctx context.Context, f entities.ItemFilter, page entities.PageRequest) (entities.Page[entities.Item], error) {
	if f.Category != "" && !f.Category.Valid() {
		return entities.Page[entities.Item]{}, entities.ErrInvalidCategory
	}
	f.Keyword = strings.TrimSpace(f.Keyword)
	page = page.Normalize()

	items, total, err := s.repo.Search(ctx, f, page)
	if err != nil {
		return entities.Page[entities.Item]{}, fmt.Errorf("failed to search items: %w", err)
	}
	return entities.NewPage(page, total, items), nil
}

// Restock добавляет поступление товара на склад.
func (s *itemService) Restock(ctx context.Context, code string, quantity int) error {
	if quantity < 1 {
		return entities.ErrInvalidQuantity
	}
	if err := s.repo.RestockByCode(ctx, code, quantity); err != nil {
		return err
	}
	s.cache.Delete(code)
	s.logger.Debug("item restocked", slog.String("code", code), slog.Int("quantity", quantity))
	return nil
}
