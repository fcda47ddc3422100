package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/shop-order-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemService(t *testing.T, repo *mocks.MockCatalogRepo, cache *mocks.MockCache) interface {
	CreateItem(ctx context.Context, cmd entities.CreateItemCmd) (string, error)
	UpdateItem(ctx context.Context, code string, cmd entities.UpdateItemCmd) (entities.Item, error)
	DeleteItem(ctx context.Context, code string) error
	GetItem(ctx context.Context, code string) (entities.Item, error)
	SearchItems(ctx context.Context, f entities.ItemFilter, page entities.PageRequest) (entities.Page[entities.Item], error)
	Restock(ctx context.Context, code string, quantity int) error
} {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewItemService(logger, tx, repo, cache)
}

func TestItemService_CreateItem(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCatalogRepo)

	valid := entities.CreateItemCmd{
		Name:          " T-Shirt ",
		Category:      entities.CategoryTop,
		SubCategory:   "shirts",
		Gender:        entities.GenderUnisex,
		Price:         10000,
		StockQuantity: 5,
	}

	testCases := []struct {
		name         string
		cmd          entities.CreateItemCmd
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			cmd:  valid,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(i entities.Item) bool {
					return i.Name == "T-Shirt" && i.Code != "" && i.StockQuantity == 5
				})).RunAndReturn(func(_ context.Context, i entities.Item) (entities.Item, error) {
					i.ID = 1
					return i, nil
				}).Once()
			},
		},
		{
			name: "duplicate name",
			cmd:  valid,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().Create(mock.Anything, mock.Anything).Return(entities.Item{}, entities.ErrItemAlreadyExists).Once()
			},
			wantErr: entities.ErrItemAlreadyExists,
		},
		{
			name: "unknown category",
			cmd: entities.CreateItemCmd{
				Name: "Hat", Category: "hats", SubCategory: "cap",
			},
			mockBehavior: func(*mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidCategory,
		},
		{
			name: "sub category of another category",
			cmd: entities.CreateItemCmd{
				Name: "Jeans", Category: entities.CategoryShoes, SubCategory: "denim",
			},
			mockBehavior: func(*mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo)

			code, err := newItemService(t, repo, cache).CreateItem(context.Background(), tc.cmd)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, code)
		})
	}
}

func TestItemService_UpdateItem(t *testing.T) {
	item := entities.Item{ID: tshirtID, Code: tshirt, Name: "T-Shirt", Price: 10000, StockQuantity: 5}
	price := int64(12000)
	stock := 7

	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		repo.EXPECT().FindByCode(mock.Anything, tshirt).Return(item, nil).Once()
		repo.EXPECT().LockByIDs(mock.Anything, []int64{tshirtID}).Return([]entities.Item{item}, nil).Once()
		repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(i entities.Item) bool {
			return i.Price == 12000 && i.StockQuantity == 7 && i.Name == "T-Shirt"
		})).Return(nil).Once()
		cache.EXPECT().Delete(tshirt).Return().Once()

		got, err := newItemService(t, repo, cache).UpdateItem(context.Background(), tshirt, entities.UpdateItemCmd{
			Price:         &price,
			StockQuantity: &stock,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12000), got.Price)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		repo.EXPECT().FindByCode(mock.Anything, tshirt).Return(entities.Item{}, entities.ErrItemNotFound).Once()

		_, err := newItemService(t, repo, cache).UpdateItem(context.Background(), tshirt, entities.UpdateItemCmd{Price: &price})
		assert.ErrorIs(t, err, entities.ErrItemNotFound)
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)

	repo.EXPECT().SoftDelete(mock.Anything, tshirt).Return(nil).Once()
	cache.EXPECT().Delete(tshirt).Return().Once()

	assert.NoError(t, newItemService(t, repo, cache).DeleteItem(context.Background(), tshirt))
}

func TestItemService_GetItem(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache)

	item := entities.Item{ID: tshirtID, Code: tshirt, Name: "T-Shirt", Price: 10000}
	data, err := item.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(_ *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(tshirt).Return(data, true).Once()
			},
		},
		{
			name: "from repo and set to cache",
			mockBehavior: func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(tshirt).Return(nil, false).Once()
				repo.EXPECT().FindByCode(mock.Anything, tshirt).Return(item, nil).Once()
				cache.EXPECT().Set(tshirt, data).Return().Once()
			},
		},
		{
			name: "broken cache entry is dropped",
			mockBehavior: func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(tshirt).Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete(tshirt).Return().Once()
				repo.EXPECT().FindByCode(mock.Anything, tshirt).Return(item, nil).Once()
				cache.EXPECT().Set(tshirt, data).Return().Once()
			},
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(tshirt).Return(nil, false).Once()
				repo.EXPECT().FindByCode(mock.Anything, tshirt).Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			got, err := newItemService(t, repo, cache).GetItem(context.Background(), tshirt)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, item.Name, got.Name)
			assert.Equal(t, item.Price, got.Price)
		})
	}
}

func TestItemService_GetItem_ConcurrentMisses(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	item := entities.Item{ID: tshirtID, Code: tshirt, Name: "T-Shirt"}

	release := make(chan struct{})
	cache.EXPECT().Get(tshirt).Return(nil, false)
	cache.EXPECT().Set(tshirt, mock.Anything).Return()
	repo.EXPECT().FindByCode(mock.Anything, tshirt).
		RunAndReturn(func(context.Context, string) (entities.Item, error) {
			<-release
			return item, nil
		})

	svc := newItemService(t, repo, cache)

	const callers = 8
	var wg sync.WaitGroup
	started := make(chan struct{}, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			got, err := svc.GetItem(context.Background(), tshirt)
			assert.NoError(t, err)
			assert.Equal(t, "T-Shirt", got.Name)
		}()
	}
	for range callers {
		<-started
	}
	close(release)
	wg.Wait()

	// singleflight не гарантирует одну загрузку, если горутина опоздала к вызову
	assert.LessOrEqual(t, len(repo.Calls), callers)
}

func TestItemService_GetItem_CancelledCallerDoesNotFailOthers(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	item := entities.Item{ID: tshirtID, Code: tshirt, Name: "T-Shirt"}

	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	cache.EXPECT().Get(tshirt).Return(nil, false)
	cache.EXPECT().Set(tshirt, mock.Anything).Return()
	repo.EXPECT().FindByCode(mock.Anything, tshirt).
		RunAndReturn(func(ctx context.Context, _ string) (entities.Item, error) {
			entered <- struct{}{}
			<-release
			if err := ctx.Err(); err != nil {
				return entities.Item{}, err
			}
			return item, nil
		})

	svc := newItemService(t, repo, cache)

	ctxA, cancelA := context.WithCancel(context.Background())
	errs := make(chan error, 2)
	go func() {
		_, err := svc.GetItem(ctxA, tshirt)
		errs <- err
	}()
	<-entered

	go func() {
		got, err := svc.GetItem(context.Background(), tshirt)
		if err == nil && got.Name != "T-Shirt" {
			err = errors.New("unexpected item " + got.Name)
		}
		errs <- err
	}()

	cancelA()
	close(release)

	for range 2 {
		assert.NoError(t, <-errs)
	}
}

func TestItemService_SearchItems(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)
		items := []entities.Item{{ID: 1, SalesCount: 10}, {ID: 2, SalesCount: 3}}

		filter := entities.ItemFilter{Category: entities.CategoryTop, Keyword: "shirt"}
		repo.EXPECT().Search(mock.Anything, filter, entities.PageRequest{PageNo: 2, PageSize: 100}).Return(items, 102, nil).Once()

		page, err := newItemService(t, repo, cache).SearchItems(context.Background(),
			entities.ItemFilter{Category: entities.CategoryTop, Keyword: "  shirt "},
			entities.PageRequest{PageNo: 2, PageSize: 500},
		)
		require.NoError(t, err)
		assert.Equal(t, items, page.Items)
		assert.Equal(t, 2, page.TotalPages())
	})

	t.Run("invalid category", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		_, err := newItemService(t, repo, cache).SearchItems(context.Background(),
			entities.ItemFilter{Category: "hats"}, entities.PageRequest{})
		assert.ErrorIs(t, err, entities.ErrInvalidCategory)
	})
}

func TestItemService_Restock(t *testing.T) {
	testCases := []struct {
		name         string
		quantity     int
		mockBehavior func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:     "OK",
			quantity: 5,
			mockBehavior: func(repo *mocks.MockCatalogRepo, cache *mocks.MockCache) {
				repo.EXPECT().RestockByCode(mock.Anything, tshirt, 5).Return(nil).Once()
				cache.EXPECT().Delete(tshirt).Return().Once()
			},
		},
		{
			name:         "non positive quantity",
			quantity:     0,
			mockBehavior: func(*mocks.MockCatalogRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:     "unknown item",
			quantity: 1,
			mockBehavior: func(repo *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().RestockByCode(mock.Anything, tshirt, 1).Return(entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name:     "db error",
			quantity: 1,
			mockBehavior: func(repo *mocks.MockCatalogRepo, _ *mocks.MockCache) {
				repo.EXPECT().RestockByCode(mock.Anything, tshirt, 1).Return(errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			err := newItemService(t, repo, cache).Restock(context.Background(), tshirt, tc.quantity)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
