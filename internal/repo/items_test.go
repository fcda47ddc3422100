package repo_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepo(t *testing.T) {
	db := setupTestDB(t)
	items := repo.NewItemRepo(db)
	ctx := context.Background()

	tshirt := createItem(t, db, "T-Shirt", 15000, 1)
	jeans := createItem(t, db, "Jeans", 30000, 5)

	t.Run("find by code", func(t *testing.T) {
		got, err := items.FindByCode(ctx, tshirt.Code)
		require.NoError(t, err)
		assert.Equal(t, tshirt.ID, got.ID)
		assert.Equal(t, "T-Shirt", got.Name)
		assert.Equal(t, 1, got.StockQuantity)
		assert.Empty(t, got.Attributes)
	})

	t.Run("unknown and malformed codes", func(t *testing.T) {
		_, err := items.FindByCode(ctx, uuid.NewString())
		assert.ErrorIs(t, err, entities.ErrItemNotFound)

		_, err = items.FindByCode(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, entities.ErrItemNotFound)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := items.Create(ctx, entities.Item{
			Code: uuid.NewString(), Name: "T-Shirt", Category: entities.CategoryTop,
			SubCategory: "shirts", Gender: entities.GenderMan,
		})
		assert.ErrorIs(t, err, entities.ErrItemAlreadyExists)
	})

	t.Run("lock returns items ordered by id", func(t *testing.T) {
		locked, err := items.LockByIDs(ctx, []int64{jeans.ID, tshirt.ID})
		require.NoError(t, err)
		require.Len(t, locked, 2)
		assert.Less(t, locked[0].ID, locked[1].ID)
	})

	t.Run("stock delta never goes negative", func(t *testing.T) {
		err := items.ApplyStockDelta(ctx, entities.StockDelta{ItemID: jeans.ID, Stock: -6, Sales: 6})
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)

		require.NoError(t, items.ApplyStockDelta(ctx, entities.StockDelta{ItemID: jeans.ID, Stock: -5, Sales: 5}))

		got, err := items.FindByCode(ctx, jeans.Code)
		require.NoError(t, err)
		assert.Equal(t, 0, got.StockQuantity)
		assert.Equal(t, 5, got.SalesCount)

		require.NoError(t, items.ApplyStockDelta(ctx, entities.StockDelta{ItemID: jeans.ID, Stock: 5}))
	})

	t.Run("restock", func(t *testing.T) {
		require.NoError(t, items.RestockByCode(ctx, tshirt.Code, 4))

		got, err := items.FindByCode(ctx, tshirt.Code)
		require.NoError(t, err)
		assert.Equal(t, 5, got.StockQuantity)

		assert.ErrorIs(t, items.RestockByCode(ctx, uuid.NewString(), 1), entities.ErrItemNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := items.FindByCode(ctx, tshirt.Code)
		require.NoError(t, err)
		got.Price = 12000
		got.Attributes = map[string]string{"color": "white"}
		require.NoError(t, items.Update(ctx, got))

		got, err = items.FindByCode(ctx, tshirt.Code)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), got.Price)
		assert.Equal(t, "white", got.Attributes["color"])
	})

	t.Run("search orders by sales", func(t *testing.T) {
		page, total, err := items.Search(ctx, entities.ItemFilter{Category: entities.CategoryTop},
			entities.PageRequest{PageNo: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 2)
		assert.Equal(t, "Jeans", page[0].Name)

		page, total, err = items.Search(ctx, entities.ItemFilter{Keyword: "shirt", MaxPrice: 13000},
			entities.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, tshirt.Code, page[0].Code)
	})

	t.Run("soft delete", func(t *testing.T) {
		require.NoError(t, items.SoftDelete(ctx, jeans.Code))

		_, err := items.FindByCode(ctx, jeans.Code)
		assert.ErrorIs(t, err, entities.ErrItemNotFound)

		locked, err := items.LockByIDs(ctx, []int64{jeans.ID})
		require.NoError(t, err)
		assert.Empty(t, locked)

		assert.ErrorIs(t, items.SoftDelete(ctx, jeans.Code), entities.ErrItemNotFound)
	})
}
