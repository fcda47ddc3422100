package repo_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo(t *testing.T) {
	db := setupTestDB(t)
	orders := repo.NewOrderRepo(db)
	ctx := context.Background()

	user := createUser(t, db, "kim@example.com")
	tshirt := createItem(t, db, "T-Shirt", 15000, 3)

	cart, err := orders.CreateReady(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReady, cart.Status)

	t.Run("create ready is idempotent", func(t *testing.T) {
		again, err := orders.CreateReady(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, cart.ID, again.ID)
	})

	var first, second entities.OrderLine
	t.Run("add and list lines", func(t *testing.T) {
		first, err = orders.AddLine(ctx, entities.OrderLine{OrderID: cart.ID, ItemID: tshirt.ID, Quantity: 1, Price: 15000})
		require.NoError(t, err)
		second, err = orders.AddLine(ctx, entities.OrderLine{OrderID: cart.ID, ItemID: tshirt.ID, Quantity: 1, Price: 15000})
		require.NoError(t, err)
		assert.NotEqual(t, first.Code, second.Code)

		lines, err := orders.ListLines(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, tshirt.Code, lines[0].ItemCode)
		assert.Equal(t, "T-Shirt", lines[0].ItemName)
	})

	t.Run("delete one of identical lines", func(t *testing.T) {
		require.NoError(t, orders.SoftDeleteLine(ctx, first.ID))
		assert.ErrorIs(t, orders.SoftDeleteLine(ctx, first.ID), entities.ErrCartLineNotFound)

		lines, err := orders.ListLines(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, second.Code, lines[0].Code)
	})

	t.Run("snapshot and complete", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `UPDATE items SET price = 14000 WHERE id = $1`, tshirt.ID)
		require.NoError(t, err)

		require.NoError(t, orders.SnapshotLinePrices(ctx, cart.ID))
		addr := entities.Address{City: "Seoul", District: "Gangnam"}
		require.NoError(t, orders.Complete(ctx, cart.ID, 14000, addr))

		done, err := orders.FindByCode(ctx, cart.Code, false)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDone, done.Status)
		assert.Equal(t, int64(14000), done.TotalPrice)
		assert.Equal(t, addr, done.Address)

		lines, err := orders.ListLines(ctx, cart.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(14000), lines[0].Price)

		assert.ErrorIs(t, orders.Complete(ctx, cart.ID, 14000, addr), entities.ErrOrderStatusConflict)

		_, err = orders.FindReadyByUser(ctx, user.ID, false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("status transitions are conditional", func(t *testing.T) {
		assert.ErrorIs(t, orders.UpdateStatus(ctx, cart.ID, entities.StatusReady, entities.StatusCancel),
			entities.ErrOrderStatusConflict)
		require.NoError(t, orders.UpdateStatus(ctx, cart.ID, entities.StatusDone, entities.StatusCancel))
	})

	t.Run("history excludes the cart", func(t *testing.T) {
		_, err := orders.CreateReady(ctx, user.ID)
		require.NoError(t, err)

		list, total, err := orders.ListByUser(ctx, user.ID, entities.StatusWhole, entities.PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, entities.StatusCancel, list[0].Status)

		_, total, err = orders.ListByUser(ctx, user.ID, entities.StatusDone, entities.PageRequest{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("malformed code", func(t *testing.T) {
		_, err := orders.FindByCode(ctx, "123", false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
