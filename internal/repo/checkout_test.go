package repo_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type orderFlow interface {
	AddToCart(ctx context.Context, userID int64, cmd entities.AddToCartCmd) (entities.CartLineRef, error)
	GetCart(ctx context.Context, userID int64) (entities.Order, error)
	Checkout(ctx context.Context, userID int64, addr entities.Address) (string, error)
	CancelOrder(ctx context.Context, userID int64, code string) (string, error)
	GetOrderDetails(ctx context.Context, userID int64, code string) (entities.Order, error)
}

func newOrderFlow(db *sqlx.DB, events *recordingPublisher) orderFlow {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, trm.NewManager(db, nil), repo.NewOrderRepo(db), repo.NewItemRepo(db), events)
}

var seoul = entities.Address{City: "Seoul", District: "Gangnam"}

func stockOf(t *testing.T, db *sqlx.DB, code string) entities.Item {
	t.Helper()
	item, err := repo.NewItemRepo(db).FindByCode(context.Background(), code)
	require.NoError(t, err)
	return item
}

// linesTotal пересчитывает сумму заказа по сохраненным позициям.
func linesTotal(lines []entities.OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

func TestCheckout_TShirtScenario(t *testing.T) {
	db := setupTestDB(t)
	flow := newOrderFlow(db, &recordingPublisher{})
	ctx := context.Background()

	tshirt := createItem(t, db, "T-Shirt", 1000, 5)
	user := createUser(t, db, "lee@example.com")

	_, err := flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 5})
	require.NoError(t, err)
	code, err := flow.Checkout(ctx, user.ID, seoul)
	require.NoError(t, err)

	order, err := flow.GetOrderDetails(ctx, user.ID, code)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), order.TotalPrice)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, linesTotal(order.Lines), order.TotalPrice)
	assert.Equal(t, 0, stockOf(t, db, tshirt.Code).StockQuantity)

	_, err = flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 1})
	require.NoError(t, err)
	_, err = flow.Checkout(ctx, user.ID, seoul)
	require.ErrorIs(t, err, entities.ErrInsufficientStock)

	got := stockOf(t, db, tshirt.Code)
	assert.Equal(t, 0, got.StockQuantity)
	assert.Equal(t, 5, got.SalesCount)
}

func TestCheckout_TotalMatchesLines(t *testing.T) {
	db := setupTestDB(t)
	flow := newOrderFlow(db, &recordingPublisher{})
	ctx := context.Background()

	tshirt := createItem(t, db, "T-Shirt", 15000, 10)
	jeans := createItem(t, db, "Jeans", 30000, 10)
	user := createUser(t, db, "park@example.com")

	for _, cmd := range []entities.AddToCartCmd{
		{ItemCode: tshirt.Code, Quantity: 2},
		{ItemCode: jeans.Code, Quantity: 1},
		{ItemCode: tshirt.Code, Quantity: 3},
	} {
		_, err := flow.AddToCart(ctx, user.ID, cmd)
		require.NoError(t, err)
	}

	// цена меняется до оформления, в заказ попадает актуальная
	_, err := db.ExecContext(ctx, `UPDATE items SET price = 12000 WHERE id = $1`, tshirt.ID)
	require.NoError(t, err)

	code, err := flow.Checkout(ctx, user.ID, seoul)
	require.NoError(t, err)

	order, err := flow.GetOrderDetails(ctx, user.ID, code)
	require.NoError(t, err)
	require.Len(t, order.Lines, 3)
	assert.Equal(t, int64(5*12000+30000), order.TotalPrice)
	assert.Equal(t, linesTotal(order.Lines), order.TotalPrice)
}

func TestCheckout_FailedLineLeavesEverythingUntouched(t *testing.T) {
	db := setupTestDB(t)
	events := &recordingPublisher{}
	flow := newOrderFlow(db, events)
	ctx := context.Background()

	// товары создаются по порядку, так что jeans блокируется и проверяется вторым
	tshirt := createItem(t, db, "T-Shirt", 15000, 5)
	jeans := createItem(t, db, "Jeans", 30000, 2)
	user := createUser(t, db, "choi@example.com")

	_, err := flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 2})
	require.NoError(t, err)
	_, err = flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: jeans.Code, Quantity: 3})
	require.NoError(t, err)

	_, err = flow.Checkout(ctx, user.ID, seoul)
	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, jeans.Code, stockErr.ItemCode)
	assert.Equal(t, 2, stockErr.Stock)

	got := stockOf(t, db, tshirt.Code)
	assert.Equal(t, 5, got.StockQuantity)
	assert.Zero(t, got.SalesCount)
	got = stockOf(t, db, jeans.Code)
	assert.Equal(t, 2, got.StockQuantity)
	assert.Zero(t, got.SalesCount)

	cart, err := flow.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReady, cart.Status)
	assert.Len(t, cart.Lines, 2)
	assert.Zero(t, cart.TotalPrice)

	assert.Empty(t, events.events)
}

func TestCheckout_LastItemGoesToFirstBuyer(t *testing.T) {
	db := setupTestDB(t)
	events := &recordingPublisher{}
	flow := newOrderFlow(db, events)
	ctx := context.Background()

	tshirt := createItem(t, db, "T-Shirt", 15000, 1)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	// обе корзины собираются, пока товар еще есть
	for _, u := range []entities.User{alice, bob} {
		_, err := flow.AddToCart(ctx, u.ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 1})
		require.NoError(t, err)
	}

	code, err := flow.Checkout(ctx, alice.ID, seoul)
	require.NoError(t, err)

	_, err = flow.Checkout(ctx, bob.ID, seoul)
	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, tshirt.Code, stockErr.ItemCode)
	assert.Equal(t, 0, stockErr.Stock)

	got := stockOf(t, db, tshirt.Code)
	assert.Equal(t, 0, got.StockQuantity)
	assert.Equal(t, 1, got.SalesCount)

	order, err := flow.GetOrderDetails(ctx, alice.ID, code)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDone, order.Status)
	assert.Equal(t, int64(15000), order.TotalPrice)
	assert.Equal(t, linesTotal(order.Lines), order.TotalPrice)
	assert.Equal(t, seoul, order.Address)

	require.Len(t, events.events, 1)
	assert.Equal(t, entities.EventOrderCompleted, events.events[0].Type)
}

func TestCheckout_ConcurrentBuyersNeverOversell(t *testing.T) {
	db := setupTestDB(t)
	flow := newOrderFlow(db, &recordingPublisher{})
	ctx := context.Background()

	const (
		stock  = 10
		buyers = 25
	)
	tshirt := createItem(t, db, "T-Shirt", 15000, stock)

	users := make([]entities.User, buyers)
	for i := range users {
		users[i] = createUser(t, db, fmt.Sprintf("buyer%d@example.com", i))
		_, err := flow.AddToCart(ctx, users[i].ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 1})
		require.NoError(t, err)
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	start := make(chan struct{})
	for _, u := range users {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			<-start
			_, err := flow.Checkout(ctx, userID, seoul)
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, entities.ErrInsufficientStock):
				rejected.Add(1)
			}
		}(u.ID)
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, stock, succeeded.Load())
	assert.EqualValues(t, buyers-stock, rejected.Load())

	got := stockOf(t, db, tshirt.Code)
	assert.Equal(t, 0, got.StockQuantity)
	assert.Equal(t, stock, got.SalesCount)
}

func TestCancel_RestoresStockOfEveryLine(t *testing.T) {
	db := setupTestDB(t)
	events := &recordingPublisher{}
	flow := newOrderFlow(db, events)
	ctx := context.Background()

	tshirt := createItem(t, db, "T-Shirt", 15000, 5)
	jeans := createItem(t, db, "Jeans", 30000, 5)
	user := createUser(t, db, "kim@example.com")

	_, err := flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: tshirt.Code, Quantity: 2})
	require.NoError(t, err)
	_, err = flow.AddToCart(ctx, user.ID, entities.AddToCartCmd{ItemCode: jeans.Code, Quantity: 3})
	require.NoError(t, err)

	code, err := flow.Checkout(ctx, user.ID, seoul)
	require.NoError(t, err)
	assert.Equal(t, 3, stockOf(t, db, tshirt.Code).StockQuantity)
	assert.Equal(t, 2, stockOf(t, db, jeans.Code).StockQuantity)

	cancelled, err := flow.CancelOrder(ctx, user.ID, code)
	require.NoError(t, err)
	assert.Equal(t, code, cancelled)

	assert.Equal(t, 5, stockOf(t, db, tshirt.Code).StockQuantity)
	assert.Equal(t, 5, stockOf(t, db, jeans.Code).StockQuantity)

	order, err := flow.GetOrderDetails(ctx, user.ID, code)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancel, order.Status)
	assert.Empty(t, order.Lines)

	var live int
	require.NoError(t, db.GetContext(ctx, &live,
		`SELECT COUNT(*) FROM order_lines WHERE order_id = $1 AND deleted_at IS NULL`, order.ID))
	assert.Zero(t, live)

	_, err = flow.CancelOrder(ctx, user.ID, code)
	assert.ErrorIs(t, err, entities.ErrOrderAlreadyCancelled)
	assert.Equal(t, 5, stockOf(t, db, tshirt.Code).StockQuantity)

	require.Len(t, events.events, 2)
	assert.Equal(t, entities.EventOrderCancelled, events.events[1].Type)
}
