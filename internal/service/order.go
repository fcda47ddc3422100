package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

type OrderRepo interface {
	FindReadyByUser(ctx context.Context, userID int64, lock bool) (entities.Order, error)
	// Идемпотентна: при существующей корзине возвращает ее
	CreateReady(ctx context.Context, userID int64) (entities.Order, error)
	FindByCode(ctx context.Context, code string, lock bool) (entities.Order, error)
	ListByUser(ctx context.Context, userID int64, status entities.OrderStatus, page entities.PageRequest) ([]entities.Order, int, error)

	AddLine(ctx context.Context, line entities.OrderLine) (entities.OrderLine, error)
	ListLines(ctx context.Context, orderID int64) ([]entities.OrderLine, error)
	SoftDeleteLine(ctx context.Context, lineID int64) error
	SoftDeleteLines(ctx context.Context, orderID int64) error
	SnapshotLinePrices(ctx context.Context, orderID int64) error

	Complete(ctx context.Context, orderID int64, total int64, addr entities.Address) error
	UpdateStatus(ctx context.Context, orderID int64, from, to entities.OrderStatus) error
}

type StockRepo interface {
	FindByCode(ctx context.Context, code string) (entities.Item, error)
	LockByIDs(ctx context.Context, ids []int64) ([]entities.Item, error)
	ApplyStockDelta(ctx context.Context, d entities.StockDelta) error
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	items     StockRepo
	events    EventPublisher
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, orders OrderRepo, items StockRepo, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		items:     items,
		events:    events,
		// Повторяем только сериализацию и дедлоки, и сразу
		retry: utils.RetryConfig{
			MaxAttempts: 3,
			Retryable: func(err error) bool {
				return errors.Is(err, entities.ErrConcurrentUpdate)
			},
		},
	}
}

func (s *orderService) AddToCart(ctx context.Context, userID int64, cmd entities.AddToCartCmd) (entities.CartLineRef, error) {
	if cmd.Quantity < 1 {
		return entities.CartLineRef{}, entities.ErrInvalidQuantity
	}

	var ref entities.CartLineRef
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.items.FindByCode(ctx, cmd.ItemCode)
		if err != nil {
			return err
		}

		cart, err := s.orders.FindReadyByUser(ctx, userID, true)
		if errors.Is(err, entities.ErrOrderNotFound) {
			cart, err = s.orders.CreateReady(ctx, userID)
		}
		if err != nil {
			return fmt.Errorf("failed to get cart: %w", err)
		}

		size := cmd.Size
		if size == "" {
			size = item.Size
		}
		line, err := s.orders.AddLine(ctx, entities.OrderLine{
			OrderID:  cart.ID,
			ItemID:   item.ID,
			Price:    item.Price,
			Quantity: cmd.Quantity,
			Size:     size,
		})
		if err != nil {
			return err
		}

		ref = entities.CartLineRef{
			OrderCode: cart.Code,
			LineCode:  line.Code,
			ItemCode:  item.Code,
			Quantity:  line.Quantity,
		}
		return nil
	})
	if err != nil {
		return entities.CartLineRef{}, err
	}

	s.logger.Debug("item added to cart", slog.Int64("user_id", userID), slog.String("item_code", ref.ItemCode))
	return ref, nil
}

// GetCart возвращает открытую корзину. Если корзины нет, возвращается пустая.
func (s *orderService) GetCart(ctx context.Context, userID int64) (entities.Order, error) {
	cart, err := s.orders.FindReadyByUser(ctx, userID, false)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{UserID: userID, Status: entities.StatusReady, Lines: []entities.OrderLine{}}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}

	lines, err := s.orders.ListLines(ctx, cart.ID)
	if err != nil {
		return entities.Order{}, err
	}
	cart.Lines = lines
	cart.TotalPrice = linesTotal(lines)
	return cart, nil
}

func (s *orderService) RemoveCartLine(ctx context.Context, userID int64, cmd entities.RemoveLineCmd) (string, error) {
	var itemCode string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.lockCart(ctx, userID, cmd.OrderCode)
		if err != nil {
			return err
		}

		lines, err := s.orders.ListLines(ctx, cart.ID)
		if err != nil {
			return err
		}

		idx := slices.IndexFunc(lines, func(l entities.OrderLine) bool {
			if cmd.LineCode != "" {
				return l.Code == cmd.LineCode
			}
			return l.ItemCode == cmd.ItemCode && l.Quantity == cmd.Quantity
		})
		if idx < 0 {
			return entities.ErrCartLineNotFound
		}

		if err := s.orders.SoftDeleteLine(ctx, lines[idx].ID); err != nil {
			return err
		}
		itemCode = lines[idx].ItemCode
		return nil
	})
	if err != nil {
		return "", err
	}
	return itemCode, nil
}

func (s *orderService) lockCart(ctx context.Context, userID int64, orderCode string) (entities.Order, error) {
	if orderCode == "" {
		return s.orders.FindReadyByUser(ctx, userID, true)
	}

	order, err := s.orders.FindByCode(ctx, orderCode, true)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if order.Status != entities.StatusReady {
		return entities.Order{}, entities.ErrOrderStatusConflict
	}
	return order, nil
}

func (s *orderService) ClearCart(ctx context.Context, userID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.orders.FindReadyByUser(ctx, userID, true)
		if errors.Is(err, entities.ErrOrderNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.orders.SoftDeleteLines(ctx, cart.ID)
	})
}

// Checkout оформляет корзину пользователя. Вся работа идет в одной транзакции:
// корзина и товары блокируются, остатки проверяются по всем позициям до
// первого списания. Ошибка на любом шаге оставляет корзину в READY.
func (s *orderService) Checkout(ctx context.Context, userID int64, addr entities.Address) (string, error) {
	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.checkout(ctx, userID, addr)
			return err
		})
	}

	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return "", err
	}

	s.logger.Info("order completed",
		slog.String("order_code", order.Code),
		slog.Int64("user_id", userID),
		slog.Int64("total", order.TotalPrice),
	)
	s.publish(ctx, entities.EventOrderCompleted, order)
	return order.Code, nil
}

func (s *orderService) checkout(ctx context.Context, userID int64, addr entities.Address) (entities.Order, error) {
	cart, err := s.orders.FindReadyByUser(ctx, userID, true)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, entities.ErrCartEmpty
	}
	if err != nil {
		return entities.Order{}, err
	}

	lines, err := s.orders.ListLines(ctx, cart.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(lines) == 0 {
		return entities.Order{}, entities.ErrCartEmpty
	}

	ids, requested := aggregate(lines)

	locked, err := s.items.LockByIDs(ctx, ids)
	if err != nil {
		return entities.Order{}, err
	}
	byID := make(map[int64]entities.Item, len(locked))
	for _, it := range locked {
		byID[it.ID] = it
	}

	// сначала проверяем все позиции, потом списываем
	for _, l := range lines {
		item, ok := byID[l.ItemID]
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrItemNotFound, l.ItemCode)
		}
		if item.StockQuantity < requested[l.ItemID] {
			return entities.Order{}, &entities.InsufficientStockError{
				ItemCode:  item.Code,
				Name:      item.Name,
				Stock:     item.StockQuantity,
				Requested: requested[l.ItemID],
			}
		}
	}

	for i := range lines {
		lines[i].Price = byID[lines[i].ItemID].Price
	}
	total := linesTotal(lines)

	for _, id := range ids {
		q := requested[id]
		if err := s.items.ApplyStockDelta(ctx, entities.StockDelta{ItemID: id, Stock: -q, Sales: q}); err != nil {
			return entities.Order{}, err
		}
	}

	if err := s.orders.SnapshotLinePrices(ctx, cart.ID); err != nil {
		return entities.Order{}, err
	}
	if err := s.orders.Complete(ctx, cart.ID, total, addr); err != nil {
		return entities.Order{}, err
	}

	cart.Status = entities.StatusDone
	cart.TotalPrice = total
	cart.Address = addr
	cart.Lines = lines
	return cart, nil
}

// CancelOrder отменяет заказ пользователя. Остатки возвращаются только для
// оформленного заказа: корзина в READY склад еще не трогала.
func (s *orderService) CancelOrder(ctx context.Context, userID int64, code string) (string, error) {
	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.cancel(ctx, userID, code)
			return err
		})
	}

	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return "", err
	}

	s.logger.Info("order cancelled", slog.String("order_code", order.Code), slog.Int64("user_id", userID))
	s.publish(ctx, entities.EventOrderCancelled, order)
	return order.Code, nil
}

func (s *orderService) cancel(ctx context.Context, userID int64, code string) (entities.Order, error) {
	order, err := s.orders.FindByCode(ctx, code, true)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	switch order.Status {
	case entities.StatusCancel:
		return entities.Order{}, entities.ErrOrderAlreadyCancelled
	case entities.StatusReady, entities.StatusDone:
	default:
		return entities.Order{}, entities.ErrOrderStatusConflict
	}

	lines, err := s.orders.ListLines(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status == entities.StatusDone {
		ids, requested := aggregate(lines)
		for _, id := range ids {
			if err := s.items.ApplyStockDelta(ctx, entities.StockDelta{ItemID: id, Stock: requested[id]}); err != nil {
				return entities.Order{}, err
			}
		}
	}

	if err := s.orders.SoftDeleteLines(ctx, order.ID); err != nil {
		return entities.Order{}, err
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, order.Status, entities.StatusCancel); err != nil {
		return entities.Order{}, err
	}

	order.Status = entities.StatusCancel
	order.Lines = lines
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error) {
	if status == "" {
		status = entities.StatusWhole
	}
	page = page.Normalize()

	orders, total, err := s.orders.ListByUser(ctx, userID, status, page)
	if err != nil {
		return entities.Page[entities.Order]{}, err
	}
	return entities.NewPage(page, total, orders), nil
}

func (s *orderService) GetOrderDetails(ctx context.Context, userID int64, code string) (entities.Order, error) {
	order, err := s.orders.FindByCode(ctx, code, false)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	lines, err := s.orders.ListLines(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	order.Lines = lines
	return order, nil
}

func (s *orderService) publish(ctx context.Context, t entities.OrderEventType, order entities.Order) {
	event := entities.OrderEvent{
		Type:       t,
		OrderCode:  order.Code,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		Lines:      order.Lines,
		OccurredAt: time.Now(),
	}
	// заказ уже зафиксирован, ошибку публикации только логируем
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", string(t)),
			slog.String("order_code", order.Code),
			slog.Any("error", err),
		)
	}
}

// aggregate суммирует количество по товарам. id возвращаются по возрастанию,
// в этом порядке берутся блокировки и применяются изменения остатков.
func aggregate(lines []entities.OrderLine) ([]int64, map[int64]int) {
	requested := make(map[int64]int, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := requested[l.ItemID]; !ok {
			ids = append(ids, l.ItemID)
		}
		requested[l.ItemID] += l.Quantity
	}
	slices.Sort(ids)
	return ids, requested
}

func linesTotal(lines []entities.OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
