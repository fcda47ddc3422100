package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	AddToCart(ctx context.Context, userID int64, cmd entities.AddToCartCmd) (entities.CartLineRef, error)
	GetCart(ctx context.Context, userID int64) (entities.Order, error)
	RemoveCartLine(ctx context.Context, userID int64, cmd entities.RemoveLineCmd) (string, error)
	ClearCart(ctx context.Context, userID int64) error
	Checkout(ctx context.Context, userID int64, addr entities.Address) (string, error)
	CancelOrder(ctx context.Context, userID int64, code string) (string, error)
	ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error)
	GetOrderDetails(ctx context.Context, userID int64, code string) (entities.Order, error)
}

type OrderHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          OrderService
	authenticate Middleware
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, authenticate Middleware) *OrderHandler {
	return &OrderHandler{
		logger:       logger.With(slog.String("handler", "orders")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/", h.ListOrders)
		r.Post("/", h.Checkout)

		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddToCart)
		r.Patch("/cart", h.RemoveCartLine)
		r.Delete("/cart", h.ClearCart)

		r.Get("/{code}", h.GetOrderDetails)
		r.Patch("/{code}/cancel", h.CancelOrder)
	})
}

// AddToCart добавляет товар в корзину.
// @Summary      Добавить товар в корзину
// @Description  Создает корзину при необходимости и добавляет в нее строку
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddToCartRequest  true  "Товар и количество"
// @Success      201      {object}  utils.Response{result=utils.Success{data=CartLine}}
// @Failure      400      {object}  utils.Response{result=utils.Failure} "Ошибка валидации"
// @Failure      404      {object}  utils.Response{result=utils.Failure} "Товар не найден"
// @Router       /api/orders/cart [post]
func (h *OrderHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	ref, err := h.svc.AddToCart(r.Context(), user.UserID, entities.AddToCartCmd{
		ItemCode: req.ItemCode,
		Quantity: req.Quantity,
		Size:     req.Size,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to add to cart", slog.String("item_code", req.ItemCode))
		return
	}

	utils.WriteOK(w, http.StatusCreated, "item added to cart", CartLine{
		OrderCode: ref.OrderCode,
		LineCode:  ref.LineCode,
		ItemCode:  ref.ItemCode,
		Quantity:  ref.Quantity,
	})
}

// GetCart возвращает корзину.
// @Summary      Получить корзину
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  utils.Response{result=utils.Success{data=Order}}
// @Router       /api/orders/cart [get]
func (h *OrderHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	cart, err := h.svc.GetCart(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to get cart")
		return
	}
	utils.WriteOK(w, http.StatusOK, "cart", OrderEntityToJSON(cart))
}

// RemoveCartLine удаляет строку из корзины.
// @Summary      Удалить строку корзины
// @Description  Строка задается кодом или парой товар+количество, удаляется первое совпадение
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RemoveCartLineRequest  true  "Строка корзины"
// @Success      200      {object}  utils.Response{result=utils.Success{data=string}}
// @Failure      404      {object}  utils.Response{result=utils.Failure} "Строка не найдена"
// @Router       /api/orders/cart [patch]
func (h *OrderHandler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req RemoveCartLineRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	itemCode, err := h.svc.RemoveCartLine(r.Context(), user.UserID, entities.RemoveLineCmd{
		OrderCode: req.OrderCode,
		LineCode:  req.LineCode,
		ItemCode:  req.ItemCode,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to remove cart line")
		return
	}
	utils.WriteOK(w, http.StatusOK, "cart line removed", itemCode)
}

// ClearCart очищает корзину.
// @Summary      Очистить корзину
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  utils.Response{result=utils.Success}
// @Router       /api/orders/cart [delete]
func (h *OrderHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.ClearCart(r.Context(), user.UserID); err != nil {
		writeServiceError(h.logger, w, r, err, "failed to clear cart")
		return
	}
	utils.WriteOK(w, http.StatusOK, "cart cleared", nil)
}

// Checkout оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Списывает остатки по всем строкам корзины в одной транзакции
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Адрес доставки"
// @Success      201      {object}  utils.Response{result=utils.Success{data=string}}
// @Failure      400      {object}  utils.Response{result=utils.Failure} "Пустая корзина"
// @Failure      409      {object}  utils.Response{result=utils.Failure} "Недостаточно товара"
// @Router       /api/orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	code, err := h.svc.Checkout(r.Context(), user.UserID, AddressJSONToEntity(req.Address))
	checkoutDuration.Observe(time.Since(start).Seconds())
	checkoutTotal.WithLabelValues(resultLabel(err)).Inc()
	if errors.Is(err, entities.ErrInsufficientStock) {
		stockConflicts.Inc()
	}
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to checkout", slog.Int64("user_id", user.UserID))
		return
	}

	utils.WriteOK(w, http.StatusCreated, "order completed", code)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Возвращает остатки оформленного заказа на склад
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Код заказа"
// @Success      200   {object}  utils.Response{result=utils.Success{data=string}}
// @Failure      404   {object}  utils.Response{result=utils.Failure} "Заказ не найден"
// @Failure      409   {object}  utils.Response{result=utils.Failure} "Заказ уже отменен"
// @Router       /api/orders/{code}/cancel [patch]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cancelled, err := h.svc.CancelOrder(r.Context(), user.UserID, code)
	cancelTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to cancel order", slog.String("order_code", code))
		return
	}
	utils.WriteOK(w, http.StatusOK, "order cancelled", cancelled)
}

// ListOrders возвращает историю заказов.
// @Summary      История заказов
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "whole, done или cancel"
// @Param        page    query     int     false  "Номер страницы"
// @Param        size    query     int     false  "Размер страницы"
// @Success      200     {object}  utils.Response{result=utils.Success{data=Page[Order]}}
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	status := entities.OrderStatus(q.Get("status"))
	if status != "" && !status.ValidFilter() {
		utils.WriteError(w, "invalid status filter", http.StatusBadRequest)
		return
	}

	page, err := parsePage(q.Get("page"), q.Get("size"))
	if err != nil {
		utils.WriteError(w, "invalid pagination", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrders(r.Context(), user.UserID, status, page)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to list orders")
		return
	}
	utils.WriteOK(w, http.StatusOK, "orders", PageToJSON(orders, OrderEntityToJSON))
}

// GetOrderDetails возвращает заказ со строками.
// @Summary      Детали заказа
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Код заказа"
// @Success      200   {object}  utils.Response{result=utils.Success{data=Order}}
// @Failure      404   {object}  utils.Response{result=utils.Failure} "Заказ не найден"
// @Router       /api/orders/{code} [get]
func (h *OrderHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderDetails(r.Context(), user.UserID, code)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to get order", slog.String("order_code", code))
		return
	}
	utils.WriteOK(w, http.StatusOK, "order", OrderEntityToJSON(order))
}

func parsePage(page, size string) (entities.PageRequest, error) {
	var req entities.PageRequest
	var err error
	if page != "" {
		if req.PageNo, err = strconv.Atoi(page); err != nil {
			return req, err
		}
	}
	if size != "" {
		if req.PageSize, err = strconv.Atoi(size); err != nil {
			return req, err
		}
	}
	return req, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrConcurrentUpdate),
		errors.Is(err, entities.ErrOrderStatusConflict),
		errors.Is(err, entities.ErrOrderAlreadyCancelled):
		return "conflict"
	default:
		return "error"
	}
}
