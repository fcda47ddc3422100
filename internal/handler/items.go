package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ItemService interface {
	CreateItem(ctx context.Context, cmd entities.CreateItemCmd) (string, error)
	UpdateItem(ctx context.Context, code string, cmd entities.UpdateItemCmd) (entities.Item, error)
	DeleteItem(ctx context.Context, code string) error
	GetItem(ctx context.Context, code string) (entities.Item, error)
	SearchItems(ctx context.Context, f entities.ItemFilter, page entities.PageRequest) (entities.Page[entities.Item], error)
}

type ItemHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ItemService
	// аутентификация и проверка роли администратора
	admin []Middleware
}

func NewItemHandler(logger *slog.Logger, svc ItemService, admin ...Middleware) *ItemHandler {
	return &ItemHandler{
		logger:   logger.With(slog.String("handler", "items")),
		validate: validator.New(),
		svc:      svc,
		admin:    admin,
	}
}

func (h *ItemHandler) Init(r chi.Router) {
	r.Route("/api/items", func(r chi.Router) {
		r.Get("/{code}", h.GetItem)
		r.Post("/search", h.SearchItems)

		r.Group(func(r chi.Router) {
			r.Use(h.admin...)
			r.Post("/", h.CreateItem)
			r.Patch("/{code}", h.UpdateItem)
			r.Delete("/{code}", h.DeleteItem)
		})
	})
}

// GetItem возвращает товар по коду.
// @Summary      Получить товар
// @Tags         items
// @Produce      json
// @Param        code  path      string  true  "Код товара"
// @Success      200   {object}  utils.Response{result=utils.Success{data=Item}}
// @Failure      400   {object}  utils.Response{result=utils.Failure} "Ошибка валидации"
// @Failure      404   {object}  utils.Response{result=utils.Failure} "Товар не найден"
// @Router       /api/items/{code} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), code)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to get item", slog.String("code", code))
		return
	}
	utils.WriteOK(w, http.StatusOK, "item", ItemEntityToJSON(item))
}

// SearchItems ищет товары по фильтру.
// @Summary      Поиск товаров
// @Description  Результат отсортирован по количеству продаж
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      SearchItemsRequest  true  "Фильтр"
// @Success      200      {object}  utils.Response{result=utils.Success{data=Page[Item]}}
// @Router       /api/items/search [post]
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	var req SearchItemsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	filter, page := SearchJSONToFilter(req)
	items, err := h.svc.SearchItems(r.Context(), filter, page)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to search items")
		return
	}
	utils.WriteOK(w, http.StatusOK, "items", PageToJSON(items, ItemEntityToJSON))
}

// CreateItem добавляет товар в каталог.
// @Summary      Создать товар
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateItemRequest  true  "Товар"
// @Success      201      {object}  utils.Response{result=utils.Success{data=string}}
// @Failure      409      {object}  utils.Response{result=utils.Failure} "Товар уже существует"
// @Router       /api/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	code, err := h.svc.CreateItem(r.Context(), CreateItemJSONToCmd(req))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to create item", slog.String("name", req.Name))
		return
	}
	utils.WriteOK(w, http.StatusCreated, "item created", code)
}

// UpdateItem частично обновляет товар.
// @Summary      Обновить товар
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        code     path      string             true  "Код товара"
// @Param        request  body      UpdateItemRequest  true  "Изменения"
// @Success      200      {object}  utils.Response{result=utils.Success{data=Item}}
// @Failure      404      {object}  utils.Response{result=utils.Failure} "Товар не найден"
// @Router       /api/items/{code} [patch]
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), code, UpdateItemJSONToCmd(req))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to update item", slog.String("code", code))
		return
	}
	utils.WriteOK(w, http.StatusOK, "item updated", ItemEntityToJSON(item))
}

// DeleteItem удаляет товар из каталога.
// @Summary      Удалить товар
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Код товара"
// @Success      200   {object}  utils.Response{result=utils.Success{data=string}}
// @Failure      404   {object}  utils.Response{result=utils.Failure} "Товар не найден"
// @Router       /api/items/{code} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), code); err != nil {
		writeServiceError(h.logger, w, r, err, "failed to delete item", slog.String("code", code))
		return
	}
	utils.WriteOK(w, http.StatusOK, "item deleted", code)
}
