package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_GetItem(t *testing.T) {
	testCases := []struct {
		name         string
		code         string
		mockBehavior func(svc *mocks.MockItemService)
		wantStatus   int
		wantMessage  string
	}{
		{
			name: "success",
			code: itemCode,
			mockBehavior: func(svc *mocks.MockItemService) {
				svc.EXPECT().GetItem(mock.Anything, itemCode).Return(entities.Item{
					Code: itemCode, Name: "T-Shirt", Category: entities.CategoryTop, Price: 15000, StockQuantity: 1,
				}, nil).Once()
			},
			wantStatus:  http.StatusOK,
			wantMessage: "item",
		},
		{
			name: "not found",
			code: itemCode,
			mockBehavior: func(svc *mocks.MockItemService) {
				svc.EXPECT().GetItem(mock.Anything, itemCode).Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "item not found",
		},
		{
			name: "internal error",
			code: itemCode,
			mockBehavior: func(svc *mocks.MockItemService) {
				svc.EXPECT().GetItem(mock.Anything, itemCode).Return(entities.Item{}, errors.New("db error")).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:         "invalid code",
			code:         "123",
			mockBehavior: func(svc *mocks.MockItemService) {},
			wantStatus:   http.StatusBadRequest,
			wantMessage:  "invalid request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockItemService(t)
			tc.mockBehavior(svc)

			h := handler.NewItemHandler(discardLogger(), svc, asUser(entities.RoleAdmin))
			rr, resp := serve(t, h, http.MethodGet, "/api/items/"+tc.code, nil)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, resp.Result.Message+resp.Result.ErrorMessage, tc.wantMessage)

			if tc.wantStatus == http.StatusOK {
				var item handler.Item
				require.NoError(t, json.Unmarshal(resp.Result.Data, &item))
				assert.Equal(t, "T-Shirt", item.Name)
				assert.Equal(t, "top", item.Category)
			}
		})
	}
}

func TestItemHandler_SearchItems(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		svc.EXPECT().SearchItems(mock.Anything,
			entities.ItemFilter{Category: entities.CategoryTop, Keyword: "shirt", MaxPrice: 20000},
			entities.PageRequest{PageNo: 1, PageSize: 20},
		).Return(entities.Page[entities.Item]{
			Items:    []entities.Item{{Code: itemCode, Name: "T-Shirt", SalesCount: 3}},
			Total:    1,
			PageNo:   1,
			PageSize: 20,
		}, nil).Once()

		h := handler.NewItemHandler(discardLogger(), svc)
		rr, resp := serve(t, h, http.MethodPost, "/api/items/search", map[string]any{
			"category": "top", "keyword": "shirt", "max_price": 20000, "page_no": 1, "page_size": 20,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var page handler.Page[handler.Item]
		require.NoError(t, json.Unmarshal(resp.Result.Data, &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.Items[0].SalesCount)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		h := handler.NewItemHandler(discardLogger(), svc)

		rr, resp := serve(t, h, http.MethodPost, "/api/items/search", map[string]any{"category": "hats"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "oneof", resp.Result.Fields["Category"])
	})

	t.Run("page too large", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		h := handler.NewItemHandler(discardLogger(), svc)

		rr, _ := serve(t, h, http.MethodPost, "/api/items/search", map[string]any{"page_size": 500})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestItemHandler_CreateItem(t *testing.T) {
	body := map[string]any{
		"name":           "T-Shirt",
		"category":       "top",
		"sub_category":   "shirts",
		"gender":         "unisex",
		"price":          15000,
		"stock_quantity": 1,
	}

	t.Run("admin", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		svc.EXPECT().CreateItem(mock.Anything, entities.CreateItemCmd{
			Name:          "T-Shirt",
			Category:      entities.CategoryTop,
			SubCategory:   "shirts",
			Gender:        entities.GenderUnisex,
			Price:         15000,
			StockQuantity: 1,
		}).Return(itemCode, nil).Once()

		h := handler.NewItemHandler(discardLogger(), svc,
			asUser(entities.RoleAdmin), middleware.RequireRole(entities.RoleAdmin))
		rr, resp := serve(t, h, http.MethodPost, "/api/items", body)

		require.Equal(t, http.StatusCreated, rr.Code)
		var code string
		require.NoError(t, json.Unmarshal(resp.Result.Data, &code))
		assert.Equal(t, itemCode, code)
	})

	t.Run("regular user", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)

		h := handler.NewItemHandler(discardLogger(), svc,
			asUser(entities.RoleUser), middleware.RequireRole(entities.RoleAdmin))
		rr, _ := serve(t, h, http.MethodPost, "/api/items", body)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		svc.EXPECT().CreateItem(mock.Anything, mock.Anything).Return("", entities.ErrItemAlreadyExists).Once()

		h := handler.NewItemHandler(discardLogger(), svc, asUser(entities.RoleAdmin))
		rr, _ := serve(t, h, http.MethodPost, "/api/items", body)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	svc := mocks.NewMockItemService(t)
	svc.EXPECT().UpdateItem(mock.Anything, itemCode, mock.MatchedBy(func(cmd entities.UpdateItemCmd) bool {
		return cmd.Price != nil && *cmd.Price == 12000 && cmd.Name == nil
	})).Return(entities.Item{Code: itemCode, Name: "T-Shirt", Price: 12000}, nil).Once()

	h := handler.NewItemHandler(discardLogger(), svc, asUser(entities.RoleAdmin))
	rr, resp := serve(t, h, http.MethodPatch, "/api/items/"+itemCode, map[string]any{"price": 12000})

	require.Equal(t, http.StatusOK, rr.Code)
	var item handler.Item
	require.NoError(t, json.Unmarshal(resp.Result.Data, &item))
	assert.Equal(t, int64(12000), item.Price)
}

func TestItemHandler_DeleteItem(t *testing.T) {
	svc := mocks.NewMockItemService(t)
	svc.EXPECT().DeleteItem(mock.Anything, itemCode).Return(entities.ErrItemNotFound).Once()

	h := handler.NewItemHandler(discardLogger(), svc, asUser(entities.RoleAdmin))
	rr, _ := serve(t, h, http.MethodDelete, "/api/items/"+itemCode, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
