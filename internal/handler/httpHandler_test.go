package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"zhumagul-shop/internal/cart"
	"zhumagul-shop/internal/catalog"
	"zhumagul-shop/internal/handler/mocks"
	"zhumagul-shop/internal/models"
	"zhumagul-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*mocks.OrderManager, *ShopHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mockService := mocks.NewOrderManager(t)
	h := NewShopHandler(catalog.NewSeededIndex(), cart.NewStore(), mockService, "77770000000")
	return mockService, h
}

func doRequest(h *ShopHandler, method, target string, body any, sessionID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(w, req)
	return w
}

func TestShopHandler_GetOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Заказ найден", func(t *testing.T) {
		mockService, h := newTestHandler(t)
		orderUID := "ORD-123456"
		expectedOrder := models.Order{OrderUID: orderUID}

		mockService.On("GetOrder", mock.Anything, orderUID).Return(expectedOrder, nil)

		w := doRequest(h, http.MethodGet, "/order/"+orderUID, nil, "")

		assert.Equal(t, http.StatusOK, w.Code)

		var actualOrder models.Order
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualOrder))
		assert.Equal(t, expectedOrder.OrderUID, actualOrder.OrderUID)
	})

	t.Run("Заказ не найден в системе", func(t *testing.T) {
		mockService, h := newTestHandler(t)

		badUID := "unknown"
		mockService.On("GetOrder", mock.Anything, badUID).Return(models.Order{}, errors.New("not found"))

		w := doRequest(h, http.MethodGet, "/order/"+badUID, nil, "")

		assert.Equal(t, 404, w.Code)
	})
}

func TestShopHandler_Catalog(t *testing.T) {
	t.Run("Фильтр по категории", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodGet, "/catalog?category=Летние", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		var products []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		for _, p := range products {
			assert.Equal(t, "Летние", p.Category)
		}
		assert.NotEmpty(t, products)
	})

	t.Run("Дубликат id отклоняется", func(t *testing.T) {
		_, h := newTestHandler(t)

		p := models.Product{ID: "p1", Name: "Дубликат", Category: "Вечерние", Sizes: []string{"S"}}
		w := doRequest(h, http.MethodPost, "/catalog", p, "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Удаление несуществующего товара", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodDelete, "/catalog/no-such-id", nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShopHandler_CartFlow(t *testing.T) {
	_, h := newTestHandler(t)

	// без заголовка сессии сервер выдает id
	w := doRequest(h, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "size": "M"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := w.Header().Get(SessionHeader)
	require.NotEmpty(t, sessionID)

	// повторное добавление той же пары (товар, размер) сливается в одну позицию
	w = doRequest(h, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "size": "M"}, sessionID)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lines    []models.CartLine `json:"lines"`
		Subtotal int               `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, 90000, resp.Subtotal) // 45000 * 2

	// количество не опускается ниже 1
	w = doRequest(h, http.MethodPatch, "/cart/items", gin.H{"product_id": "p1", "size": "M", "delta": -10}, sessionID)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)

	// явное удаление позиции
	w = doRequest(h, http.MethodDelete, "/cart/items", gin.H{"product_id": "p1", "size": "M"}, sessionID)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
}

func TestShopHandler_AddCartItem_InvalidSize(t *testing.T) {
	_, h := newTestHandler(t)

	w := doRequest(h, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "size": "XXXL"}, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestShopHandler_Checkout(t *testing.T) {
	t.Run("Пустая корзина", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodPost, "/checkout", models.CheckoutInfo{
			Name: "Алтынай", Phone: "+7777", DeliveryMethod: models.DeliveryPickup,
			PaymentMethod: models.PaymentKaspi,
		}, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Успешное оформление очищает корзину", func(t *testing.T) {
		mockService, h := newTestHandler(t)

		w := doRequest(h, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "size": "M"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		sessionID := w.Header().Get(SessionHeader)

		placed := models.Order{OrderUID: "ORD-123456", Total: 45800}
		mockService.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(placed, nil)

		w = doRequest(h, http.MethodPost, "/checkout", models.CheckoutInfo{
			Name: "Алтынай", Phone: "+7777", DeliveryMethod: models.DeliveryStandard,
			PaymentMethod: models.PaymentKaspi, District: "Аль-Фараби", Address: "ул. Желтоксан",
		}, sessionID)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "ORD-123456")
		assert.Contains(t, w.Body.String(), "whatsapp_link")

		// корзина после оформления пуста
		w = doRequest(h, http.MethodGet, "/cart", nil, sessionID)
		var resp struct {
			Lines []models.CartLine `json:"lines"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Lines)
	})

	t.Run("Незаполненные поля формы", func(t *testing.T) {
		mockService, h := newTestHandler(t)

		w := doRequest(h, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "size": "M"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		sessionID := w.Header().Get(SessionHeader)

		mockService.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(models.Order{}, &service.IncompleteCheckoutError{Fields: []string{"phone"}})

		w = doRequest(h, http.MethodPost, "/checkout", models.CheckoutInfo{
			Name: "Алтынай", DeliveryMethod: models.DeliveryPickup, PaymentMethod: models.PaymentKaspi,
		}, sessionID)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "phone")

		// корзина при отказе сохраняется
		w = doRequest(h, http.MethodGet, "/cart", nil, sessionID)
		var resp struct {
			Lines []models.CartLine `json:"lines"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Lines, 1)
	})
}

func TestShopHandler_SetStatus(t *testing.T) {
	t.Run("Успешная смена статуса", func(t *testing.T) {
		mockService, h := newTestHandler(t)

		updated := models.Order{OrderUID: "ord-1234", Status: models.StatusShipped}
		mockService.On("SetStatus", mock.Anything, "ORD-1234", models.StatusShipped).Return(updated, nil)

		w := doRequest(h, http.MethodPatch, "/order/ORD-1234/status", gin.H{"status": "shipped"}, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "shipped")
	})

	t.Run("Неизвестный статус", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodPatch, "/order/ORD-1234/status", gin.H{"status": "teleported"}, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Заказ не найден", func(t *testing.T) {
		mockService, h := newTestHandler(t)

		mockService.On("SetStatus", mock.Anything, "ORD-9999", models.StatusShipped).
			Return(models.Order{}, models.ErrOrderNotFound)

		w := doRequest(h, http.MethodPatch, "/order/ORD-9999/status", gin.H{"status": "shipped"}, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShopHandler_Quote(t *testing.T) {
	t.Run("Самовывоз - доставка 0", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodGet, "/shipping/quote?method=pickup&district=%D0%9C%D0%B5%D0%B4%D0%B5%D1%83&subtotal=10000", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		var price models.Pricing
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &price))
		assert.Equal(t, 0, price.ShippingCost)
		assert.Equal(t, 10000, price.Total)
	})

	t.Run("Неизвестный способ доставки", func(t *testing.T) {
		_, h := newTestHandler(t)

		w := doRequest(h, http.MethodGet, "/shipping/quote?method=drone&subtotal=10000", nil, "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
