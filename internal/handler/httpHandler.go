package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"zhumagul-shop/internal/cart"
	"zhumagul-shop/internal/catalog"
	"zhumagul-shop/internal/metric"
	"zhumagul-shop/internal/models"
	"zhumagul-shop/internal/notify"
	"zhumagul-shop/internal/pricing"
	"zhumagul-shop/internal/service"
	"zhumagul-shop/internal/shipping"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SessionHeader - заголовок с id корзины покупателя. Если клиент пришел
// без него, сервер генерирует id и возвращает его в этом же заголовке.
const SessionHeader = "X-Session-ID"

// OrderManager - контракт сервиса заказов со стороны HTTP.
//
//go:generate mockery --name=OrderManager --output=./mocks --case=underscore
type OrderManager interface {
	PlaceOrder(ctx context.Context, info models.CheckoutInfo, lines []models.CartLine, price models.Pricing) (models.Order, error)
	GetOrder(ctx context.Context, uid string) (models.Order, error)
	SetStatus(ctx context.Context, uid string, status models.OrderStatus) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// ShopHandler связывает HTTP-запросы витрины и админки
// с каталогом, корзинами и сервисом заказов.
type ShopHandler struct {
	catalog  *catalog.Index
	carts    *cart.Store
	service  OrderManager // Используем интерфейс
	whatsApp string
}

func NewShopHandler(idx *catalog.Index, carts *cart.Store, s OrderManager, whatsApp string) *ShopHandler {
	return &ShopHandler{catalog: idx, carts: carts, service: s, whatsApp: whatsApp}
}

// --- Каталог ---

// GetCatalogHandler отдает товары по фильтру: q - подстрока по названию
// и описанию, category - точная категория ("Все" - без фильтра),
// ids - ограничение набором id (страница избранного).
func (h *ShopHandler) GetCatalogHandler(c *gin.Context) {
	f := catalog.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	if raw := c.Query("ids"); raw != "" {
		f.IDs = strings.Split(raw, ",")
	}
	c.JSON(http.StatusOK, h.catalog.List(f))
}

func (h *ShopHandler) AddProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	if p.ID == "" || p.Name == "" || len(p.Sizes) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "товару нужны id, название и хотя бы один размер"})
		return
	}
	if err := h.catalog.Add(p); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ShopHandler) RemoveProductHandler(c *gin.Context) {
	if err := h.catalog.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShopHandler) AddReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	if review.UserName == "" || review.Rating < 1 || review.Rating > 5 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "отзыву нужны имя и оценка от 1 до 5"})
		return
	}
	if err := h.catalog.AddReview(c.Param("id"), review); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// --- Доставка ---

func (h *ShopHandler) DistrictsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, shipping.Districts())
}

// QuoteHandler считает стоимость для выбранных района и способа доставки.
func (h *ShopHandler) QuoteHandler(c *gin.Context) {
	method := models.DeliveryMethod(c.Query("method"))
	if !method.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "неизвестный способ доставки"})
		return
	}
	subtotal, err := strconv.Atoi(c.DefaultQuery("subtotal", "0"))
	if err != nil || subtotal < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректная сумма"})
		return
	}
	c.JSON(http.StatusOK, pricing.ComputeTotal(subtotal, method, c.Query("district")))
}

// --- Корзина ---

type cartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Delta     int    `json:"delta"`
}

func (h *ShopHandler) sessionCart(c *gin.Context) *cart.Cart {
	sessionCart, sessionID := h.carts.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sessionID)
	return sessionCart
}

func (h *ShopHandler) GetCartHandler(c *gin.Context) {
	sessionCart := h.sessionCart(c)
	c.JSON(http.StatusOK, gin.H{
		"lines":    sessionCart.Lines(),
		"subtotal": sessionCart.Subtotal(),
	})
}

func (h *ShopHandler) AddCartItemHandler(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	sessionCart := h.sessionCart(c)
	if err := sessionCart.AddItem(product, req.Size); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lines":    sessionCart.Lines(),
		"subtotal": sessionCart.Subtotal(),
	})
}

// UpdateCartItemHandler меняет количество позиции на delta.
// Количество не опускается ниже 1 - удаление только явным запросом.
func (h *ShopHandler) UpdateCartItemHandler(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	sessionCart := h.sessionCart(c)
	sessionCart.UpdateQuantity(req.ProductID, req.Size, req.Delta)
	c.JSON(http.StatusOK, gin.H{
		"lines":    sessionCart.Lines(),
		"subtotal": sessionCart.Subtotal(),
	})
}

func (h *ShopHandler) RemoveCartItemHandler(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	sessionCart := h.sessionCart(c)
	sessionCart.RemoveItem(req.ProductID, req.Size)
	c.JSON(http.StatusOK, gin.H{
		"lines":    sessionCart.Lines(),
		"subtotal": sessionCart.Subtotal(),
	})
}

// --- Оформление ---

// CheckoutHandler оформляет заказ из корзины сессии.
// Корзина очищается только после успешного сохранения заказа.
func (h *ShopHandler) CheckoutHandler(c *gin.Context) {
	var info models.CheckoutInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	sessionCart := h.sessionCart(c)
	lines := sessionCart.Lines()
	if len(lines) == 0 {
		metric.CheckoutRejectedTotal.WithLabelValues("empty_cart").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "корзина пуста"})
		return
	}

	price := pricing.ComputeTotal(sessionCart.Subtotal(), info.DeliveryMethod, info.District)

	order, err := h.service.PlaceOrder(c.Request.Context(), info, lines, price)
	if err != nil {
		var incomplete *service.IncompleteCheckoutError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          incomplete.Error(),
				"missing_fields": incomplete.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось оформить заказ"})
		return
	}

	sessionCart.Clear()
	c.JSON(http.StatusCreated, gin.H{
		"order":         order,
		"whatsapp_link": notify.Link(h.whatsApp, order),
	})
}

// --- Заказы ---

// GetOrderHandler возвращает заказ по id, регистр id не важен.
func (h *ShopHandler) GetOrderHandler(c *gin.Context) {
	uid := c.Param("order_uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неправильный ID"})
		return
	}
	ctx := c.Request.Context()

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("http.request.order_uid", uid))

	order, err := h.service.GetOrder(ctx, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Введен неверный ID: заказ не найден"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *ShopHandler) OrderSummaryHandler(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("order_uid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Введен неверный ID: заказ не найден"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_uid":     order.OrderUID,
		"summary":       notify.SummaryText(order),
		"whatsapp_link": notify.Link(h.whatsApp, order),
	})
}

type statusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// SetStatusHandler выставляет заказу новый статус (админка).
func (h *ShopHandler) SetStatusHandler(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "неизвестный статус заказа"})
		return
	}

	order, err := h.service.SetStatus(c.Request.Context(), c.Param("order_uid"), req.Status)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Введен неверный ID: заказ не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось обновить статус"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *ShopHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось получить список заказов"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()
		// После того как хендлер отработал, фиксируем время и статус
		duration := time.Since(start)
		status := c.Writer.Status()

		metric.ObserveRequest(duration, status)
	}
}
