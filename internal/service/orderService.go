// Package service содержит бизнес-логику приложения:
// оформление заказов, смену статусов, выдачу заказов
// и координацию работы между кэшем, репозиторием и брокером.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"
	"zhumagul-shop/internal/logger/sl"
	"zhumagul-shop/internal/metric"
	"zhumagul-shop/internal/models"

	"github.com/brianvoe/gofakeit"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// IncompleteCheckoutError перечисляет незаполненные обязательные поля формы.
// Заказ при этой ошибке не создается, журнал не меняется.
type IncompleteCheckoutError struct {
	Fields []string
}

func (e *IncompleteCheckoutError) Error() string {
	return "не заполнены обязательные поля: " + strings.Join(e.Fields, ", ")
}

// OrderRepository описывает контракт для постоянного хранения и получения заказов.
// Он абстрагирует логику работы с базой данных от бизнес-логики сервиса.
//
//go:generate mockery --name=OrderRepository --output=./mocks --case=underscore
type OrderRepository interface {
	Save(ctx context.Context, order models.Order) error
	Get(ctx context.Context, uid string) (models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Exists(ctx context.Context, uid string) (bool, error)
	UpdateStatus(ctx context.Context, uid string, status models.OrderStatus) error
}

// OrderCache определяет контракт для высокопроизводительного
// хранения заказов в оперативной памяти.
//
//go:generate mockery --name=OrderCache --output=./mocks --case=underscore
type OrderCache interface {
	Set(uid string, order *models.Order)
	Get(uid string) (*models.Order, bool)
}

// OrderPublisher публикует событие о размещенном заказе в брокер.
//
//go:generate mockery --name=OrderPublisher --output=./mocks --case=underscore
type OrderPublisher interface {
	PublishPlaced(ctx context.Context, order models.Order) error
}

// OrderService предоставляет методы для управления заказами,
// включая их оформление, сохранение в БД и кэширование.
type OrderService struct {
	repo      OrderRepository // Используем интерфейс, а не struct
	cache     OrderCache      // Используем интерфейс
	publisher OrderPublisher  // может быть nil, если брокер не сконфигурирован
	validate  *validator.Validate
}

// NewOrderService принимает интерфейсы.
func NewOrderService(repo OrderRepository, orderCache OrderCache, publisher OrderPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		cache:     orderCache,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// PlaceOrder оформляет заказ: проверяет форму, генерирует номер,
// снимает снимок позиций корзины, считает итог и пишет заказ в журнал.
// Порядок строгий: валидация -> конструирование -> сохранение -> только
// после этого заказ считается оформленным. При ошибке сохранения ничего
// не кэшируется и не публикуется.
func (s *OrderService) PlaceOrder(ctx context.Context, info models.CheckoutInfo, lines []models.CartLine, price models.Pricing) (models.Order, error) {
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "Service.PlaceOrder")
	defer span.End()

	//1. Проверка формы
	if err := validateCheckout(info); err != nil {
		metric.CheckoutRejectedTotal.WithLabelValues("validation").Inc()
		return models.Order{}, err
	}

	//2. Генерация уникального номера заказа
	uid, err := s.generateOrderUID(ctx)
	if err != nil {
		return models.Order{}, err
	}
	span.SetAttributes(attribute.String("order_uid", uid))

	//3. Снимок позиций: заказ хранит копии значений,
	// дальнейшие изменения каталога и корзины его не затрагивают
	items := snapshotItems(lines)

	order := models.Order{
		OrderUID:       uid,
		CustomerName:   info.Name,
		Phone:          info.Phone,
		Email:          info.Email,
		Items:          items,
		Subtotal:       price.Subtotal,
		ShippingCost:   price.ShippingCost,
		Total:          price.Total,
		DeliveryMethod: info.DeliveryMethod,
		PaymentMethod:  info.PaymentMethod,
		District:       info.District,
		Address:        info.Address,
		Status:         models.StatusPending,
		DateCreated:    time.Now(),
	}

	start := time.Now()
	//4. Сохранение в журнал
	if err := s.repo.Save(ctx, order); err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("save", "error").Inc()
		metric.CheckoutRejectedTotal.WithLabelValues("db").Inc()
		return models.Order{}, fmt.Errorf("ошибка сохранения в БД: %w", err)
	}
	metric.DbOperationsTotal.WithLabelValues("save", "success").Inc()
	metric.DbDuration.WithLabelValues("save").Observe(time.Since(start).Seconds())
	metric.OrdersPlacedTotal.Inc()
	span.AddEvent("order сохранен в бд")

	//5. Кэш и событие для фулфилмента
	s.cache.Set(order.OrderUID, &order)
	if s.publisher != nil {
		// журнал - источник истины: неудачная публикация не отменяет заказ
		if err := s.publisher.PublishPlaced(ctx, order); err != nil {
			log.Printf("не удалось опубликовать событие о заказе %s: %v", order.OrderUID, err)
		}
	}

	slog.Info("Оформлен заказ",
		slog.String("order_uid", order.OrderUID),
		slog.Int("total", order.Total),
		sl.Traced(ctx),
	)
	return order, nil
}

// generateOrderUID подбирает свободный короткий номер вида ORD-123456.
// Коллизия при шести случайных цифрах маловероятна, но проверяем журнал
// и перегенерируем; последней страховкой служит первичный ключ таблицы.
func (s *OrderService) generateOrderUID(ctx context.Context) (string, error) {
	const attempts = 5
	for i := 0; i < attempts; i++ {
		uid := "ORD-" + gofakeit.Numerify("######")
		exists, err := s.repo.Exists(ctx, uid)
		if err != nil {
			return "", fmt.Errorf("ошибка при генерации номера заказа: %w", err)
		}
		if !exists {
			return uid, nil
		}
	}
	return "", fmt.Errorf("не удалось подобрать свободный номер заказа за %d попыток", attempts)
}

func validateCheckout(info models.CheckoutInfo) error {
	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Phone) == "" {
		missing = append(missing, "phone")
	}
	// при самовывозе район и адрес не нужны
	if info.DeliveryMethod != models.DeliveryPickup {
		if strings.TrimSpace(info.District) == "" {
			missing = append(missing, "district")
		}
		if strings.TrimSpace(info.Address) == "" {
			missing = append(missing, "address")
		}
	}
	if len(missing) > 0 {
		return &IncompleteCheckoutError{Fields: missing}
	}
	if !info.DeliveryMethod.IsValid() {
		return fmt.Errorf("неизвестный способ доставки: %q", info.DeliveryMethod)
	}
	if !info.PaymentMethod.IsValid() {
		return fmt.Errorf("неизвестный способ оплаты: %q", info.PaymentMethod)
	}
	return nil
}

// snapshotItems переводит позиции корзины в неизменяемый снимок заказа.
func snapshotItems(lines []models.CartLine) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Size:      l.SelectedSize,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		})
	}
	return items
}

// GetOrder - функция для получения заказа. Регистр id не важен.
func (s *OrderService) GetOrder(ctx context.Context, uid string) (models.Order, error) {
	//чтобы понимать, откуда пришел запрос
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "Service.GetOrder")
	defer span.End()
	//1. Поиск в кеше
	if fromCache, ok := s.cache.Get(uid); ok {
		metric.CacheHitsTotal.WithLabelValues("hit").Inc()
		return *fromCache, nil
	}
	metric.CacheHitsTotal.WithLabelValues("miss").Inc()

	span.SetAttributes(attribute.String("order_uid", uid))
	//2. возвращаем из БД, пробрасывая контекст
	found, err := s.repo.Get(ctx, uid)
	if err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("get", "error").Inc()
		return models.Order{}, fmt.Errorf("order не найден в БД %w", err)
	}

	//3. Нашли в бд, обновляем кеш
	s.cache.Set(uid, &found)
	metric.DbOperationsTotal.WithLabelValues("get", "success").Inc()

	return found, nil
}

// SetStatus выставляет заказу новый статус и возвращает обновленный заказ.
// Переходы разрешены любые, в том числе назад: админка правит ошибки
// руками, строгую прогрессию никто не навязывает.
func (s *OrderService) SetStatus(ctx context.Context, uid string, status models.OrderStatus) (models.Order, error) {
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "Service.SetStatus")
	defer span.End()

	if !status.IsValid() {
		return models.Order{}, fmt.Errorf("неизвестный статус заказа: %q", status)
	}

	span.SetAttributes(
		attribute.String("order_uid", uid),
		attribute.String("status", status.String()),
	)

	if err := s.repo.UpdateStatus(ctx, uid, status); err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("update_status", "error").Inc()
		return models.Order{}, err
	}
	metric.DbOperationsTotal.WithLabelValues("update_status", "success").Inc()

	// перечитываем заказ, чтобы вернуть актуальную запись и обновить кеш
	order, err := s.repo.Get(ctx, uid)
	if err != nil {
		return models.Order{}, err
	}
	s.cache.Set(order.OrderUID, &order)
	return order, nil
}

// ListOrders возвращает все заказы журнала для админки.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить список заказов: %w", err)
	}
	return orders, nil
}

// HandleOrderMessage - прием заказа из Kafka (заказы из других каналов продаж).
// Путь тот же, что и у заказа с витрины: парсинг -> валидация -> БД -> кеш.
func (s *OrderService) HandleOrderMessage(ctx context.Context, data []byte) error {
	tr := otel.Tracer("orderService")
	ctx, span := tr.Start(ctx, "HandleOrderMessage")
	defer span.End()

	var order models.Order

	//1. Парсинг
	if err := json.Unmarshal(data, &order); err != nil {
		return fmt.Errorf("ошибка при парсинге, игнорируем: %v", err)
	}

	span.SetAttributes(attribute.String("order_uid", order.OrderUID))
	//2. Валидация данных, до сохранения в бд
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := s.validateOrder(&order); err != nil {
		return fmt.Errorf("валидация не пройдена %v", err)
	}

	start := time.Now()
	//3. Сохранение в бд
	if err := s.repo.Save(ctx, order); err != nil {
		span.RecordError(err)
		metric.DbOperationsTotal.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("ошибка сохранения в БД: %v", err)
	}
	span.AddEvent("order сохранен в бд")

	metric.DbOperationsTotal.WithLabelValues("save", "success").Inc()
	metric.DbDuration.WithLabelValues("save").Observe(time.Since(start).Seconds())

	//4. Добавление в кеш
	s.cache.Set(order.OrderUID, &order)
	span.AddEvent("order добавлен в кеш")

	log.Printf("Успешно сохранен order: %s", order.OrderUID)
	return nil
}

// ReCache - функция для насыщения кэша при старте.
func (s *OrderService) ReCache(ctx context.Context) error {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("не удалось прочитать данные из БД при старте: %w", err)
	}

	for i := range orders {
		s.cache.Set(orders[i].OrderUID, &orders[i])
	}
	metric.CacheSize.Set(float64(len(orders)))
	log.Printf("Кэш успешно восстановлен: загружено %d записей", len(orders))
	return nil
}

// validateOrder - функция для валидации заказов.
func (s *OrderService) validateOrder(order *models.Order) error {
	if err := s.validate.Struct(order); err != nil {
		return err
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("заказ не содержит товаров")
	}
	if !order.Status.IsValid() {
		return fmt.Errorf("неизвестный статус заказа: %q", order.Status)
	}
	return nil
}
