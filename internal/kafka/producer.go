package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"zhumagul-shop/internal/models"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit"
)

// OrderProducer публикует события о заказах в топик.
// После оформления заказа на витрине событие уходит фулфилменту и аналитике.
type OrderProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(broker []string, topic string) (*OrderProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll // Ждем подтверждения от всех брокеров

	producer, err := sarama.NewSyncProducer(broker, config)
	if err != nil {
		return &OrderProducer{}, fmt.Errorf("не удалось создать продюсера: %v", err)
	}
	return &OrderProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

// PublishPlaced отправляет размещенный заказ в топик.
// Ключ сообщения - номер заказа, чтобы события одного заказа
// попадали в одну партицию.
func (pr *OrderProducer) PublishPlaced(_ context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации заказа %s: %v", order.OrderUID, err)
	}

	message := &sarama.ProducerMessage{
		Topic: pr.topic,
		Key:   sarama.StringEncoder(order.OrderUID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := pr.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("ошибка при отправке данных в кафку: %v", err)
	}
	log.Printf("Событие о заказе %s отправлено (partition %d, offset %d)", order.OrderUID, partition, offset)
	return nil
}

// SendDemo публикует сгенерированный заказ - удобно для локальной проверки
// пути приема заказов из внешних каналов. Включается флагом SHOP_DEMO_ORDERS.
func (pr *OrderProducer) SendDemo(ctx context.Context) error {
	return pr.PublishPlaced(ctx, generateFakeOrder())
}

func generateFakeOrder() models.Order {
	price := gofakeit.Number(10000, 50000)
	qty := gofakeit.Number(1, 3)
	item := models.OrderItem{
		ProductID: "p" + gofakeit.Numerify("##"),
		Name:      "Платье «" + gofakeit.FirstName() + "»",
		Price:     price,
		Size:      gofakeit.RandString([]string{"XS", "S", "M", "L", "XL"}),
		Quantity:  qty,
		LineTotal: price * qty,
	}
	subtotal := item.LineTotal
	shipping := 800

	return models.Order{
		OrderUID:       "ORD-" + gofakeit.Numerify("######"),
		CustomerName:   gofakeit.Name(),
		Phone:          "+77" + gofakeit.Numerify("#########"),
		Email:          gofakeit.Email(),
		Items:          []models.OrderItem{item},
		Subtotal:       subtotal,
		ShippingCost:   shipping,
		Total:          subtotal + shipping,
		DeliveryMethod: models.DeliveryStandard,
		PaymentMethod:  models.PaymentKaspi,
		District:       "Аль-Фараби",
		Address:        gofakeit.Address().Address,
		Status:         models.StatusPending,
		DateCreated:    time.Now(),
	}
}

func (pr *OrderProducer) Close() error {
	return pr.producer.Close()
}
