package kafka

import (
	"context"
	"fmt"
	"log"
	"zhumagul-shop/internal/metric"

	"github.com/IBM/sarama"
)

type MessageProcessor func(context.Context, []byte) error

// OrderConsumer принимает заказы из внешних каналов продаж (топик брокера)
// и передает их процессору - сервису, который валидирует и сохраняет.
type OrderConsumer struct {
	consumer  sarama.Consumer
	topic     string
	processor MessageProcessor
}

func NewOrderConsumer(broker []string, topic string, processor MessageProcessor) (*OrderConsumer, error) {
	conf := sarama.NewConfig()
	// Указываем, откуда будет читать наш консьюмер
	conf.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumer, err := sarama.NewConsumer(broker, conf)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании консьюмера: %w", err)
	}
	return &OrderConsumer{consumer: consumer, topic: topic, processor: processor}, nil
}

// Start читает сообщения партиции до отмены контекста.
func (c *OrderConsumer) Start(ctx context.Context) error {
	//подключение к партиции 0, читаем с новых сообщений
	partitionConsumer, err := c.consumer.ConsumePartition(c.topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к партиции: %w", err)
	}
	defer func() {
		if err := partitionConsumer.Close(); err != nil {
			log.Printf("ошибка при закрытии partitionConsumer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done(): //graceful shutdown
			log.Println("Kafka consumer stopping...")
			return ctx.Err()
		case message := <-partitionConsumer.Messages():
			if err := c.processor(ctx, message.Value); err != nil {
				log.Printf("Ошибка обработки сообщения: %v", err)
				metric.KafkaMessagesTotal.WithLabelValues("error").Inc()
			} else {
				metric.KafkaMessagesTotal.WithLabelValues("success").Inc()
			}
		}
	}
}

func (c *OrderConsumer) Close() error {
	return c.consumer.Close()
}
