package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
	"zhumagul-shop/internal/app"
	"zhumagul-shop/internal/cache"
	"zhumagul-shop/internal/cart"
	"zhumagul-shop/internal/catalog"
	"zhumagul-shop/internal/config"
	"zhumagul-shop/internal/db/conn"
	"zhumagul-shop/internal/db/repository"
	"zhumagul-shop/internal/handler"
	"zhumagul-shop/internal/kafka"
	"zhumagul-shop/internal/service"
)

type Application struct {
	cfg      *config.Config
	srv      *app.Server
	consumer *kafka.OrderConsumer
	producer *kafka.OrderProducer
	service  *service.OrderService
	cache    *cache.OrderCache
}

func NewApplication(cfg *config.Config) (*Application, error) {
	// Подключение к БД
	dbConn, err := conn.Connection(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("подключение к БД: %w", err)
	}

	if err = kafka.EnsureTopicExists(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic); err != nil {
		return nil, fmt.Errorf("создание Kafka topic: %w", err)
	}

	producer, err := kafka.NewProducer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic)
	if err != nil {
		return nil, fmt.Errorf("создание Kafka Producer: %w", err)
	}

	// Сборка слоев
	orderCache := cache.NewOrderCache(1*time.Minute, 30*time.Second)
	orderRepo := repository.NewOrderRepository(dbConn)
	orderService := service.NewOrderService(orderRepo, orderCache, producer)
	shopHandler := handler.NewShopHandler(
		catalog.NewSeededIndex(),
		cart.NewStore(),
		orderService,
		cfg.Shop.WhatsAppNumber,
	)
	srv := app.NewServer(shopHandler)

	consumer, err := kafka.NewOrderConsumer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, orderService.HandleOrderMessage)
	if err != nil {
		return nil, fmt.Errorf("создание Kafka Consumer: %w", err)
	}

	return &Application{
		cfg:      cfg,
		srv:      srv,
		consumer: consumer,
		producer: producer,
		service:  orderService,
		cache:    orderCache,
	}, nil
}

func (app *Application) Run(ctx context.Context) error {
	if err := app.service.ReCache(ctx); err != nil {
		log.Printf("Не удалось восстановить кэш из БД: %v", err)
	}

	// Запуск уборщика кеша
	go func() {
		if err := app.cache.GC(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("GC кеша остановился с ошибкой: %v", err)
		}
	}()

	// Запуск консьюмера
	go func() {
		log.Println("Запуск Consumer...")
		if err := app.consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Consumer остановился с ошибкой: %v", err)
		}
	}()

	go func() {
		log.Printf("Запуск HTTP сервера на %s", app.cfg.HTTP.Addr)
		if err := app.srv.Run(app.cfg.HTTP.Addr); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP сервер в штатном режиме остановлен")
			} else {
				log.Fatalf("Критическая ошибка сервера: %v", err)
			}
		}
	}()

	if app.cfg.Shop.DemoOrders {
		if err := app.producer.SendDemo(ctx); err != nil {
			log.Printf("Не удалось отправить демо-заказ в Kafka: %v", err)
		}
	}

	// Ожидание сигнала завершения
	<-ctx.Done()
	log.Println("Получен сигнал завершения (Graceful Shutdown)...")

	// Даем 5 секунд на завершение текущих запросов
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.Shutdown(shutdownCtx)

	return nil
}

func (app *Application) Shutdown(ctx context.Context) {
	if err := app.srv.Stop(ctx); err != nil {
		log.Printf("Ошибка остановки HTTP сервера: %v", err)
	}
	if err := app.consumer.Close(); err != nil {
		log.Printf("Ошибка остановки Kafka Consumer: %v", err)
	}
	if err := app.producer.Close(); err != nil {
		log.Printf("Ошибка остановки Kafka Producer: %v", err)
	}
	app.cache.Stop()
}
