package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"zhumagul-shop/internal/config"
	"zhumagul-shop/internal/trace"
)

func main() {
	// Главный контекст, который передаем дальше
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Загрузка конфигурации
	cfg := config.LoadConfig()

	tp, err := trace.InitTracer(ctx)
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Ошибка при инициализации приложения: %v", err)
	}
	if err = application.Run(ctx); err != nil {
		log.Fatalf("Ошибка при запуске приложения: %v", err)
	}
	log.Println("Сервис успешно остановлен")
}
