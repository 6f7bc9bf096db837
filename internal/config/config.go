package config

import "os"

type Config struct {
	DB          DBConfig
	KafkaConfig KafkaConfig
	HTTP        HTTPConfig
	Shop        ShopConfig
}
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type HTTPConfig struct {
	Addr string
}

type ShopConfig struct {
	// Номер WhatsApp, на который уходит сводка заказа (ссылка wa.me).
	WhatsAppNumber string
	// DemoOrders включает генерацию демонстрационного заказа в Kafka при старте.
	DemoOrders bool
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	Group   string
}

func LoadConfig() *Config {
	dbconfig := DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "user"),
		Password: getEnv("DB_PASSWORD", "pass"),
		DBName:   getEnv("DB_NAME", "shop_db"),
	}

	kafkaConf := KafkaConfig{
		Brokers: []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   getEnv("KAFKA_TOPIC", "shop.orders"),
	}

	httpConf := HTTPConfig{
		Addr: getEnv("HTTP_ADDR", ":8080"),
	}

	shopConf := ShopConfig{
		WhatsAppNumber: getEnv("SHOP_WHATSAPP", "77770000000"),
		DemoOrders:     getEnv("SHOP_DEMO_ORDERS", "") == "true",
	}

	return &Config{DB: dbconfig, KafkaConfig: kafkaConf, HTTP: httpConf, Shop: shopConf}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
