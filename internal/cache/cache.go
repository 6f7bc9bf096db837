package cache

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"zhumagul-shop/internal/metric"
	"zhumagul-shop/internal/models"
)

// Хранить последние запрошенные заказы в памяти (map),
// чтобы быстро отдавать их по повторному запросу без похода в БД.
type cacheItem struct {
	data      *models.Order
	expiresAt int64
}

type OrderCache struct {
	items             map[string]cacheItem
	defaultExpiration time.Duration //Это стандартное время жизни.
	cleanupInterval   time.Duration //Это частота работы нашего "уборщика", который чистит кеш
	sync.RWMutex
	ticker *time.Ticker
}

func NewOrderCache(defaultExpiration, cleanupInterval time.Duration) *OrderCache {
	c := &OrderCache{
		items:             make(map[string]cacheItem),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		ticker:            time.NewTicker(cleanupInterval),
	}
	return c
}

// Ключи нормализуются к нижнему регистру: поиск заказа по id
// не зависит от регистра.
func normalize(uid string) string {
	return strings.ToLower(uid)
}

func (ch *OrderCache) Set(uid string, order *models.Order) {
	ch.Lock()
	defer ch.Unlock()
	key := normalize(uid)
	_, exists := ch.items[key]
	//При сохранении указываем время жизни, когда нужно удалить объект
	expiration := time.Now().Add(ch.defaultExpiration).UnixNano()
	ch.items[key] = cacheItem{
		data:      order,
		expiresAt: expiration,
	}
	if !exists {
		metric.CacheSize.Inc()
	}
}

func (ch *OrderCache) Get(uid string) (*models.Order, bool) {
	ch.RLock()
	defer ch.RUnlock()

	res, ok := ch.items[normalize(uid)]
	if !ok {
		return nil, false
	}

	// Если ключ есть, проверяем, не протух ли он
	if time.Now().UnixNano() > res.expiresAt {
		return nil, false
	}

	return res.data, true
}

func (ch *OrderCache) GC(ctx context.Context) error {
	log.Println("Начинаем проверку кеша")
	for {
		select {
		case <-ch.ticker.C:
			ch.Lock()
			now := time.Now().UnixNano()
			deletedCounter := 0
			for key, item := range ch.items {
				if now > item.expiresAt { //проверка, что настало время очистки
					metric.CacheSize.Dec()
					delete(ch.items, key)
					deletedCounter++
				}
			}
			if deletedCounter > 0 {
				log.Printf("GC: удалено %d просроченных записей", deletedCounter)
			}
			ch.Unlock()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (ch *OrderCache) Stop() {
	defer ch.ticker.Stop()
}
