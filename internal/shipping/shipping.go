// Package shipping содержит справочник стоимости доставки по районам города.
// Справочник статичный: UI показывает закрытый список районов,
// в рантайме таблица только читается.
package shipping

import (
	"log"
	"sort"
	"zhumagul-shop/internal/models"
)

// FallbackRate - тариф для неизвестного района. Неизвестное имя означает
// устаревшие или испорченные данные на клиенте, а не ошибку пользователя,
// поэтому вместо отказа берем нулевую стоимость и пишем предупреждение в лог.
var FallbackRate = models.District{Name: "", Cost: 0, Duration: ""}

var rates = map[string]models.District{
	"Аль-Фараби": {Name: "Аль-Фараби", Cost: 800, Duration: "60 мин"},
	"Медеу":      {Name: "Медеу", Cost: 1200, Duration: "90 мин"},
	"Бостандык":  {Name: "Бостандык", Cost: 700, Duration: "45 мин"},
	"Алмалы":     {Name: "Алмалы", Cost: 500, Duration: "40 мин"},
	"Ауэзов":     {Name: "Ауэзов", Cost: 900, Duration: "70 мин"},
	"Наурызбай":  {Name: "Наурызбай", Cost: 1500, Duration: "120 мин"},
	"Жетысу":     {Name: "Жетысу", Cost: 800, Duration: "60 мин"},
	"Турксиб":    {Name: "Турксиб", Cost: 1000, Duration: "80 мин"},
	"Алатау":     {Name: "Алатау", Cost: 1300, Duration: "100 мин"},
}

// RateFor возвращает тариф доставки по имени района.
// Для неизвестного района возвращает FallbackRate и ok=false.
func RateFor(district string) (models.District, bool) {
	rate, ok := rates[district]
	if !ok {
		log.Printf("shipping: неизвестный район %q, применяем нулевой тариф", district)
		return FallbackRate, false
	}
	return rate, true
}

// Districts возвращает список районов для селектора на витрине,
// отсортированный по имени.
func Districts() []models.District {
	out := make([]models.District, 0, len(rates))
	for _, d := range rates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
