// Package notify формирует человекочитаемую сводку заказа
// для отправки магазину через WhatsApp (ссылка wa.me с готовым текстом).
// Сам канал передачи пакет не трогает - только текст и ссылку.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"zhumagul-shop/internal/models"
)

var deliveryLabels = map[models.DeliveryMethod]string{
	models.DeliveryYandex:   "Яндекс Доставка",
	models.DeliveryStandard: "Обычная доставка",
	models.DeliveryPickup:   "Самовывоз",
}

var paymentLabels = map[models.PaymentMethod]string{
	models.PaymentKaspi: "Kaspi QR",
	models.PaymentCash:  "Наличными",
	models.PaymentCard:  "Картой",
}

// SummaryText собирает текст сводки заказа: клиент, телефон, доставка,
// адрес, оплата, позиции и итог.
func SummaryText(order models.Order) string {
	var b strings.Builder

	b.WriteString("🛍 *НОВЫЙ ЗАКАЗ (Zhumagul)*\n\n")
	fmt.Fprintf(&b, "👤 *Клиент:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 *Телефон:* %s\n", order.Phone)
	fmt.Fprintf(&b, "🚚 *Доставка:* %s\n", deliveryLabels[order.DeliveryMethod])
	if order.DeliveryMethod != models.DeliveryPickup {
		fmt.Fprintf(&b, "🏙 *Район:* %s\n", order.District)
		fmt.Fprintf(&b, "📍 *Адрес:* %s\n", order.Address)
	}
	fmt.Fprintf(&b, "💳 *Оплата:* %s\n\n", paymentLabels[order.PaymentMethod])

	b.WriteString("👗 *Товары:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s (%s) x%d - %d ₸\n", item.Name, item.Size, item.Quantity, item.LineTotal)
	}

	if order.ShippingCost > 0 {
		fmt.Fprintf(&b, "\n🚚 *Доставка:* %d ₸", order.ShippingCost)
	}
	fmt.Fprintf(&b, "\n💰 *ИТОГО:* %d ₸", order.Total)

	return b.String()
}

// Link возвращает ссылку wa.me с предзаполненной сводкой заказа.
func Link(whatsAppNumber string, order models.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", whatsAppNumber, url.QueryEscape(SummaryText(order)))
}
