// Package pricing считает итоговую стоимость заказа:
// промежуточная сумма корзины + доставка по выбранному району.
package pricing

import (
	"zhumagul-shop/internal/models"
	"zhumagul-shop/internal/shipping"
)

// ComputeTotal - чистая функция расчета стоимости.
// При самовывозе доставка всегда 0, район игнорируется.
// Пустая корзина (subtotal 0) - валидный вход: запрет оформления пустого
// заказа - ответственность вызывающего кода.
func ComputeTotal(subtotal int, method models.DeliveryMethod, district string) models.Pricing {
	shippingCost := 0
	if method != models.DeliveryPickup {
		rate, _ := shipping.RateFor(district)
		shippingCost = rate.Cost
	}

	return models.Pricing{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        subtotal + shippingCost,
	}
}
