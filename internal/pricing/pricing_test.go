package pricing

import (
	"testing"
	"zhumagul-shop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_StandardDelivery(t *testing.T) {
	price := ComputeTotal(13000, models.DeliveryStandard, "Аль-Фараби")

	assert.Equal(t, 13000, price.Subtotal)
	assert.Equal(t, 800, price.ShippingCost)
	assert.Equal(t, 13800, price.Total)
}

func TestComputeTotal_PickupIgnoresDistrict(t *testing.T) {
	// при самовывозе доставка 0, какой бы район ни был выбран
	for _, district := range []string{"Аль-Фараби", "Медеу", "Несуществующий район", ""} {
		price := ComputeTotal(10000, models.DeliveryPickup, district)

		assert.Equal(t, 0, price.ShippingCost, "district=%q", district)
		assert.Equal(t, 10000, price.Total, "district=%q", district)
	}
}

func TestComputeTotal_UnknownDistrictFallsBackToZero(t *testing.T) {
	price := ComputeTotal(5000, models.DeliveryYandex, "Несуществующий район")

	assert.Equal(t, 0, price.ShippingCost)
	assert.Equal(t, 5000, price.Total)
}

func TestComputeTotal_EmptyCart(t *testing.T) {
	// пустая корзина - валидный вход: 0 + доставка,
	// запрет пустого заказа - дело вызывающего кода
	price := ComputeTotal(0, models.DeliveryStandard, "Аль-Фараби")

	assert.Equal(t, 0, price.Subtotal)
	assert.Equal(t, 800, price.ShippingCost)
	assert.Equal(t, 800, price.Total)
}
