// Package models содержит описания структур данных (DTO),
// которые используются во всем приложении и для маппинга JSON/DB.
package models

import "time"

// DeliveryMethod - способ доставки заказа.
type DeliveryMethod string

const (
	DeliveryYandex   DeliveryMethod = "yandex"   // Яндекс Доставка
	DeliveryStandard DeliveryMethod = "standard" // обычный курьер
	DeliveryPickup   DeliveryMethod = "pickup"   // самовывоз из бутика
)

// IsValid проверяет, что значение входит в закрытый список способов доставки.
func (m DeliveryMethod) IsValid() bool {
	switch m {
	case DeliveryYandex, DeliveryStandard, DeliveryPickup:
		return true
	}
	return false
}

// PaymentMethod - способ оплаты заказа.
type PaymentMethod string

const (
	PaymentKaspi PaymentMethod = "kaspi"
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
)

// IsValid проверяет, что значение входит в закрытый список способов оплаты.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentKaspi, PaymentCash, PaymentCard:
		return true
	}
	return false
}

// OrderStatus - статус заказа. Начальный статус всегда pending,
// админка может выставить любой статус из списка (в том числе назад).
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// IsValid проверяет, что статус входит в закрытый список.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Review - отзыв покупателя о товаре. Коллекция отзывов у товара только пополняется.
type Review struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name" validate:"required"`
	Rating   int       `json:"rating" validate:"min=1,max=5"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}

// Product представляет товар каталога. Цена хранится в тенге целым числом.
type Product struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       int      `json:"price" validate:"min=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes" validate:"required,gt=0"`
	Colors      []string `json:"colors"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// HasSize сообщает, доступен ли у товара указанный размер.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// CartLine - позиция корзины. Ключ позиции - пара (id товара, выбранный размер):
// две строки с одним товаром, но разными размерами - разные позиции.
type CartLine struct {
	Product      Product `json:"product"`
	SelectedSize string  `json:"selected_size"`
	Quantity     int     `json:"quantity"` // всегда >= 1
}

// LineTotal - стоимость позиции с учетом количества.
func (l CartLine) LineTotal() int {
	return l.Product.Price * l.Quantity
}

// District - справочная запись о районе доставки. Данные статичные,
// в рантайме только читаются.
type District struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`     // стоимость доставки в тенге
	Duration string `json:"duration"` // отображаемая оценка времени
}

// Pricing - результат расчета стоимости заказа.
type Pricing struct {
	Subtotal     int `json:"subtotal"`
	ShippingCost int `json:"shipping_cost"`
	Total        int `json:"total"`
}

// CheckoutInfo - данные формы оформления заказа.
// Район и адрес обязательны для всех способов доставки, кроме самовывоза.
type CheckoutInfo struct {
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email,omitempty"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	District       string         `json:"district"`
	Address        string         `json:"address"`
}

// OrderItem - снимок позиции корзины на момент оформления заказа.
// Изменения каталога после оформления не должны менять уже размещенный заказ.
type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int    `json:"price" validate:"min=0"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	LineTotal int    `json:"line_total"`
}

// Order представляет размещенный заказ. Записи журнала заказов неизменяемы,
// кроме поля статуса; заказы никогда не удаляются.
type Order struct {
	OrderUID       string         `json:"order_uid" validate:"required"`
	CustomerName   string         `json:"customer_name" validate:"required"`
	Phone          string         `json:"phone" validate:"required"`
	Email          string         `json:"email,omitempty"`
	Items          []OrderItem    `json:"items" validate:"required,gt=0,dive"`
	Subtotal       int            `json:"subtotal" validate:"min=0"`
	ShippingCost   int            `json:"shipping_cost" validate:"min=0"`
	Total          int            `json:"total" validate:"min=0"`
	DeliveryMethod DeliveryMethod `json:"delivery_method" validate:"required"`
	PaymentMethod  PaymentMethod  `json:"payment_method" validate:"required"`
	District       string         `json:"district"`
	Address        string         `json:"address"`
	Status         OrderStatus    `json:"status" validate:"required"`
	DateCreated    time.Time      `json:"date_created"`
}
