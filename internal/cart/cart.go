// Package cart содержит корзину покупателя: позиции с ключом (товар, размер),
// слияние дубликатов, нижнюю границу количества и подсчет промежуточной суммы.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"zhumagul-shop/internal/models"
)

// ErrInvalidSize возвращается, если выбранного размера нет у товара.
var ErrInvalidSize = errors.New("у товара нет такого размера")

// Cart - потокобезопасная корзина одной сессии.
type Cart struct {
	lines []models.CartLine
	sync.RWMutex
}

// New создает пустую корзину.
func New() *Cart {
	return &Cart{}
}

// AddItem кладет товар выбранного размера в корзину.
// Если позиция (товар, размер) уже есть - увеличивает количество на 1,
// дубликат строки не создается.
func (c *Cart) AddItem(product models.Product, size string) error {
	if !product.HasSize(size) {
		return fmt.Errorf("товар %q, размер %q: %w", product.ID, size, ErrInvalidSize)
	}

	c.Lock()
	defer c.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID && c.lines[i].SelectedSize == size {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, models.CartLine{
		Product:      product,
		SelectedSize: size,
		Quantity:     1,
	})
	return nil
}

// RemoveItem удаляет позицию (товар, размер). Отсутствующая позиция - no-op.
func (c *Cart) RemoveItem(productID, size string) {
	c.Lock()
	defer c.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].SelectedSize == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity меняет количество позиции на delta.
// Количество никогда не опускается ниже 1: удаление позиции только явное,
// через RemoveItem. Отсутствующая позиция - no-op.
func (c *Cart) UpdateQuantity(productID, size string, delta int) {
	c.Lock()
	defer c.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].SelectedSize == size {
			c.lines[i].Quantity = max(1, c.lines[i].Quantity+delta)
			return
		}
	}
}

// Lines возвращает копию позиций корзины.
func (c *Cart) Lines() []models.CartLine {
	c.RLock()
	defer c.RUnlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal - сумма (цена * количество) по всем позициям.
func (c *Cart) Subtotal() int {
	c.RLock()
	defer c.RUnlock()

	sum := 0
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

// Len возвращает число позиций в корзине.
func (c *Cart) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.lines)
}

// Clear очищает корзину. Вызывается после успешного оформления заказа.
func (c *Cart) Clear() {
	c.Lock()
	defer c.Unlock()
	c.lines = nil
}
