// Package catalog содержит индекс товаров магазина: хранение,
// фильтрацию для витрины и операции админки (добавление/удаление товара, отзывы).
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"zhumagul-shop/internal/models"
)

var (
	// ErrDuplicateID возвращается при попытке добавить товар с уже занятым id.
	ErrDuplicateID = errors.New("товар с таким id уже существует")
	// ErrProductNotFound возвращается, когда товара нет в индексе.
	ErrProductNotFound = errors.New("товар не найден")
)

// CategoryAll - значение категории, при котором фильтр по категории не применяется.
const CategoryAll = "Все"

// Filter описывает параметры выборки каталога для витрины.
type Filter struct {
	// Query - подстрока для поиска без учета регистра по названию И описанию
	// (достаточно совпадения в одном из полей).
	Query string
	// Category - точное совпадение категории, "Все" или пусто - без фильтра.
	Category string
	// IDs - необязательное ограничение выборки набором id
	// (используется для страницы избранного).
	IDs []string
}

// Index - потокобезопасный индекс товаров.
type Index struct {
	products map[string]models.Product
	order    []string // порядок добавления, чтобы выдача была стабильной
	sync.RWMutex
}

// NewIndex создает пустой индекс товаров.
func NewIndex() *Index {
	return &Index{products: make(map[string]models.Product)}
}

// Add добавляет товар в индекс. Повторный id отклоняется.
func (idx *Index) Add(p models.Product) error {
	idx.Lock()
	defer idx.Unlock()

	if _, exists := idx.products[p.ID]; exists {
		return fmt.Errorf("добавление товара %q: %w", p.ID, ErrDuplicateID)
	}
	idx.products[p.ID] = p
	idx.order = append(idx.order, p.ID)
	return nil
}

// Remove удаляет товар из индекса. Отсутствующий id - ошибка,
// чтобы админка могла показать "товар не найден", а не промолчать.
func (idx *Index) Remove(id string) error {
	idx.Lock()
	defer idx.Unlock()

	if _, exists := idx.products[id]; !exists {
		return fmt.Errorf("удаление товара %q: %w", id, ErrProductNotFound)
	}
	delete(idx.products, id)
	for i, oid := range idx.order {
		if oid == id {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get возвращает товар по id.
func (idx *Index) Get(id string) (models.Product, error) {
	idx.RLock()
	defer idx.RUnlock()

	p, ok := idx.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("товар %q: %w", id, ErrProductNotFound)
	}
	return p, nil
}

// AddReview добавляет отзыв к товару. Коллекция отзывов только пополняется.
func (idx *Index) AddReview(productID string, review models.Review) error {
	idx.Lock()
	defer idx.Unlock()

	p, ok := idx.products[productID]
	if !ok {
		return fmt.Errorf("отзыв к товару %q: %w", productID, ErrProductNotFound)
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	p.Reviews = append(p.Reviews, review)
	idx.products[productID] = p
	return nil
}

// List возвращает товары, проходящие фильтр, в порядке добавления.
func (idx *Index) List(f Filter) []models.Product {
	idx.RLock()
	defer idx.RUnlock()

	var allowed map[string]struct{}
	if f.IDs != nil {
		allowed = make(map[string]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			allowed[id] = struct{}{}
		}
	}

	query := strings.ToLower(f.Query)
	result := make([]models.Product, 0, len(idx.order))
	for _, id := range idx.order {
		p := idx.products[id]
		if !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[p.ID]; !ok {
				continue
			}
		}
		result = append(result, p)
	}
	return result
}

func matchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
