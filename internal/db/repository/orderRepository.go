package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"zhumagul-shop/internal/models"
)

// OrderRepository - журнал заказов в Postgres. Записи только добавляются,
// единственное изменяемое поле - статус. Уникальность order_uid помимо
// проверки Exists страхуется первичным ключом таблицы.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save - метод для сохранения заказа в БД.
// Заказ и его позиции пишутся в одной транзакции: либо сохранилось все,
// либо журнал не изменился.
func (r *OrderRepository) Save(ctx context.Context, order models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() { //при ошибке откатываем транзакцию
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("не удалось откатить транзакцию %v", err)
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (order_uid, customer_name, phone, email, subtotal, shipping_cost, total, delivery_method, payment_method, district, address, status, date_created)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		order.OrderUID, order.CustomerName, order.Phone, order.Email, order.Subtotal, order.ShippingCost,
		order.Total, order.DeliveryMethod, order.PaymentMethod, order.District, order.Address, order.Status, order.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении сущности order в БД, error: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_uid, product_id, name, price, size, quantity, line_total)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			order.OrderUID, item.ProductID, item.Name, item.Price, item.Size, item.Quantity, item.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("ошибка при добавлении сущности item в бд, error: %w", err)
		}
	}

	// В случая успеха фиксируем наши изменения
	return tx.Commit()
}

// Get - метод получения заказа по id. Поиск не зависит от регистра id.
func (r *OrderRepository) Get(ctx context.Context, uid string) (models.Order, error) {
	var order models.Order

	err := r.db.QueryRowContext(ctx,
		`SELECT order_uid, customer_name, phone, email, subtotal, shipping_cost, total, delivery_method, payment_method, district, address, status, date_created
         FROM orders WHERE LOWER(order_uid) = LOWER($1)`,
		uid).Scan(&order.OrderUID, &order.CustomerName, &order.Phone, &order.Email, &order.Subtotal,
		&order.ShippingCost, &order.Total, &order.DeliveryMethod, &order.PaymentMethod,
		&order.District, &order.Address, &order.Status, &order.DateCreated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, fmt.Errorf("order %q: %w", uid, models.ErrOrderNotFound)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("error при получении orders: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, name, price, size, quantity, line_total FROM order_items WHERE order_uid = $1`,
		order.OrderUID)
	if err != nil {
		return models.Order{}, fmt.Errorf("error при получении items: %w", err)
	}
	defer func() {
		if err = rows.Close(); err != nil {
			log.Printf("ошибка при закрытии rows: %v", err)
		}
	}()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Size, &item.Quantity, &item.LineTotal); err != nil {
			return models.Order{}, fmt.Errorf("error при получении items: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

// Exists - проверка занятости id. Используется при генерации номера заказа.
func (r *OrderRepository) Exists(ctx context.Context, uid string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE LOWER(order_uid) = LOWER($1))`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке id заказа: %w", err)
	}
	return exists, nil
}

// UpdateStatus меняет статус заказа и возвращает models.ErrOrderNotFound,
// если заказа с таким id нет.
func (r *OrderRepository) UpdateStatus(ctx context.Context, uid string, status models.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE LOWER(order_uid) = LOWER($2)`, status, uid)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %q: %w", uid, models.ErrOrderNotFound)
	}
	return nil
}

// GetAll - возвращает все заказы журнала (прогрев кеша и список в админке).
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	rows, err := r.db.QueryContext(ctx, "SELECT order_uid FROM orders ORDER BY date_created")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении всех заказов: %w", err)
	}
	defer func() {
		if err = rows.Close(); err != nil {
			log.Printf("ошибка при закрытии rows: %v", err)
		}
	}()

	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			continue
		}

		order, err := r.Get(ctx, uid)
		if err == nil {
			orders = append(orders, order)
		}
	}
	return orders, nil
}
