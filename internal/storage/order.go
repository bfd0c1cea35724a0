package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/storefront/internal/domain/models"
)

// OrderStorage описывает методы для работы с заказами.
type OrderStorage interface {
	// ListOrders возвращает все заказы в порядке возрастания id.
	ListOrders(ctx context.Context) ([]*models.Order, error)
	// CreateOrder вставляет новый заказ (корзина уже сериализована в JSON)
	// и возвращает созданную строку.
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// DeleteOrder удаляет заказ по id. Отсутствие строки не считается ошибкой.
	DeleteOrder(ctx context.Context, id int64) error
}

// orderRepository — конкретная реализация OrderStorage.
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sql.DB) OrderStorage {
	return &orderRepository{db: db}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT id, first_name, last_name, address, phone, building, apartment, cart
	          FROM orders ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.FirstName, &order.LastName, &order.Address,
			&order.Phone, &order.Building, &order.Apartment, &order.Cart); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	query := `INSERT INTO orders (first_name, last_name, address, phone, building, apartment, cart)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, first_name, last_name, address, phone, building, apartment, cart`
	created := &models.Order{}
	// cart передается текстом, колонка JSONB приводит тип на стороне базы
	row := r.db.QueryRowContext(ctx, query,
		order.FirstName, order.LastName, order.Address, order.Phone,
		order.Building, order.Apartment, string(order.Cart))
	if err := row.Scan(&created.ID, &created.FirstName, &created.LastName, &created.Address,
		&created.Phone, &created.Building, &created.Apartment, &created.Cart); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", classifyError(err))
	}
	return created, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	// удаление идемпотентно: количество затронутых строк не проверяем
	if _, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
