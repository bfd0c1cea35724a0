package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linemk/storefront/internal/domain/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductStorage описывает методы для работы с каталогом товаров.
type ProductStorage interface {
	// ListProducts возвращает все товары в порядке возрастания id.
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// CreateProduct вставляет новый товар и возвращает созданную строку.
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	// UpdateProduct полностью заменяет строку товара по id.
	// Если строки нет, возвращает ErrProductNotFound, новая строка не создается.
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	// DeleteProduct удаляет товар по id. Отсутствие строки не считается ошибкой.
	DeleteProduct(ctx context.Context, id int64) error
}

// productRepository — конкретная реализация ProductStorage.
type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт новый репозиторий товаров.
func NewProductRepository(db *sql.DB) ProductStorage {
	return &productRepository{db: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := "SELECT id, name, description, price, image1, image2, image3 FROM products ORDER BY id ASC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price,
			&product.Image1, &product.Image2, &product.Image3); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `INSERT INTO products (name, description, price, image1, image2, image3)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, name, description, price, image1, image2, image3`
	created := &models.Product{}
	row := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.Image1, product.Image2, product.Image3)
	if err := row.Scan(&created.ID, &created.Name, &created.Description, &created.Price,
		&created.Image1, &created.Image2, &created.Image3); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", classifyError(err))
	}
	return created, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, price = $3, image1 = $4, image2 = $5, image3 = $6
	          WHERE id = $7
	          RETURNING id, name, description, price, image1, image2, image3`
	updated := &models.Product{}
	row := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.Image1, product.Image2, product.Image3, product.ID)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Price,
		&updated.Image1, &updated.Image2, &updated.Image3); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", classifyError(err))
	}
	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	// удаление идемпотентно: количество затронутых строк не проверяем
	if _, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
