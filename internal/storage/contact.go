package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/storefront/internal/domain/models"
)

// ContactStorage описывает методы для работы с обращениями.
type ContactStorage interface {
	// ListContacts возвращает все обращения в порядке возрастания id.
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	// CreateContact вставляет новое обращение и возвращает созданную строку.
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	// DeleteContact удаляет обращение по id. Отсутствие строки не считается ошибкой.
	DeleteContact(ctx context.Context, id int64) error
}

// contactRepository — конкретная реализация ContactStorage.
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository создаёт новый репозиторий обращений.
func NewContactRepository(db *sql.DB) ContactStorage {
	return &contactRepository{db: db}
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	query := "SELECT id, name, email, phone, message FROM contact ORDER BY id ASC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Message); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `INSERT INTO contact (name, email, phone, message) VALUES ($1, $2, $3, $4)
	          RETURNING id, name, email, phone, message`
	created := &models.Contact{}
	row := r.db.QueryRowContext(ctx, query, contact.Name, contact.Email, contact.Phone, contact.Message)
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Message); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", classifyError(err))
	}
	return created, nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, id int64) error {
	// удаление идемпотентно: количество затронутых строк не проверяем
	if _, err := r.db.ExecContext(ctx, "DELETE FROM contact WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
