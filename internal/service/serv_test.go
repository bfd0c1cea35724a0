package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
	"github.com/linemk/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
)

// fakeContactRepo — фиктивная реализация ContactStorage.
type fakeContactRepo struct {
	contacts []*models.Contact
	err      error
}

func (f *fakeContactRepo) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	return f.contacts, f.err
}

func (f *fakeContactRepo) CreateContact(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *c
	created.ID = int64(len(f.contacts) + 1)
	f.contacts = append(f.contacts, &created)
	return &created, nil
}

func (f *fakeContactRepo) DeleteContact(ctx context.Context, id int64) error {
	return f.err
}

// fakeProductRepo — фиктивная реализация ProductStorage.
type fakeProductRepo struct {
	err error
}

func (f *fakeProductRepo) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return nil, f.err
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return nil, f.err
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return nil, f.err
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	return f.err
}

func TestContactService_Create_AssignsID(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := service.NewContactService(newTestLogger(), repo)

	created, err := svc.Create(context.Background(), &models.Contact{Name: "A", Email: "a@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// следующий контакт получает новый id
	second, err := svc.Create(context.Background(), &models.Contact{Name: "B", Email: "b@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestContactService_Create_RepoError(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("db down")}
	svc := service.NewContactService(newTestLogger(), repo)

	created, err := svc.Create(context.Background(), &models.Contact{Name: "A"})
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "service.ContactService.Create")
}

func TestProductService_Update_NotFoundPassesThrough(t *testing.T) {
	// Ошибка отсутствия строки должна доходить до обработчика через обертки.
	repo := &fakeProductRepo{err: storage.ErrProductNotFound}
	svc := service.NewProductService(newTestLogger(), repo)

	updated, err := svc.Update(context.Background(), &models.Product{ID: 99})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))
}

func TestProductService_Delete_RepoError(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("db down")}
	svc := service.NewProductService(newTestLogger(), repo)

	err := svc.Delete(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service.ProductService.Delete")
}
