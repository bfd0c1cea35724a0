package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/storage"
)

// ContactService описывает операции над обращениями формы обратной связи.
type ContactService interface {
	List(ctx context.Context) ([]*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	log         *slog.Logger
	contactRepo storage.ContactStorage
}

// NewContactService создаёт сервис обращений.
func NewContactService(log *slog.Logger, contactRepo storage.ContactStorage) ContactService {
	return &contactService{log: log, contactRepo: contactRepo}
}

func (s *contactService) List(ctx context.Context) ([]*models.Contact, error) {
	const op = "service.ContactService.List"

	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		s.log.Error("failed to list contacts", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return contacts, nil
}

func (s *contactService) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	const op = "service.ContactService.Create"
	logger := s.log.With(slog.String("op", op), slog.String("email", contact.Email))

	created, err := s.contactRepo.CreateContact(ctx, contact)
	if err != nil {
		logger.Error("failed to create contact", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("contact created", slog.Int64("id", created.ID))
	return created, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	const op = "service.ContactService.Delete"
	logger := s.log.With(slog.String("op", op), slog.Int64("id", id))

	if err := s.contactRepo.DeleteContact(ctx, id); err != nil {
		logger.Error("failed to delete contact", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("contact deleted")
	return nil
}
