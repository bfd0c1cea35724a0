package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/storage"
)

// OrderService описывает операции над заказами.
type OrderService interface {
	List(ctx context.Context) ([]*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage) OrderService {
	return &orderService{log: log, orderRepo: orderRepo}
}

func (s *orderService) List(ctx context.Context) ([]*models.Order, error) {
	const op = "service.OrderService.List"

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.log.Error("failed to list orders", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s *orderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	const op = "service.OrderService.Create"
	logger := s.log.With(slog.String("op", op))

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("order created", slog.Int64("id", created.ID))
	return created, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	const op = "service.OrderService.Delete"
	logger := s.log.With(slog.String("op", op), slog.Int64("id", id))

	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		logger.Error("failed to delete order", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("order deleted")
	return nil
}
