package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
)

// OrderRequest — тело запроса POST /order. Имена полей повторяют формат
// клиента (fName/lName/adress/apart), cart принимается как сырой JSON-массив
// и сохраняется без перекодирования.
type OrderRequest struct {
	FirstName string          `json:"fName" validate:"required"`
	LastName  string          `json:"lName"`
	Address   string          `json:"adress" validate:"required"`
	Phone     string          `json:"phone"`
	Building  string          `json:"building"`
	Apartment string          `json:"apart"`
	Cart      json.RawMessage `json:"cart" validate:"required"`
}

// ListOrdersHandler обрабатывает GET /orders.
func ListOrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		orders, err := orderService.List(r.Context())
		if err != nil {
			logger.Error("failed to list orders", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to list orders")
			return
		}
		if orders == nil {
			orders = []*models.Order{}
		}
		respondJSON(w, http.StatusOK, orders)
	}
}

// CreateOrderHandler обрабатывает POST /order.
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		order := &models.Order{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			Phone:     req.Phone,
			Building:  req.Building,
			Apartment: req.Apartment,
			Cart:      req.Cart,
		}
		created, err := orderService.Create(r.Context(), order)
		if err != nil {
			logger.Error("failed to create order", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to create order")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

// DeleteOrderHandler обрабатывает POST /delete/order.
func DeleteOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteOrderHandler"
		logger := log.With(slog.String("op", op))

		var req DeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := orderService.Delete(r.Context(), req.ID); err != nil {
			logger.Error("failed to delete order", slog.Int64("id", req.ID), slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to delete order")
			return
		}
		respondJSON(w, http.StatusOK, DeleteResponse{Success: true})
	}
}
