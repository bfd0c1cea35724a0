package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
)

// ContactRequest — тело запроса POST /contact с тегами валидации.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ListContactsHandler обрабатывает GET /contact.
func ListContactsHandler(log *slog.Logger, contactService service.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListContactsHandler"
		logger := log.With(slog.String("op", op))

		contacts, err := contactService.List(r.Context())
		if err != nil {
			logger.Error("failed to list contacts", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to list contacts")
			return
		}
		if contacts == nil {
			contacts = []*models.Contact{}
		}
		respondJSON(w, http.StatusOK, contacts)
	}
}

// CreateContactHandler обрабатывает POST /contact.
func CreateContactHandler(log *slog.Logger, contactService service.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateContactHandler"
		logger := log.With(slog.String("op", op))

		var req ContactRequest
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

		contact := &models.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		}
		created, err := contactService.Create(r.Context(), contact)
		if err != nil {
			logger.Error("failed to create contact", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to create contact")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

// DeleteContactHandler обрабатывает POST /delete/contact.
// Удаление идемпотентно: успех отдается и для несуществующего id.
func DeleteContactHandler(log *slog.Logger, contactService service.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteContactHandler"
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

		if err := contactService.Delete(r.Context(), req.ID); err != nil {
			logger.Error("failed to delete contact", slog.Int64("id", req.ID), slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to delete contact")
			return
		}
		respondJSON(w, http.StatusOK, DeleteResponse{Success: true})
	}
}
