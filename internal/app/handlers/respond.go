package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/storefront/internal/storage"
)

var validate = validator.New()

// ErrorResponse — тело любого ответа об ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteRequest — общее тело запроса на удаление по id.
type DeleteRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// DeleteResponse — подтверждение удаления, отдается независимо от того,
// была ли затронута строка.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// respondJSON — единственная точка записи ответа: каждый путь обработчика
// обязан завершиться ровно одним вызовом respondJSON или respondError.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// storageErrorStatus переводит ошибку слоя хранилища в HTTP-статус.
func storageErrorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrProductNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
