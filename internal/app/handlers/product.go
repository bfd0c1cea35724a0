package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/service"
)

// ProductRequest — тело запроса POST /add. Ссылки на изображения опциональны,
// их подготавливает отдельный вызов POST /upload.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
	Img1        *string `json:"img1"`
	Img2        *string `json:"img2"`
	Img3        *string `json:"img3"`
}

// UpdateProductRequest — тело запроса POST /update: полная замена строки по id.
type UpdateProductRequest struct {
	ProductRequest
	ID int64 `json:"id" validate:"required"`
}

// ListProductsHandler обрабатывает GET /products.
func ListProductsHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListProductsHandler"
		logger := log.With(slog.String("op", op))

		products, err := productService.List(r.Context())
		if err != nil {
			logger.Error("failed to list products", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to list products")
			return
		}
		if products == nil {
			products = []*models.Product{}
		}
		respondJSON(w, http.StatusOK, products)
	}
}

// CreateProductHandler обрабатывает POST /add и возвращает созданную строку.
func CreateProductHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateProductHandler"
		logger := log.With(slog.String("op", op))

		var req ProductRequest
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

		product := &models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image1:      req.Img1,
			Image2:      req.Img2,
			Image3:      req.Img3,
		}
		created, err := productService.Create(r.Context(), product)
		if err != nil {
			logger.Error("failed to create product", slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to create product")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

// UpdateProductHandler обрабатывает POST /update.
// Несуществующий id дает 404, новая строка при этом не создается.
func UpdateProductHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UpdateProductHandler"
		logger := log.With(slog.String("op", op))

		var req UpdateProductRequest
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

		product := &models.Product{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image1:      req.Img1,
			Image2:      req.Img2,
			Image3:      req.Img3,
		}
		updated, err := productService.Update(r.Context(), product)
		if err != nil {
			logger.Error("failed to update product", slog.Int64("id", req.ID), slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to update product")
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// DeleteProductHandler обрабатывает POST /delete/product.
func DeleteProductHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteProductHandler"
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

		if err := productService.Delete(r.Context(), req.ID); err != nil {
			logger.Error("failed to delete product", slog.Int64("id", req.ID), slog.Any("error", err))
			respondError(w, storageErrorStatus(err), "failed to delete product")
			return
		}
		respondJSON(w, http.StatusOK, DeleteResponse{Success: true})
	}
}
