package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/linemk/storefront/internal/service"
)

// maxUploadMemory — порог, после которого multipart-декодер сбрасывает
// части запроса на диск.
const maxUploadMemory = 32 << 20

// UploadResponse — ответ POST /upload: адрес либо null для каждого слота.
// При частичном отказе заполняется error с указанием отказавших слотов,
// успешные слоты при этом не теряются.
type UploadResponse struct {
	Img1  *string `json:"img1"`
	Img2  *string `json:"img2"`
	Img3  *string `json:"img3"`
	Error string  `json:"error,omitempty"`
}

// UploadHandler обрабатывает POST /upload: принимает multipart-поля
// img1/img2/img3 (не более одного файла в каждом), складывает их во
// временный каталог и отдает сервису загрузки. Временные файлы удаляются
// на любом исходе запроса.
func UploadHandler(log *slog.Logger, uploadService service.UploadService, scratchDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UploadHandler"
		logger := log.With(slog.String("op", op))

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			// запрос без файлов валиден: все слоты остаются пустыми
			if errors.Is(err, http.ErrNotMultipart) {
				respondJSON(w, http.StatusOK, UploadResponse{})
				return
			}
			logger.Error("invalid request: multipart parsing error", slog.Any("error", err))
			respondError(w, http.StatusBadRequest, "invalid multipart request")
			return
		}

		files := make(map[string]string, len(service.SlotNames))
		defer func() {
			for _, path := range files {
				if err := os.Remove(path); err != nil {
					logger.Warn("failed to remove scratch file", slog.String("path", path), slog.Any("error", err))
				}
			}
		}()

		for _, slot := range service.SlotNames {
			headers := r.MultipartForm.File[slot]
			if len(headers) == 0 {
				continue
			}
			path, err := saveToScratch(scratchDir, headers[0])
			if err != nil {
				logger.Error("failed to stage file", slog.String("slot", slot), slog.Any("error", err))
				respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
				return
			}
			files[slot] = path
		}

		result, err := uploadService.UploadImages(r.Context(), files)
		resp := UploadResponse{Img1: result.Img1, Img2: result.Img2, Img3: result.Img3}
		if err != nil {
			logger.Error("upload aggregation failed", slog.Any("error", err))
			resp.Error = err.Error()
			respondJSON(w, http.StatusBadGateway, resp)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// saveToScratch сохраняет файл из multipart-части во временный каталог.
// Имя составляется из метки времени и исходного имени, поэтому параллельные
// запросы не пересекаются по именам.
func saveToScratch(dir string, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open multipart file: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(header.Filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	return path, nil
}
