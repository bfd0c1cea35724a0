package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/linemk/storefront/internal/media"
)

// SlotNames — имена слотов изображений в фиксированном порядке.
var SlotNames = [3]string{"img1", "img2", "img3"}

// UploadResult — адреса загруженных изображений по слотам, nil для пустого слота.
type UploadResult struct {
	Img1 *string `json:"img1"`
	Img2 *string `json:"img2"`
	Img3 *string `json:"img3"`
}

// slotURL возвращает адрес слота по имени.
func (r *UploadResult) slotURL(slot string) **string {
	switch slot {
	case "img1":
		return &r.Img1
	case "img2":
		return &r.Img2
	case "img3":
		return &r.Img3
	}
	return nil
}

// UploadService описывает агрегированную загрузку до трех изображений.
type UploadService interface {
	// UploadImages загружает файлы из files (ключ — имя слота, значение —
	// локальный путь) в медиахранилище. Слоты загружаются параллельно и
	// независимо: ошибка одного слота не отменяет остальные. Возвращаемый
	// результат всегда не nil и содержит адреса успешных слотов; ошибка
	// агрегирует отказы с указанием слота.
	UploadImages(ctx context.Context, files map[string]string) (*UploadResult, error)
}

type uploadService struct {
	log      *slog.Logger
	uploader media.Uploader
	timeout  time.Duration
}

// NewUploadService создаёт сервис загрузки. timeout ограничивает каждый
// отдельный вызов медиахранилища.
func NewUploadService(log *slog.Logger, uploader media.Uploader, timeout time.Duration) UploadService {
	return &uploadService{log: log, uploader: uploader, timeout: timeout}
}

func (s *uploadService) UploadImages(ctx context.Context, files map[string]string) (*UploadResult, error) {
	const op = "service.UploadService.UploadImages"
	logger := s.log.With(slog.String("op", op))

	result := &UploadResult{}
	if len(files) == 0 {
		return result, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		uploadErr *multierror.Error
	)
	for _, slot := range SlotNames {
		path, ok := files[slot]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(slot, path string) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			url, err := s.uploader.Upload(callCtx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("slot upload failed", slog.String("slot", slot), slog.Any("error", err))
				uploadErr = multierror.Append(uploadErr, fmt.Errorf("%s: %w", slot, err))
				return
			}
			*result.slotURL(slot) = &url
			logger.Info("slot uploaded", slog.String("slot", slot), slog.String("url", url))
		}(slot, path)
	}
	wg.Wait()

	if err := uploadErr.ErrorOrNil(); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
