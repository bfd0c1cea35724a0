package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/linemk/storefront/internal/service"
	"github.com/stretchr/testify/assert"
)

// fakeUploader — фиктивная реализация media.Uploader: отдает URL по пути
// либо ошибку и считает вызовы.
type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	urls  map[string]string
	errs  map[string]error
}

func (f *fakeUploader) Upload(ctx context.Context, localPath string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, localPath)
	f.mu.Unlock()

	if err, ok := f.errs[localPath]; ok {
		return "", err
	}
	return f.urls[localPath], nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestUploadImages_AllSlots(t *testing.T) {
	uploader := &fakeUploader{urls: map[string]string{
		"/tmp/a.png": "https://res.example.com/a.png",
		"/tmp/b.png": "https://res.example.com/b.png",
		"/tmp/c.png": "https://res.example.com/c.png",
	}}
	svc := service.NewUploadService(newTestLogger(), uploader, time.Second)

	result, err := svc.UploadImages(context.Background(), map[string]string{
		"img1": "/tmp/a.png",
		"img2": "/tmp/b.png",
		"img3": "/tmp/c.png",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://res.example.com/a.png", *result.Img1)
	assert.Equal(t, "https://res.example.com/b.png", *result.Img2)
	assert.Equal(t, "https://res.example.com/c.png", *result.Img3)
	assert.Len(t, uploader.calls, 3)
}

func TestUploadImages_SingleSlot(t *testing.T) {
	// Заполнен только img2: соседние слоты остаются nil, лишних вызовов нет.
	uploader := &fakeUploader{urls: map[string]string{
		"/tmp/b.png": "https://res.example.com/b.png",
	}}
	svc := service.NewUploadService(newTestLogger(), uploader, time.Second)

	result, err := svc.UploadImages(context.Background(), map[string]string{"img2": "/tmp/b.png"})
	assert.NoError(t, err)
	assert.Nil(t, result.Img1)
	assert.Nil(t, result.Img3)
	assert.NotNil(t, result.Img2)
	assert.True(t, strings.HasPrefix(*result.Img2, "https://"), "slot must hold a secure url")
	assert.Len(t, uploader.calls, 1)
}

func TestUploadImages_Empty(t *testing.T) {
	// Без файлов удаленный вызов не выполняется вовсе.
	uploader := &fakeUploader{}
	svc := service.NewUploadService(newTestLogger(), uploader, time.Second)

	result, err := svc.UploadImages(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, result.Img1)
	assert.Nil(t, result.Img2)
	assert.Nil(t, result.Img3)
	assert.Empty(t, uploader.calls)
}

func TestUploadImages_PartialFailure(t *testing.T) {
	// Отказ одного слота не отменяет остальные: успешные адреса сохраняются,
	// а ошибка называет отказавший слот.
	uploader := &fakeUploader{
		urls: map[string]string{"/tmp/a.png": "https://res.example.com/a.png"},
		errs: map[string]error{"/tmp/b.png": errors.New("remote rejected")},
	}
	svc := service.NewUploadService(newTestLogger(), uploader, time.Second)

	result, err := svc.UploadImages(context.Background(), map[string]string{
		"img1": "/tmp/a.png",
		"img2": "/tmp/b.png",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "img2")
	assert.NotNil(t, result)
	assert.Equal(t, "https://res.example.com/a.png", *result.Img1)
	assert.Nil(t, result.Img2)
	assert.Len(t, uploader.calls, 2)
}
