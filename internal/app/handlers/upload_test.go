package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/linemk/storefront/internal/app/handlers"
	"github.com/linemk/storefront/internal/service"
	"github.com/stretchr/testify/assert"
)

// fakeUploadService — фиктивная реализация UploadService, запоминает,
// какие слоты до нее дошли.
type fakeUploadService struct {
	gotFiles map[string]string
	result   *service.UploadResult
	err      error
	called   bool
}

func (f *fakeUploadService) UploadImages(ctx context.Context, files map[string]string) (*service.UploadResult, error) {
	f.called = true
	f.gotFiles = files
	if f.result == nil {
		return &service.UploadResult{}, f.err
	}
	return f.result, f.err
}

// multipartBody собирает multipart-запрос с файлами по слотам.
func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		assert.NoError(t, err)
		_, err = part.Write([]byte(content))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_SingleSlot(t *testing.T) {
	url := "https://res.example.com/b.png"
	fakeSvc := &fakeUploadService{result: &service.UploadResult{Img2: &url}}
	scratch := t.TempDir()
	handler := handlers.UploadHandler(testLogger(), fakeSvc, scratch)

	body, contentType := multipartBody(t, map[string]string{"img2": "fake png bytes"})
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.UploadResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.Img1)
	assert.Nil(t, resp.Img3)
	assert.NotNil(t, resp.Img2)
	assert.Equal(t, url, *resp.Img2)

	// до сервиса дошел ровно один слот, файл был размещен в scratch-каталоге
	assert.Len(t, fakeSvc.gotFiles, 1)
	assert.Contains(t, fakeSvc.gotFiles, "img2")

	// после ответа временных файлов не остается
	entries, err := os.ReadDir(scratch)
	assert.NoError(t, err)
	assert.Empty(t, entries, "scratch files must be removed on every exit path")
}

func TestUploadHandler_NoFiles(t *testing.T) {
	// Запрос без multipart-тела валиден: все слоты null, удаленный вызов не выполняется.
	fakeSvc := &fakeUploadService{}
	handler := handlers.UploadHandler(testLogger(), fakeSvc, t.TempDir())

	req := httptest.NewRequest("POST", "/upload", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, fakeSvc.called, "service must not be called without files")

	var resp handlers.UploadResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.Img1)
	assert.Nil(t, resp.Img2)
	assert.Nil(t, resp.Img3)
}

func TestUploadHandler_EmptyMultipart(t *testing.T) {
	// Multipart без файловых полей: слоты пустые, сервис получает пустой набор.
	fakeSvc := &fakeUploadService{}
	handler := handlers.UploadHandler(testLogger(), fakeSvc, t.TempDir())

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.UploadResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.Img1)
	assert.Nil(t, resp.Img2)
	assert.Nil(t, resp.Img3)
}

func TestUploadHandler_PartialFailure(t *testing.T) {
	// Отказ одного слота: 502, ошибка называет слот, успешный адрес сохраняется.
	url := "https://res.example.com/a.png"
	fakeSvc := &fakeUploadService{
		result: &service.UploadResult{Img1: &url},
		err:    errors.New("img2: remote rejected"),
	}
	scratch := t.TempDir()
	handler := handlers.UploadHandler(testLogger(), fakeSvc, scratch)

	body, contentType := multipartBody(t, map[string]string{"img1": "a", "img2": "b"})
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var resp handlers.UploadResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotNil(t, resp.Img1)
	assert.Equal(t, url, *resp.Img1)
	assert.Nil(t, resp.Img2)
	assert.Contains(t, resp.Error, "img2")

	// scratch-файлы удаляются и при ошибке
	entries, err := os.ReadDir(scratch)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
