package media

import "context"

// Uploader описывает загрузку локального файла в удаленное медиахранилище.
// Реализация не хранит состояния между вызовами, учетные данные задаются
// один раз при создании.
type Uploader interface {
	// Upload отправляет файл по локальному пути и возвращает публичный
	// https-адрес загруженного ресурса.
	Upload(ctx context.Context, localPath string) (string, error)
}
