package storage

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrInvalidInput сигнализирует, что запрос отклонен базой из-за плохих
// входных данных (нарушение ограничения или неверный формат значения),
// а не из-за проблем с самим хранилищем.
var ErrInvalidInput = errors.New("invalid input")

// classifyError переводит коды ошибок драйвера в ошибки уровня хранилища.
// Классы 22 (data exception) и 23 (integrity constraint violation)
// означают некорректные данные от клиента, остальное — ошибка хранилища.
func classifyError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if class := pqErr.Code.Class(); class == "22" || class == "23" {
			return fmt.Errorf("%w: %s", ErrInvalidInput, pqErr.Message)
		}
	}
	return err
}
