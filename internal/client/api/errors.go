package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError представляет классифицированный не-2xx ответ сервера.
// Без автоматических ретраев: ошибка отдается вызывающему, он решает —
// повторить, показать сообщение или запросить повторный вход.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unauthorized сообщает, что сервер отверг токен.
// Сигнал вызывающему выполнить logout и отправить пользователя на login.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsAPIError извлекает *APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
