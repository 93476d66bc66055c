package session

import "net/http"

// AuthHeaders возвращает набор заголовков для аутентифицированных запросов.
// Истечение токена здесь не проверяется: истекший токен backend отклонит
// ответом 401, который вызывающий обрабатывает как принудительный logout.
func (s *Store) AuthHeaders() (http.Header, error) {
	tok, err := s.Token()
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+tok)

	return headers, nil
}
