// Package api реализует HTTP клиент сервера NutriPlan.
// Все вызовы проходят через единый doRequest: сериализация тела,
// заголовки авторизации, классификация не-2xx ответов в *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// AuthProvider выдает заголовки для аутентифицированных запросов.
// Реализуется session.Store.
type AuthProvider interface {
	AuthHeaders() (http.Header, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	auth       AuthProvider
	baseURL    string
}

// NewClient создает новый API клиент.
// auth может быть nil, если клиент используется только
// для неаутентифицированных вызовов (login, register).
func NewClient(baseURL string, auth AuthProvider) *Client {
	return &Client{
		baseURL: baseURL,
		auth:    auth,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// doRequest выполняет неаутентифицированный HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	return c.do(ctx, method, path, nil, body, result)
}

// doAuthRequest выполняет запрос с заголовками от AuthProvider.
// Отсутствие активной сессии обнаруживается до какого-либо I/O.
func (c *Client) doAuthRequest(ctx context.Context, method, path string, body, result any) error {
	if c.auth == nil {
		return fmt.Errorf("client has no auth provider")
	}

	headers, err := c.auth.AuthHeaders()
	if err != nil {
		return err
	}

	return c.do(ctx, method, path, headers, body, result)
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Корреляционный id запроса для логов backend
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Не-2xx классифицируется в APIError; сообщение берется из
	// JSON поля message, иначе подставляется общее
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// newAPIError строит APIError из статуса и тела ответа
func newAPIError(statusCode int, respBody []byte) *APIError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
		return &APIError{StatusCode: statusCode, Message: errResp.Message}
	}
	return &APIError{StatusCode: statusCode, Message: "request failed"}
}
