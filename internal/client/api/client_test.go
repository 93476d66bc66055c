package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christianalma1904/nutriplan-cli/internal/client/session"
	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// fakeAuth implements AuthProvider for testing
type fakeAuth struct {
	err     error
	headers http.Header
}

func (f *fakeAuth) AuthHeaders() (http.Header, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.headers, nil
}

func bearerAuth(token string) *fakeAuth {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+token)
	return &fakeAuth{headers: headers}
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:3000"
	client := NewClient(baseURL, nil)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешную аутентификацию
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		// Декодируем запрос
		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "luis@nutriplan.test", req.Email)
		assert.Equal(t, "secretpassword", req.Password)

		w.WriteHeader(http.StatusOK)
		resp := api.TokenResponse{AccessToken: "token-123"}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "luis@nutriplan.test",
		Password: "secretpassword",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-123", resp.AccessToken)
}

// TestClient_Register проверяет регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Luis", req.Nombre)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "usuario registrado"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Nombre:   "Luis",
		Email:    "luis@nutriplan.test",
		Password: "secretpassword",
	})

	require.NoError(t, err)
	assert.Equal(t, "usuario registrado", resp.Message)
}

// TestClient_ErrorClassification проверяет превращение не-2xx ответов
// в APIError с сообщением из тела
func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		statusCode  int
	}{
		{
			name:        "json error body",
			statusCode:  http.StatusNotFound,
			body:        `{"message":"not found"}`,
			wantMessage: "not found",
		},
		{
			name:        "non-json body falls back to generic message",
			statusCode:  http.StatusInternalServerError,
			body:        "Internal Server Error",
			wantMessage: "request failed",
		},
		{
			name:        "json without message falls back",
			statusCode:  http.StatusBadRequest,
			body:        `{"error":"oops"}`,
			wantMessage: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, bearerAuth("tok"))

			_, err := client.ListPlanes(context.Background())

			require.Error(t, err)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

// TestClient_ListPlanes проверяет, что массив возвращается без изменений
func TestClient_ListPlanes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/planes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Plan A","precio":29.99}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, bearerAuth("tok"))

	planes, err := client.ListPlanes(context.Background())

	require.NoError(t, err)
	require.Len(t, planes, 1)
	assert.Equal(t, int64(1), planes[0].ID)
	assert.Equal(t, "Plan A", planes[0].Nombre)
	assert.Equal(t, 29.99, planes[0].Precio)
}

// TestClient_NoActiveSession: без сессии запрос не доходит до сервера
func TestClient_NoActiveSession(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(server.URL, &fakeAuth{err: session.ErrNoActiveSession})

	_, err := client.ListPlanes(context.Background())

	assert.ErrorIs(t, err, session.ErrNoActiveSession)
	assert.Zero(t, requests)
}

// TestClient_Unauthorized: 401 распознается как сигнал принудительного logout
func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, bearerAuth("stale"))

	_, err := client.Dashboard(context.Background())

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.Unauthorized())
	assert.Equal(t, "token expired", apiErr.Message)
}

// TestClient_DeletePlan проверяет метод и путь DELETE запроса
func TestClient_DeletePlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/planes/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "deleted"})
	}))
	defer server.Close()

	client := NewClient(server.URL, bearerAuth("tok"))

	err := client.DeletePlan(context.Background(), 42)
	require.NoError(t, err)
}

// TestClient_UpdateSeguimiento проверяет PUT с телом
func TestClient_UpdateSeguimiento(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/seguimiento/3", r.URL.Path)

		var s api.Seguimiento
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s))
		assert.Equal(t, 72.5, s.Peso)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(s)
	}))
	defer server.Close()

	client := NewClient(server.URL, bearerAuth("tok"))

	updated, err := client.UpdateSeguimiento(context.Background(), 3, api.Seguimiento{
		PacienteID: 7,
		Peso:       72.5,
		Fecha:      "2024-05-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 72.5, updated.Peso)
}
