package cli

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apiclient "github.com/christianalma1904/nutriplan-cli/internal/client/api"
	"github.com/christianalma1904/nutriplan-cli/internal/client/session"
	"github.com/christianalma1904/nutriplan-cli/internal/client/storage"
	"github.com/christianalma1904/nutriplan-cli/internal/models"
)

// mockIO implements iocli.IO with scripted inputs and captured output
type mockIO struct {
	inputs    []string
	passwords []string
	out       strings.Builder
}

func (m *mockIO) Println(a ...any) {
	m.out.WriteString(fmt.Sprintln(a...))
}

func (m *mockIO) Printf(format string, a ...any) {
	m.out.WriteString(fmt.Sprintf(format, a...))
}

func (m *mockIO) Errorf(format string, a ...any) {
	m.out.WriteString(fmt.Sprintf(format, a...))
}

func (m *mockIO) ReadInput(prompt string) (string, error) {
	if len(m.inputs) == 0 {
		return "", fmt.Errorf("no scripted input for prompt %q", prompt)
	}
	input := m.inputs[0]
	m.inputs = m.inputs[1:]
	return input, nil
}

func (m *mockIO) ReadPassword(prompt string) (string, error) {
	if len(m.passwords) == 0 {
		return "", fmt.Errorf("no scripted password for prompt %q", prompt)
	}
	password := m.passwords[0]
	m.passwords = m.passwords[1:]
	return password, nil
}

func (m *mockIO) output() string {
	return m.out.String()
}

// memStorage — in-memory реализация storage.SessionStorage
type memStorage struct {
	data *storage.SessionData
}

func (m *memStorage) SaveSession(ctx context.Context, tok string, identity *models.UserIdentity) error {
	m.data = &storage.SessionData{Token: tok, Identity: *identity}
	return nil
}

func (m *memStorage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if m.data == nil {
		return nil, storage.ErrSessionNotFound
	}
	data := *m.data
	return &data, nil
}

func (m *memStorage) DeleteSession(ctx context.Context) error {
	if m.data == nil {
		return storage.ErrSessionNotFound
	}
	m.data = nil
	return nil
}

// signToken создает подписанный JWT для тестов
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

// newTestCli собирает Cli поверх httptest сервера и in-memory сессии
func newTestCli(t *testing.T, server *httptest.Server, io *mockIO) (*Cli, *session.Store) {
	t.Helper()

	sess := session.NewStore(&memStorage{})
	client := apiclient.NewClient(server.URL, sess)

	return New(client, sess, io), sess
}

// loginAs переводит сессию в состояние AUTHENTICATED с указанной ролью
func loginAs(t *testing.T, sess *session.Store, rol string) {
	t.Helper()

	raw := signToken(t, jwt.MapClaims{
		"sub":   "7",
		"rol":   rol,
		"email": "user@nutriplan.test",
		"name":  "Test User",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := sess.Login(context.Background(), raw)
	require.NoError(t, err)
}
