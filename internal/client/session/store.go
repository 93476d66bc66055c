// Package session держит состояние сессии клиента: текущий bearer токен
// и производную от него личность пользователя. Все мутации проходят сквозной
// записью в persistent storage, чтобы сессия переживала перезапуск.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/christianalma1904/nutriplan-cli/internal/client/storage"
	"github.com/christianalma1904/nutriplan-cli/internal/models"
	"github.com/christianalma1904/nutriplan-cli/internal/token"
)

var (
	// ErrLoginRejected indicates that login was called with a token
	// that is malformed or already expired
	ErrLoginRejected = errors.New("login rejected")

	// ErrNoActiveSession indicates that an authenticated operation
	// was requested without an active session
	ErrNoActiveSession = errors.New("no active session")
)

// Store является единственным владельцем состояния сессии процесса.
// Жизненный цикл: EMPTY -> AUTHENTICATED только через успешный Login
// (или восстановление валидного токена), AUTHENTICATED -> EMPTY только
// через Logout, обнаруженное истечение или ошибку декодирования.
//
// Мутации сериализуются мьютексом: декодирование токена и запись в storage
// должны выглядеть атомарно для читателей — никто не должен увидеть
// личность без согласованного с ней токена.
type Store struct {
	storage  storage.SessionStorage
	claims   *models.TokenClaims
	identity *models.UserIdentity
	token    string
	mu       sync.Mutex
}

// NewStore создает пустой Store поверх переданного хранилища.
// Store — единственный компонент, которому позволено писать в storage.
func NewStore(st storage.SessionStorage) *Store {
	return &Store{storage: st}
}

// Initialize восстанавливает ранее сохраненную сессию из storage.
// Отсутствие сессии, нечитаемый или истекший токен — не ошибка:
// сохраненное состояние очищается и Store стартует пустым.
func (s *Store) Initialize(ctx context.Context) error {
	data, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	claims, err := token.Decode(data.Token)
	if err != nil {
		slog.Debug("discarding persisted session: token is malformed", "error", err)
		return s.clear(ctx)
	}

	if claims.Expired(time.Now()) {
		slog.Debug("discarding persisted session: token expired")
		return s.clear(ctx)
	}

	// Личность всегда восстанавливается из токена, а не из сохраненной
	// копии: токен — единственный источник истины.
	s.mu.Lock()
	s.token = data.Token
	s.claims = claims
	s.identity = claims.Identity()
	s.mu.Unlock()

	return nil
}

// Login декодирует токен, сохраняет его вместе с производной личностью
// и переводит сессию в состояние AUTHENTICATED.
// Нечитаемый или уже истекший токен отбрасывается: состояние очищается,
// в storage ничего не записывается, вызывающему возвращается ErrLoginRejected.
func (s *Store) Login(ctx context.Context, raw string) (*models.UserIdentity, error) {
	claims, err := token.Decode(raw)
	if err != nil {
		if clearErr := s.clear(ctx); clearErr != nil {
			slog.Warn("failed to clear session after rejected login", "error", clearErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrLoginRejected, err)
	}

	if claims.Expired(time.Now()) {
		if clearErr := s.clear(ctx); clearErr != nil {
			slog.Warn("failed to clear session after rejected login", "error", clearErr)
		}
		return nil, fmt.Errorf("%w: token already expired", ErrLoginRejected)
	}

	identity := claims.Identity()

	// Сначала persist, затем память: если запись не удалась,
	// наблюдаемое состояние не меняется.
	if err := s.storage.SaveSession(ctx, raw, identity); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.token = raw
	s.claims = claims
	s.identity = identity
	s.mu.Unlock()

	ident := *identity
	return &ident, nil
}

// Logout очищает сохраненную и in-memory сессию.
// Идемпотентен: вызов на пустой сессии — no-op.
func (s *Store) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

// IsAuthenticated сообщает, есть ли валидная сессия на момент вызова.
// Токен с наступившим exp считается отсутствующим.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || s.identity == nil || s.claims == nil {
		return false
	}

	return !s.claims.Expired(time.Now())
}

// Identity возвращает копию личности текущей сессии.
// Второе значение false, если сессия пуста.
func (s *Store) Identity() (*models.UserIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil, false
	}

	ident := *s.identity
	return &ident, true
}

// Token возвращает текущий bearer токен.
// Возвращает ErrNoActiveSession, если сессия пуста.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", ErrNoActiveSession
	}

	return s.token, nil
}

// ExpiresAt возвращает unix-время истечения текущего токена.
// Возвращает ErrNoActiveSession, если сессия пуста.
func (s *Store) ExpiresAt() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.claims == nil {
		return 0, ErrNoActiveSession
	}

	return s.claims.ExpiresAt, nil
}

// clear сбрасывает сохраненное и in-memory состояние.
// Отсутствие сохраненной сессии не считается ошибкой.
func (s *Store) clear(ctx context.Context) error {
	if err := s.storage.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.claims = nil
	s.identity = nil
	s.mu.Unlock()

	return nil
}
