package storage

import (
	"context"

	"github.com/christianalma1904/nutriplan-cli/internal/models"
)

// SessionStorage defines interface for persisting the client session.
// Это самый нижний слой: хранит сырой bearer токен и JSON личности,
// ничего не декодируя и не проверяя. Единственный пишущий клиент этого
// слоя — session.Store; остальной код читает производные значения через него.
type SessionStorage interface {
	// SaveSession stores the raw token and derived identity together.
	// Оба значения записываются атомарно: наблюдать одно без другого нельзя.
	SaveSession(ctx context.Context, token string, identity *models.UserIdentity) error

	// GetSession retrieves the persisted session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the persisted token and identity together (logout).
	// Returns ErrSessionNotFound if no session exists.
	DeleteSession(ctx context.Context) error
}

// SessionData represents the persisted session as stored.
type SessionData struct {
	Token    string              // сырой bearer токен
	Identity models.UserIdentity // личность, производная от токена
}
