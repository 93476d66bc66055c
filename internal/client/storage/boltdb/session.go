package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/christianalma1904/nutriplan-cli/internal/client/storage"
	"github.com/christianalma1904/nutriplan-cli/internal/models"
)

// Ключи внутри bucket session. Пишутся и удаляются только вместе,
// в одной транзакции: токен без личности (и наоборот) — невалидное состояние.
var (
	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// Compile-time check that Storage implements storage.SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SaveSession stores the raw token and derived identity in one transaction
func (s *Storage) SaveSession(ctx context.Context, token string, identity *models.UserIdentity) error {
	if identity == nil {
		return fmt.Errorf("identity is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем личность в JSON
		userData, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}

		// Сохраняем обе записи в рамках одной транзакции
		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the persisted session
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var data *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		tokenData := bucket.Get(keyToken)
		userData := bucket.Get(keyUser)

		// Частично записанная сессия приравнивается к отсутствующей
		if tokenData == nil || userData == nil {
			return storage.ErrSessionNotFound
		}

		var identity models.UserIdentity
		if err := json.Unmarshal(userData, &identity); err != nil {
			return fmt.Errorf("failed to unmarshal identity: %w", err)
		}

		data = &storage.SessionData{
			Token:    string(tokenData),
			Identity: identity,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}

// DeleteSession removes the persisted token and identity together (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(keyToken) == nil && bucket.Get(keyUser) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete identity: %w", err)
		}

		return nil
	})
}
