package models

import "time"

// UserIdentity представляет личность пользователя, производную от токена.
// Всегда восстановима из валидного токена; никогда не хранится отдельно
// от токена, с которым она не согласована.
type UserIdentity struct {
	ID    string `json:"id"`             // subject id из claims токена
	Rol   string `json:"rol"`            // роль (admin, paciente, ...)
	Email string `json:"email"`          // email, пустой если claim отсутствует
	Name  string `json:"name,omitempty"` // отображаемое имя
}

// TokenClaims представляет полезную нагрузку bearer токена.
// Подпись клиентом не проверяется: claims используются только для
// client-side решений (что показать, куда направить), все реальные
// проверки выполняет backend.
type TokenClaims struct {
	SubjectID string // claim sub, нормализованный в строку
	Rol       string // claim rol
	Email     string // claim email (опционально)
	Name      string // claim name/nombre (опционально)
	ExpiresAt int64  // claim exp, unix секунды
}

// Expired сообщает, истек ли токен на момент now.
// Токен валиден строго пока now < exp.
func (c *TokenClaims) Expired(now time.Time) bool {
	return now.Unix() >= c.ExpiresAt
}

// Identity строит UserIdentity из claims токена.
func (c *TokenClaims) Identity() *UserIdentity {
	return &UserIdentity{
		ID:    c.SubjectID,
		Rol:   c.Rol,
		Email: c.Email,
		Name:  c.Name,
	}
}
