// Package authz принимает решения о допуске к экранам клиента.
// Решение чистое: фактический переход выполняет командный слой.
// Вся логика "кто куда может" собрана здесь, вместо разрозненных
// сравнений ролей по экранам.
package authz

import "github.com/christianalma1904/nutriplan-cli/internal/models"

// Целевые экраны для редиректов. Неаутентифицированный пользователь
// отправляется на login; аутентифицированный, но с чужой ролью — на home.
// Разные цели различают "не вошел" и "вошел, но запрещено".
const (
	ViewLogin = "login"
	ViewHome  = "home"
)

// Session описывает то, что гейту нужно знать о сессии
type Session interface {
	// IsAuthenticated сообщает, есть ли валидная сессия
	IsAuthenticated() bool

	// Identity возвращает личность текущей сессии, false если сессия пуста
	Identity() (*models.UserIdentity, bool)
}

// Decision представляет решение о допуске
type Decision struct {
	RedirectTo string // целевой экран при отказе
	Allow      bool
}

// CanEnter решает, допущена ли сессия к экрану, требующему роль requiredRole.
// Пустая requiredRole означает "любой аутентифицированный пользователь".
// Отказ по роли не разлогинивает: сессия остается валидной.
func CanEnter(sess Session, requiredRole string) Decision {
	if !sess.IsAuthenticated() {
		return Decision{RedirectTo: ViewLogin}
	}

	if requiredRole == "" {
		return Decision{Allow: true}
	}

	identity, ok := sess.Identity()
	if !ok {
		return Decision{RedirectTo: ViewLogin}
	}

	if identity.Rol != requiredRole {
		return Decision{RedirectTo: ViewHome}
	}

	return Decision{Allow: true}
}
