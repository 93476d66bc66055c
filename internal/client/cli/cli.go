// Package cli реализует команды терминального клиента NutriPlan.
// Команды — тонкий слой над API клиентом: навигационные решения
// принимает authz-гейт, состояние сессии живет в session.Store.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	apiclient "github.com/christianalma1904/nutriplan-cli/internal/client/api"
	"github.com/christianalma1904/nutriplan-cli/internal/client/authz"
	"github.com/christianalma1904/nutriplan-cli/internal/client/iocli"
	"github.com/christianalma1904/nutriplan-cli/internal/client/session"
)

type Cli struct {
	api     *apiclient.Client
	session *session.Store
	io      iocli.IO
}

func New(apiClient *apiclient.Client, sess *session.Store, io iocli.IO) *Cli {
	return &Cli{
		api:     apiClient,
		session: sess,
		io:      io,
	}
}

// guard консультируется с authz-гейтом перед входом в экран.
// Отказ превращается в ошибку с подсказкой, куда "редиректит" клиент;
// сессию отказ не трогает.
func (c *Cli) guard(view string) error {
	decision := authz.CanEnter(c.session, viewRoles[view])
	if decision.Allow {
		return nil
	}

	if decision.RedirectTo == authz.ViewLogin {
		return fmt.Errorf("not authenticated: run 'nutriplan login' first")
	}

	identity, _ := c.session.Identity()
	rol := ""
	if identity != nil {
		rol = identity.Rol
	}
	return fmt.Errorf("access denied for role %q: redirecting to %s", rol, decision.RedirectTo)
}

// apiError обрабатывает ошибку API вызова.
// Ответ 401 — сигнал, что сервер отверг токен: локальная сессия
// принудительно очищается и пользователю предлагается повторный вход.
func (c *Cli) apiError(ctx context.Context, err error) error {
	apiErr, ok := apiclient.AsAPIError(err)
	if !ok || !apiErr.Unauthorized() {
		return err
	}

	if logoutErr := c.session.Logout(ctx); logoutErr != nil {
		slog.Warn("failed to clear session after 401", "error", logoutErr)
	}

	return fmt.Errorf("session expired, run 'nutriplan login' again: %w", err)
}

// readFloat запрашивает число с плавающей точкой
func (c *Cli) readFloat(prompt string) (float64, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", input)
	}

	return value, nil
}

// readInt64 запрашивает целое число (id связанной записи)
func (c *Cli) readInt64(prompt string) (int64, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, err
	}
	if input == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", input)
	}

	return value, nil
}
