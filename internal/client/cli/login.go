package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/christianalma1904/nutriplan-cli/internal/validation"
	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	// 1. Запрашиваем токен у сервера
	resp, err := c.api.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// 2. Декодируем и сохраняем токен; отвергнутый токен
	//    оставляет сессию пустой
	identity, err := c.session.Login(ctx, resp.AccessToken)
	if err != nil {
		return fmt.Errorf("server returned an unusable token: %w", err)
	}

	expiresAt, err := c.session.ExpiresAt()
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("User:  %s <%s>\n", identity.Name, identity.Email)
	c.io.Printf("Role:  %s\n", identity.Rol)
	c.io.Printf("Token expires at: %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
	c.io.Println()
	c.io.Println("Your session has been saved locally.")

	return nil
}
