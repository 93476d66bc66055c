package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/internal/validation"
	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	nombre, err := c.io.ReadInput("Nombre: ")
	if err != nil {
		return fmt.Errorf("failed to read nombre: %w", err)
	}
	if err := validation.ValidateNombre(nombre); err != nil {
		return fmt.Errorf("invalid nombre: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	// Подтверждение пароля, как в форме регистрации
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	resp, err := c.api.Register(ctx, api.RegisterRequest{
		Nombre:   nombre,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	if resp.Message != "" {
		c.io.Printf("Server: %s\n", resp.Message)
	}
	c.io.Println("Run 'nutriplan login' to start a session.")

	return nil
}
