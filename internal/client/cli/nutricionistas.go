package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/internal/validation"
	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunNutricionistasList(ctx context.Context) error {
	if err := c.guard(viewNutricionistas); err != nil {
		return err
	}

	nutricionistas, err := c.api.ListNutricionistas(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(nutricionistas) == 0 {
		c.io.Println("No hay nutricionistas registrados.")
		return nil
	}

	c.io.Printf("%-6s %-25s %-30s %-20s\n", "ID", "NOMBRE", "EMAIL", "ESPECIALIDAD")
	for _, n := range nutricionistas {
		c.io.Printf("%-6d %-25s %-30s %-20s\n", n.ID, n.Nombre, n.Email, n.Especialidad)
	}

	return nil
}

func (c *Cli) RunNutricionistasAdd(ctx context.Context) error {
	if err := c.guard(viewNutricionistas); err != nil {
		return err
	}

	nutricionista, err := c.promptNutricionista()
	if err != nil {
		return err
	}

	created, err := c.api.CreateNutricionista(ctx, nutricionista)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Nutricionista created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunNutricionistasUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewNutricionistas); err != nil {
		return err
	}

	nutricionista, err := c.promptNutricionista()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdateNutricionista(ctx, id, nutricionista); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Nutricionista %d updated\n", id)
	return nil
}

func (c *Cli) RunNutricionistasDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewNutricionistas); err != nil {
		return err
	}

	if err := c.api.DeleteNutricionista(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Nutricionista %d deleted\n", id)
	return nil
}

func (c *Cli) promptNutricionista() (api.Nutricionista, error) {
	nombre, err := c.io.ReadInput("Nombre: ")
	if err != nil {
		return api.Nutricionista{}, fmt.Errorf("failed to read nombre: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return api.Nutricionista{}, fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return api.Nutricionista{}, fmt.Errorf("invalid email: %w", err)
	}

	especialidad, err := c.io.ReadInput("Especialidad: ")
	if err != nil {
		return api.Nutricionista{}, fmt.Errorf("failed to read especialidad: %w", err)
	}

	return api.Nutricionista{
		Nombre:       nombre,
		Email:        email,
		Especialidad: especialidad,
	}, nil
}
