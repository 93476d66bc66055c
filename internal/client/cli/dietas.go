package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunDietasList(ctx context.Context) error {
	if err := c.guard(viewDietas); err != nil {
		return err
	}

	dietas, err := c.api.ListDietas(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(dietas) == 0 {
		c.io.Println("No hay dietas registradas.")
		return nil
	}

	c.io.Printf("%-6s %-30s %-8s\n", "ID", "NOMBRE", "PLAN")
	for _, d := range dietas {
		c.io.Printf("%-6d %-30s %-8d\n", d.ID, d.Nombre, d.PlanID)
	}

	return nil
}

func (c *Cli) RunDietasAdd(ctx context.Context) error {
	if err := c.guard(viewDietas); err != nil {
		return err
	}

	dieta, err := c.promptDieta()
	if err != nil {
		return err
	}

	created, err := c.api.CreateDieta(ctx, dieta)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Dieta created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunDietasUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewDietas); err != nil {
		return err
	}

	dieta, err := c.promptDieta()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdateDieta(ctx, id, dieta); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Dieta %d updated\n", id)
	return nil
}

func (c *Cli) RunDietasDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewDietas); err != nil {
		return err
	}

	if err := c.api.DeleteDieta(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Dieta %d deleted\n", id)
	return nil
}

func (c *Cli) promptDieta() (api.Dieta, error) {
	nombre, err := c.io.ReadInput("Nombre: ")
	if err != nil {
		return api.Dieta{}, fmt.Errorf("failed to read nombre: %w", err)
	}

	descripcion, err := c.io.ReadInput("Descripcion: ")
	if err != nil {
		return api.Dieta{}, fmt.Errorf("failed to read descripcion: %w", err)
	}

	planID, err := c.readInt64("Plan id: ")
	if err != nil {
		return api.Dieta{}, err
	}

	return api.Dieta{
		Nombre:      nombre,
		Descripcion: descripcion,
		PlanID:      planID,
	}, nil
}
