package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunPlanesList(ctx context.Context) error {
	if err := c.guard(viewPlanes); err != nil {
		return err
	}

	planes, err := c.api.ListPlanes(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(planes) == 0 {
		c.io.Println("No hay planes registrados.")
		return nil
	}

	c.io.Printf("%-6s %-30s %10s\n", "ID", "NOMBRE", "PRECIO")
	for _, p := range planes {
		c.io.Printf("%-6d %-30s %10.2f\n", p.ID, p.Nombre, p.Precio)
	}

	return nil
}

func (c *Cli) RunPlanesAdd(ctx context.Context) error {
	if err := c.guard(viewPlanes); err != nil {
		return err
	}

	plan, err := c.promptPlan()
	if err != nil {
		return err
	}

	created, err := c.api.CreatePlan(ctx, plan)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Plan created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunPlanesUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewPlanes); err != nil {
		return err
	}

	plan, err := c.promptPlan()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdatePlan(ctx, id, plan); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Plan %d updated\n", id)
	return nil
}

func (c *Cli) RunPlanesDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewPlanes); err != nil {
		return err
	}

	if err := c.api.DeletePlan(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Plan %d deleted\n", id)
	return nil
}

// promptPlan запрашивает поля плана у пользователя
func (c *Cli) promptPlan() (api.Plan, error) {
	nombre, err := c.io.ReadInput("Nombre: ")
	if err != nil {
		return api.Plan{}, fmt.Errorf("failed to read nombre: %w", err)
	}

	descripcion, err := c.io.ReadInput("Descripcion: ")
	if err != nil {
		return api.Plan{}, fmt.Errorf("failed to read descripcion: %w", err)
	}

	precio, err := c.readFloat("Precio: ")
	if err != nil {
		return api.Plan{}, err
	}

	return api.Plan{
		Nombre:      nombre,
		Descripcion: descripcion,
		Precio:      precio,
	}, nil
}
