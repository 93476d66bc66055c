package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunSeguimientoList(ctx context.Context) error {
	if err := c.guard(viewSeguimiento); err != nil {
		return err
	}

	entries, err := c.api.ListSeguimiento(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(entries) == 0 {
		c.io.Println("No hay registros de seguimiento.")
		return nil
	}

	c.io.Printf("%-6s %-10s %8s %-12s %s\n", "ID", "PACIENTE", "PESO", "FECHA", "NOTAS")
	for _, e := range entries {
		c.io.Printf("%-6d %-10d %8.1f %-12s %s\n", e.ID, e.PacienteID, e.Peso, e.Fecha, e.Notas)
	}

	return nil
}

func (c *Cli) RunSeguimientoAdd(ctx context.Context) error {
	if err := c.guard(viewSeguimiento); err != nil {
		return err
	}

	entry, err := c.promptSeguimiento()
	if err != nil {
		return err
	}

	created, err := c.api.CreateSeguimiento(ctx, entry)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Seguimiento created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunSeguimientoUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewSeguimiento); err != nil {
		return err
	}

	entry, err := c.promptSeguimiento()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdateSeguimiento(ctx, id, entry); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Seguimiento %d updated\n", id)
	return nil
}

func (c *Cli) RunSeguimientoDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewSeguimiento); err != nil {
		return err
	}

	if err := c.api.DeleteSeguimiento(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Seguimiento %d deleted\n", id)
	return nil
}

func (c *Cli) promptSeguimiento() (api.Seguimiento, error) {
	pacienteID, err := c.readInt64("Paciente id: ")
	if err != nil {
		return api.Seguimiento{}, err
	}

	peso, err := c.readFloat("Peso (kg): ")
	if err != nil {
		return api.Seguimiento{}, err
	}

	fecha, err := c.io.ReadInput("Fecha (YYYY-MM-DD): ")
	if err != nil {
		return api.Seguimiento{}, fmt.Errorf("failed to read fecha: %w", err)
	}

	notas, err := c.io.ReadInput("Notas: ")
	if err != nil {
		return api.Seguimiento{}, fmt.Errorf("failed to read notas: %w", err)
	}

	return api.Seguimiento{
		PacienteID: pacienteID,
		Peso:       peso,
		Fecha:      fecha,
		Notas:      notas,
	}, nil
}
