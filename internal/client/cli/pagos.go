package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunPagosList(ctx context.Context) error {
	if err := c.guard(viewPagos); err != nil {
		return err
	}

	pagos, err := c.api.ListPagos(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(pagos) == 0 {
		c.io.Println("No hay pagos registrados.")
		return nil
	}

	c.io.Printf("%-6s %-10s %-8s %10s %-12s %-10s\n", "ID", "PACIENTE", "PLAN", "MONTO", "FECHA", "ESTADO")
	for _, p := range pagos {
		c.io.Printf("%-6d %-10d %-8d %10.2f %-12s %-10s\n", p.ID, p.PacienteID, p.PlanID, p.Monto, p.Fecha, p.Estado)
	}

	return nil
}

func (c *Cli) RunPagosAdd(ctx context.Context) error {
	if err := c.guard(viewPagos); err != nil {
		return err
	}

	pago, err := c.promptPago()
	if err != nil {
		return err
	}

	created, err := c.api.CreatePago(ctx, pago)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Pago created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunPagosUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewPagos); err != nil {
		return err
	}

	pago, err := c.promptPago()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdatePago(ctx, id, pago); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Pago %d updated\n", id)
	return nil
}

func (c *Cli) RunPagosDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewPagos); err != nil {
		return err
	}

	if err := c.api.DeletePago(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Pago %d deleted\n", id)
	return nil
}

func (c *Cli) promptPago() (api.Pago, error) {
	pacienteID, err := c.readInt64("Paciente id: ")
	if err != nil {
		return api.Pago{}, err
	}

	planID, err := c.readInt64("Plan id: ")
	if err != nil {
		return api.Pago{}, err
	}

	monto, err := c.readFloat("Monto: ")
	if err != nil {
		return api.Pago{}, err
	}

	fecha, err := c.io.ReadInput("Fecha (YYYY-MM-DD): ")
	if err != nil {
		return api.Pago{}, fmt.Errorf("failed to read fecha: %w", err)
	}

	estado, err := c.io.ReadInput("Estado: ")
	if err != nil {
		return api.Pago{}, fmt.Errorf("failed to read estado: %w", err)
	}

	return api.Pago{
		PacienteID: pacienteID,
		PlanID:     planID,
		Monto:      monto,
		Fecha:      fecha,
		Estado:     estado,
	}, nil
}
