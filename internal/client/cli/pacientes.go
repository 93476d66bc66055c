package cli

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/internal/validation"
	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

func (c *Cli) RunPacientesList(ctx context.Context) error {
	if err := c.guard(viewPacientes); err != nil {
		return err
	}

	pacientes, err := c.api.ListPacientes(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(pacientes) == 0 {
		c.io.Println("No hay pacientes registrados.")
		return nil
	}

	c.io.Printf("%-6s %-25s %-30s %-8s\n", "ID", "NOMBRE", "EMAIL", "PLAN")
	for _, p := range pacientes {
		c.io.Printf("%-6d %-25s %-30s %-8d\n", p.ID, p.Nombre, p.Email, p.PlanID)
	}

	return nil
}

func (c *Cli) RunPacientesAdd(ctx context.Context) error {
	if err := c.guard(viewPacientes); err != nil {
		return err
	}

	paciente, err := c.promptPaciente()
	if err != nil {
		return err
	}

	created, err := c.api.CreatePaciente(ctx, paciente)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Paciente created (id %d)\n", created.ID)
	return nil
}

func (c *Cli) RunPacientesUpdate(ctx context.Context, id int64) error {
	if err := c.guard(viewPacientes); err != nil {
		return err
	}

	paciente, err := c.promptPaciente()
	if err != nil {
		return err
	}

	if _, err := c.api.UpdatePaciente(ctx, id, paciente); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Paciente %d updated\n", id)
	return nil
}

func (c *Cli) RunPacientesDelete(ctx context.Context, id int64) error {
	if err := c.guard(viewPacientes); err != nil {
		return err
	}

	if err := c.api.DeletePaciente(ctx, id); err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Paciente %d deleted\n", id)
	return nil
}

func (c *Cli) promptPaciente() (api.Paciente, error) {
	nombre, err := c.io.ReadInput("Nombre: ")
	if err != nil {
		return api.Paciente{}, fmt.Errorf("failed to read nombre: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return api.Paciente{}, fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return api.Paciente{}, fmt.Errorf("invalid email: %w", err)
	}

	planID, err := c.readInt64("Plan id (empty for none): ")
	if err != nil {
		return api.Paciente{}, err
	}

	return api.Paciente{
		Nombre: nombre,
		Email:  email,
		PlanID: planID,
	}, nil
}
