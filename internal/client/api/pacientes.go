package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListPacientes возвращает всех пациентов
func (c *Client) ListPacientes(ctx context.Context) ([]api.Paciente, error) {
	var resp []api.Paciente
	if err := c.doAuthRequest(ctx, "GET", "/pacientes", nil, &resp); err != nil {
		return nil, fmt.Errorf("list pacientes request failed: %w", err)
	}
	return resp, nil
}

// CreatePaciente создает нового пациента
func (c *Client) CreatePaciente(ctx context.Context, paciente api.Paciente) (*api.Paciente, error) {
	var resp api.Paciente
	if err := c.doAuthRequest(ctx, "POST", "/pacientes", paciente, &resp); err != nil {
		return nil, fmt.Errorf("create paciente request failed: %w", err)
	}
	return &resp, nil
}

// UpdatePaciente обновляет пациента по id
func (c *Client) UpdatePaciente(ctx context.Context, id int64, paciente api.Paciente) (*api.Paciente, error) {
	var resp api.Paciente
	path := fmt.Sprintf("/pacientes/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, paciente, &resp); err != nil {
		return nil, fmt.Errorf("update paciente request failed: %w", err)
	}
	return &resp, nil
}

// DeletePaciente удаляет пациента по id
func (c *Client) DeletePaciente(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/pacientes/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete paciente request failed: %w", err)
	}
	return nil
}
