package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListDietas возвращает все диеты
func (c *Client) ListDietas(ctx context.Context) ([]api.Dieta, error) {
	var resp []api.Dieta
	if err := c.doAuthRequest(ctx, "GET", "/dietas", nil, &resp); err != nil {
		return nil, fmt.Errorf("list dietas request failed: %w", err)
	}
	return resp, nil
}

// CreateDieta создает новую диету
func (c *Client) CreateDieta(ctx context.Context, dieta api.Dieta) (*api.Dieta, error) {
	var resp api.Dieta
	if err := c.doAuthRequest(ctx, "POST", "/dietas", dieta, &resp); err != nil {
		return nil, fmt.Errorf("create dieta request failed: %w", err)
	}
	return &resp, nil
}

// UpdateDieta обновляет диету по id
func (c *Client) UpdateDieta(ctx context.Context, id int64, dieta api.Dieta) (*api.Dieta, error) {
	var resp api.Dieta
	path := fmt.Sprintf("/dietas/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, dieta, &resp); err != nil {
		return nil, fmt.Errorf("update dieta request failed: %w", err)
	}
	return &resp, nil
}

// DeleteDieta удаляет диету по id
func (c *Client) DeleteDieta(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/dietas/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete dieta request failed: %w", err)
	}
	return nil
}
