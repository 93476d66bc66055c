package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListSeguimiento возвращает записи отслеживания веса
func (c *Client) ListSeguimiento(ctx context.Context) ([]api.Seguimiento, error) {
	var resp []api.Seguimiento
	if err := c.doAuthRequest(ctx, "GET", "/seguimiento", nil, &resp); err != nil {
		return nil, fmt.Errorf("list seguimiento request failed: %w", err)
	}
	return resp, nil
}

// CreateSeguimiento создает новую запись отслеживания
func (c *Client) CreateSeguimiento(ctx context.Context, s api.Seguimiento) (*api.Seguimiento, error) {
	var resp api.Seguimiento
	if err := c.doAuthRequest(ctx, "POST", "/seguimiento", s, &resp); err != nil {
		return nil, fmt.Errorf("create seguimiento request failed: %w", err)
	}
	return &resp, nil
}

// UpdateSeguimiento обновляет запись отслеживания по id
func (c *Client) UpdateSeguimiento(ctx context.Context, id int64, s api.Seguimiento) (*api.Seguimiento, error) {
	var resp api.Seguimiento
	path := fmt.Sprintf("/seguimiento/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, s, &resp); err != nil {
		return nil, fmt.Errorf("update seguimiento request failed: %w", err)
	}
	return &resp, nil
}

// DeleteSeguimiento удаляет запись отслеживания по id
func (c *Client) DeleteSeguimiento(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/seguimiento/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete seguimiento request failed: %w", err)
	}
	return nil
}
