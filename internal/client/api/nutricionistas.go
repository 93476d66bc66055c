package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListNutricionistas возвращает всех нутрициологов
func (c *Client) ListNutricionistas(ctx context.Context) ([]api.Nutricionista, error) {
	var resp []api.Nutricionista
	if err := c.doAuthRequest(ctx, "GET", "/nutricionistas", nil, &resp); err != nil {
		return nil, fmt.Errorf("list nutricionistas request failed: %w", err)
	}
	return resp, nil
}

// CreateNutricionista создает нового нутрициолога
func (c *Client) CreateNutricionista(ctx context.Context, n api.Nutricionista) (*api.Nutricionista, error) {
	var resp api.Nutricionista
	if err := c.doAuthRequest(ctx, "POST", "/nutricionistas", n, &resp); err != nil {
		return nil, fmt.Errorf("create nutricionista request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNutricionista обновляет нутрициолога по id
func (c *Client) UpdateNutricionista(ctx context.Context, id int64, n api.Nutricionista) (*api.Nutricionista, error) {
	var resp api.Nutricionista
	path := fmt.Sprintf("/nutricionistas/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, n, &resp); err != nil {
		return nil, fmt.Errorf("update nutricionista request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNutricionista удаляет нутрициолога по id
func (c *Client) DeleteNutricionista(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/nutricionistas/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete nutricionista request failed: %w", err)
	}
	return nil
}
