package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListPlanes возвращает все планы питания
func (c *Client) ListPlanes(ctx context.Context) ([]api.Plan, error) {
	var resp []api.Plan
	if err := c.doAuthRequest(ctx, "GET", "/planes", nil, &resp); err != nil {
		return nil, fmt.Errorf("list planes request failed: %w", err)
	}
	return resp, nil
}

// CreatePlan создает новый план питания
func (c *Client) CreatePlan(ctx context.Context, plan api.Plan) (*api.Plan, error) {
	var resp api.Plan
	if err := c.doAuthRequest(ctx, "POST", "/planes", plan, &resp); err != nil {
		return nil, fmt.Errorf("create plan request failed: %w", err)
	}
	return &resp, nil
}

// UpdatePlan обновляет план питания по id
func (c *Client) UpdatePlan(ctx context.Context, id int64, plan api.Plan) (*api.Plan, error) {
	var resp api.Plan
	path := fmt.Sprintf("/planes/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, plan, &resp); err != nil {
		return nil, fmt.Errorf("update plan request failed: %w", err)
	}
	return &resp, nil
}

// DeletePlan удаляет план питания по id
func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/planes/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete plan request failed: %w", err)
	}
	return nil
}
