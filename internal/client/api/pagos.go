package api

import (
	"context"
	"fmt"

	"github.com/christianalma1904/nutriplan-cli/pkg/api"
)

// ListPagos возвращает все платежи
func (c *Client) ListPagos(ctx context.Context) ([]api.Pago, error) {
	var resp []api.Pago
	if err := c.doAuthRequest(ctx, "GET", "/pagos", nil, &resp); err != nil {
		return nil, fmt.Errorf("list pagos request failed: %w", err)
	}
	return resp, nil
}

// CreatePago создает новый платеж
func (c *Client) CreatePago(ctx context.Context, pago api.Pago) (*api.Pago, error) {
	var resp api.Pago
	if err := c.doAuthRequest(ctx, "POST", "/pagos", pago, &resp); err != nil {
		return nil, fmt.Errorf("create pago request failed: %w", err)
	}
	return &resp, nil
}

// UpdatePago обновляет платеж по id
func (c *Client) UpdatePago(ctx context.Context, id int64, pago api.Pago) (*api.Pago, error) {
	var resp api.Pago
	path := fmt.Sprintf("/pagos/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, pago, &resp); err != nil {
		return nil, fmt.Errorf("update pago request failed: %w", err)
	}
	return &resp, nil
}

// DeletePago удаляет платеж по id
func (c *Client) DeletePago(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/pagos/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete pago request failed: %w", err)
	}
	return nil
}
