package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// Dashboard запрашивает данные дашборда.
// Форма ответа принадлежит серверу, поэтому отдаем сырой JSON:
// вызывающий сам решает, что из него показать.
func (c *Client) Dashboard(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.doAuthRequest(ctx, "GET", "/dashboard-data", nil, &resp); err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	return resp, nil
}
