package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

func (c *Cli) RunDashboard(ctx context.Context) error {
	if err := c.guard(viewDashboard); err != nil {
		return err
	}

	data, err := c.api.Dashboard(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	// Форма ответа принадлежит серверу: печатаем как есть, с отступами
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format dashboard data: %w", err)
	}

	c.io.Println("=== Dashboard ===")
	c.io.Println(pretty.String())

	return nil
}
