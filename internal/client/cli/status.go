package cli

import (
	"context"
	"time"
)

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Not authenticated.")
		c.io.Println("Run 'nutriplan login' to start a session.")
		return nil
	}

	identity, ok := c.session.Identity()
	if !ok {
		c.io.Println("Not authenticated.")
		return nil
	}

	c.io.Println("Authenticated.")
	c.io.Printf("User:  %s <%s>\n", identity.Name, identity.Email)
	c.io.Printf("ID:    %s\n", identity.ID)
	c.io.Printf("Role:  %s\n", identity.Rol)

	if expiresAt, err := c.session.ExpiresAt(); err == nil {
		c.io.Printf("Token expires at: %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
	}

	return nil
}
