package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))

	// Без аргументов спрашиваем интерактивно
	if title == "" {
		input, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		title = input
	}

	todo, err := c.syncService.Add(ctx, title, defaultUserID)
	if err != nil {
		return fmt.Errorf("failed to add todo: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Todo added!")
	c.io.Printf("ID:    %d\n", todo.ID)
	c.io.Printf("Title: %s\n", todo.Title)

	if !todo.Synced {
		c.io.Println()
		c.io.Println("Note: stored locally. It will sync when the server is reachable.")
	}

	return nil
}
