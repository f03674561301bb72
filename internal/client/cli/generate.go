package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runGenerate(ctx context.Context, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		input, err := c.io.ReadInput("Prompt (e.g., 'plan a road trip'): ")
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}
		prompt = input
	}
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	c.io.Println()
	c.io.Println("Generating tasks...")

	titles, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate tasks: %w", err)
	}
	if len(titles) == 0 {
		c.io.Println("The model returned no tasks. Try a more specific prompt.")
		return nil
	}

	// Каждый сгенерированный title проходит обычный путь добавления,
	// включая валидацию и очередь синхронизации.
	added := 0
	for _, title := range titles {
		todo, err := c.syncService.Add(ctx, title, defaultUserID)
		if err != nil {
			c.io.Printf("Skipping %q: %v\n", title, err)
			continue
		}
		c.io.Printf("  + %d  %s\n", todo.ID, todo.Title)
		added++
	}

	c.io.Println()
	c.io.Printf("✓ Added %d of %d generated task(s).\n", added, len(titles))

	return nil
}
