package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing todo id. Usage: todo delete <id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid todo id %q", args[0])
	}

	if err := c.syncService.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return fmt.Errorf("todo %d not found", id)
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Todo %d deleted.\n", id)
	c.io.Println("The remote copy is removed on the next sync.")

	return nil
}
