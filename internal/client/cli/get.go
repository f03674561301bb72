package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing todo id. Usage: todo get <id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid todo id %q", args[0])
	}

	todo, err := c.syncService.GetTodo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return fmt.Errorf("todo %d not found", id)
		}
		return fmt.Errorf("failed to get todo: %w", err)
	}

	return c.render("todo details", todoDetailsTemplate, todo)
}
