package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/Jaymieblaze/my-todo-app/internal/client/storage"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing todo id. Usage: todo update <id> [-title TITLE] [-completed] [-open]")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid todo id %q", args[0])
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "new title")
	completed := fs.Bool("completed", false, "mark the todo completed")
	open := fs.Bool("open", false, "mark the todo not completed")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var patch api.TodoPatch
	if *title != "" {
		patch.Title = title
	}
	switch {
	case *completed && *open:
		return fmt.Errorf("-completed and -open are mutually exclusive")
	case *completed:
		done := true
		patch.Completed = &done
	case *open:
		done := false
		patch.Completed = &done
	}

	if patch.Title == nil && patch.Completed == nil {
		return fmt.Errorf("nothing to update: pass -title and/or -completed/-open")
	}

	todo, err := c.syncService.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return fmt.Errorf("todo %d not found", id)
		}
		return fmt.Errorf("failed to update todo: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Todo updated!")
	c.io.Printf("ID:        %d\n", todo.ID)
	c.io.Printf("Title:     %s\n", todo.Title)
	c.io.Printf("Completed: %t\n", todo.Completed)

	if !todo.Synced {
		c.io.Println()
		c.io.Println("Note: stored locally. It will sync when the server is reachable.")
	}

	return nil
}
