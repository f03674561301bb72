package cli

import (
	"context"
	"fmt"
	"sort"
)

func (c *Cli) runList(ctx context.Context) error {
	todos, err := c.syncService.ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}

	// Хранилище не гарантирует порядок, сортируем по id
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID < todos[j].ID
	})

	return c.render("todo list", todoListTemplate, todos)
}
