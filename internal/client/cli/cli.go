package cli

import (
	"context"
	"fmt"

	"github.com/Jaymieblaze/my-todo-app/internal/client/iocli"
	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
	"github.com/Jaymieblaze/my-todo-app/internal/client/sync"
	"github.com/Jaymieblaze/my-todo-app/internal/client/tasks"
)

// defaultUserID используется для todos, созданных из CLI без явного owner.
const defaultUserID = 1

type Cli struct {
	syncService sync.Service
	generator   tasks.Generator
	monitor     netmon.Monitor
	io          iocli.IO
}

func New(syncService sync.Service, generator tasks.Generator, monitor netmon.Monitor, io iocli.IO) *Cli {
	return &Cli{
		syncService: syncService,
		generator:   generator,
		monitor:     monitor,
		io:          io,
	}
}

// Run выполняет команду. Ошибка возвращается вызывающему, exit code
// решает cmd/client.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	case "generate":
		return c.runGenerate(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints command help to the configured writer.
func (c *Cli) PrintUsage() {
	if err := c.render("usage", usageTemplate, nil); err != nil {
		c.io.Printf("failed to render usage: %v\n", err)
	}
}
