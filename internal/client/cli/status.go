package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	if c.monitor.State() == netmon.StateOnline {
		c.io.Println("Connectivity: online")
	} else {
		c.io.Println("Connectivity: offline")
	}

	pendingCount, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) waiting\n", pendingCount)
		if c.monitor.State() == netmon.StateOnline {
			c.io.Println("Run 'todo sync' to replay them now.")
		} else {
			c.io.Println("They will sync once the server is reachable.")
		}
	} else {
		c.io.Println("✓ All changes synchronized with the server")
	}

	lastReplay, err := c.syncService.LastReplayTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}

	c.io.Println()
	if lastReplay.IsZero() {
		c.io.Println("Last successful sync: never")
	} else {
		c.io.Printf("Last successful sync: %s\n", lastReplay.Local().Format(time.RFC3339))
	}

	return nil
}
