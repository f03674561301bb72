package cli

import (
	"context"
	"fmt"

	"github.com/Jaymieblaze/my-todo-app/internal/client/netmon"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if c.monitor.State() != netmon.StateOnline {
		return fmt.Errorf("server is not reachable; queued operations will sync later")
	}

	result, err := c.syncService.Replay(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Attempted == 0 {
		c.io.Println("✓ Nothing to sync, queue is empty.")
		return nil
	}

	c.io.Println("✓ Synchronization finished!")
	c.io.Println()
	c.io.Printf("Attempted: %d operation(s)\n", result.Attempted)
	c.io.Printf("Completed: %d\n", result.Completed)
	if result.Failed > 0 {
		c.io.Printf("Failed:    %d (left queued for the next sync)\n", result.Failed)
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped:   %d (waiting on an earlier failed operation)\n", result.Skipped)
	}

	return nil
}
