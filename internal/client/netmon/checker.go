package netmon

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"
)

// DefaultInterval is the polling interval used by cmd/client.
const DefaultInterval = 5 * time.Second

// Probe reports whether the remote server is currently reachable.
type Probe func(ctx context.Context) bool

// HTTPProbe returns a probe that issues a HEAD request against baseURL.
// Любой HTTP ответ считается признаком доступности: нас интересует
// достижимость сервера, а не его здоровье.
func HTTPProbe(baseURL string) Probe {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}
}

// Checker is a polling Monitor. A transition is published only after the
// probe result has been stable for two consecutive samples, so a single
// dropped request does not flip the client into offline mode.
type Checker struct {
	probe    Probe
	logger   *slog.Logger
	interval time.Duration

	mu         sync.Mutex
	state      State
	lastSample bool
	subs       []func(online bool)

	wg sync.WaitGroup
}

var _ Monitor = (*Checker)(nil)

// NewChecker creates a monitor polling probe every interval.
func NewChecker(probe Probe, interval time.Duration, logger *slog.Logger) *Checker {
	return &Checker{
		probe:    probe,
		interval: interval,
		logger:   logger,
	}
}

// Start samples the initial state synchronously and begins polling in the
// background until ctx is cancelled.
func (c *Checker) Start(ctx context.Context) {
	online := c.probe(ctx)

	c.mu.Lock()
	c.state = stateOf(online)
	c.lastSample = online
	c.mu.Unlock()

	c.logger.Info("connectivity monitor started", "state", c.State())

	c.wg.Add(1)
	go c.loop(ctx)
}

// Wait blocks until the polling goroutine has exited.
func (c *Checker) Wait() {
	c.wg.Wait()
}

// State returns the current connectivity state.
func (c *Checker) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a transition callback.
func (c *Checker) Subscribe(fn func(online bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Checker) loop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sample(ctx)
		}
	}
}

// sample опрашивает probe и публикует переход, если результат стабилен.
func (c *Checker) sample(ctx context.Context) {
	online := c.probe(ctx)

	c.mu.Lock()
	stable := online == c.lastSample
	c.lastSample = online
	changed := stable && stateOf(online) != c.state
	if !changed {
		c.mu.Unlock()
		return
	}
	c.state = stateOf(online)
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	c.logger.Info("connectivity changed", "online", online)

	for _, fn := range subs {
		fn(online)
	}
}

func stateOf(online bool) State {
	if online {
		return StateOnline
	}
	return StateOffline
}
