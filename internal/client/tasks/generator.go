// Package tasks содержит клиент генерации списков задач.
//
// Generation is a pure producer of candidate titles: the caller feeds the
// returned strings through the normal add path, and sync correctness does
// not depend on it.
package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

//go:generate moq -out generator_mock.go . Generator

// Generator turns a free-form prompt into a list of todo titles.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]string, error)
}

// Client вызывает endpoint генерации задач на сервере.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ Generator = (*Client)(nil)

// NewClient creates a task-generation client. Generation goes through a
// language model upstream, so the timeout is generous.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate запрашивает список задач по prompt.
func (c *Client) Generate(ctx context.Context, prompt string) ([]string, error) {
	body, err := json.Marshal(api.GenerateTasksRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/api/generate-tasks"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("generate failed with status %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("generate failed with status %d", resp.StatusCode)
	}

	var result api.GenerateTasksResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Tasks, nil
}
