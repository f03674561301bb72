package api

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

// Error represents a failed request against the remote todos resource.
// StatusCode is 0 when the failure happened before any response arrived
// (DNS, connection, timeout).
type Error struct {
	Err        error
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Client представляет HTTP клиент для взаимодействия с remote todos resource.
// Клиент не делает retry: политика повторов живет в очереди pending operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// NewClient создает новый API клиент.
// clientID is attached to every request as X-Client-ID; it may be empty.
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// FetchTodos retrieves the full remote todo collection
func (c *Client) FetchTodos(ctx context.Context) ([]api.Todo, error) {
	var todos []api.Todo
	if err := c.doRequest(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// FetchTodo retrieves a single remote todo by id
func (c *Client) FetchTodo(ctx context.Context, id int) (*api.Todo, error) {
	var todo api.Todo
	path := fmt.Sprintf("/todos/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo creates a todo on the remote resource and returns the server's copy
func (c *Client) CreateTodo(ctx context.Context, payload api.TodoPayload) (*api.Todo, error) {
	var todo api.Todo
	if err := c.doRequest(ctx, http.MethodPost, "/todos", payload, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo replaces a remote todo and returns the server's copy
func (c *Client) UpdateTodo(ctx context.Context, id int, payload api.TodoPayload) (*api.Todo, error) {
	var todo api.Todo
	path := fmt.Sprintf("/todos/%d", id)
	if err := c.doRequest(ctx, http.MethodPut, path, payload, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo deletes a remote todo. A successful response carries no body.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	path := fmt.Sprintf("/todos/%d", id)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Err: err, StatusCode: resp.StatusCode}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &Error{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
