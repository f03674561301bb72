package cli

import (
	"fmt"
	"text/template"
)

// render parses and executes a template against the CLI writer.
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return nil
}

const usageTemplate = `
Todo Client

Usage:
  todo [OPTIONS] COMMAND

Options:
  --version        Show version information
  --server URL     Remote todos resource URL (default: https://jsonplaceholder.typicode.com)
  --api URL        Task-generation server URL (default: http://localhost:8080)
  --db PATH        Path to local database (default: todo-client.db)
  --offline        Force offline mode, skip the connectivity probe

Commands:
  add <title>             Add a todo (works offline)
  list                    List active todos
  get <id>                Show one todo
  update <id> [flags]     Update a todo (-title, -completed)
  delete <id>             Delete a todo (soft delete until synced)
  sync                    Replay queued operations against the server
  status                  Show connectivity and pending-queue state
  generate <prompt>       Generate todos from a prompt via the AI endpoint

Examples:
  todo add Buy milk
  todo update 201 -completed
  todo --offline list
  todo generate plan a camping weekend
`

const todoListTemplate = `
=== Todos ===

{{- if eq (len .) 0 }}

No todos found.

Use 'todo add <title>' to add your first todo.
{{ else }}

Found {{len .}} todo(s):

{{- range . }}
  [{{ if .Completed }}x{{ else }} {{ end }}] {{ .ID }}  {{ .Title }}{{ if not .Synced }}  (not synced){{ end }}
{{- end }}
{{ end }}
`

const todoDetailsTemplate = `
=== Todo Details ===

ID:        {{.ID}}
Title:     {{.Title}}
Completed: {{.Completed}}
User:      {{.UserID}}
Synced:    {{.Synced}}
Created:   {{.CreatedAt.Format "2006-01-02 15:04:05"}}
Updated:   {{.UpdatedAt.Format "2006-01-02 15:04:05"}}
`
