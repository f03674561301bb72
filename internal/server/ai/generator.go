// Package ai генерирует списки задач через языковую модель.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

//go:generate moq -out generator_mock.go . TaskGenerator

// TaskGenerator turns a free-form prompt into a list of todo titles.
type TaskGenerator interface {
	GenerateTasks(ctx context.Context, prompt string) ([]string, error)
}

// promptTemplate просит модель вернуть плоский список через запятую,
// чтобы ответ резался без парсинга markdown.
const promptTemplate = `Generate a list of 3-5 todo tasks based on the following prompt: %q. ` +
	`The output should be a clean, unformatted list of tasks. Each task should be separated by a comma. ` +
	`For example: "Write a blog post about Go, Research new front-end frameworks, Deploy the project". ` +
	`Do not include any markdown, numbering, or bullet points.`

// AnthropicGenerator generates tasks through the Anthropic Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  anthropic.Model
	logger *slog.Logger
}

var _ TaskGenerator = (*AnthropicGenerator)(nil)

// NewAnthropicGenerator creates a generator authenticated with apiKey.
func NewAnthropicGenerator(apiKey string, logger *slog.Logger) *AnthropicGenerator {
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.ModelClaudeSonnet4_5,
		logger: logger,
	}
}

// GenerateTasks asks the model for task titles and splits the reply.
func (g *AnthropicGenerator) GenerateTasks(ctx context.Context, prompt string) ([]string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(promptTemplate, prompt))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	tasks := SplitTasks(text.String())
	g.logger.Debug("generated tasks", "prompt_len", len(prompt), "count", len(tasks))

	return tasks, nil
}

// SplitTasks разбивает ответ модели по запятым, отбрасывая пустые элементы.
func SplitTasks(text string) []string {
	parts := strings.Split(text, ",")
	tasks := make([]string, 0, len(parts))
	for _, part := range parts {
		if task := strings.TrimSpace(part); task != "" {
			tasks = append(tasks, task)
		}
	}
	return tasks
}
