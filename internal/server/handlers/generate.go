package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jaymieblaze/my-todo-app/internal/server/ai"
	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// GenerateHandler проксирует запросы генерации задач к AI модели
type GenerateHandler struct {
	logger    *slog.Logger
	generator ai.TaskGenerator
}

func NewGenerateHandler(logger *slog.Logger, generator ai.TaskGenerator) *GenerateHandler {
	return &GenerateHandler{
		logger:    logger,
		generator: generator,
	}
}

// Generate обрабатывает POST /api/generate-tasks
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req api.GenerateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Prompt is required")
		return
	}

	tasks, err := h.generator.GenerateTasks(r.Context(), req.Prompt)
	if err != nil {
		h.logger.Error("failed to generate tasks", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to generate tasks")
		return
	}

	h.logger.Info("tasks generated", "count", len(tasks))
	writeJSON(w, h.logger, http.StatusOK, api.GenerateTasksResponse{Tasks: tasks})
}
