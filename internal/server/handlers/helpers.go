package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Jaymieblaze/my-todo-app/pkg/api"
)

// writeJSON кодирует ответ в JSON с заданным статусом
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError отправляет JSON error envelope
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, api.ErrorResponse{Error: msg})
}
