package validation

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxTitleLen максимальная длина заголовка задачи
	MaxTitleLen = 500
)

// Validation errors surfaced to the caller before any storage write
var (
	// ErrEmptyTitle indicates an empty or whitespace-only title
	ErrEmptyTitle = errors.New("title cannot be empty")
)

// ValidateTitle проверяет, что заголовок задачи соответствует требованиям.
// Пустые заголовки и заголовки из одних пробелов отклоняются до записи
// в локальное хранилище.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}
