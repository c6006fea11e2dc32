package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"commerceadmin_api/internal/panel/business/models"
)

// Field описывает одно правило схемы: обязательность, лимит длины и
// произвольная дополнительная проверка. Одна схема обслуживает все
// ресурсы панели вместо дублирования ad hoc проверок в каждом сервисе.
type Field[T any] struct {
	Label    string
	Required bool
	MaxLen   int
	Value    func(T) string
	Check    func(T) string
}

type Schema[T any] struct {
	fields []Field[T]
}

func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	return &Schema[T]{fields: fields}
}

// Validate собирает все нарушения сразу и возвращает их одной ошибкой.
func (s *Schema[T]) Validate(data T) error {
	var violations []string

	for _, field := range s.fields {
		var value string
		if field.Value != nil {
			value = field.Value(data)
		}

		if field.Required && strings.TrimSpace(value) == "" {
			violations = append(violations, fmt.Sprintf("%s is required", field.Label))
		}
		if field.MaxLen > 0 && len(value) > field.MaxLen {
			violations = append(violations,
				fmt.Sprintf("%s must be less than %d characters", field.Label, field.MaxLen))
		}
		if field.Check != nil {
			if violation := field.Check(data); violation != "" {
				violations = append(violations, violation)
			}
		}
	}

	if len(violations) > 0 {
		return &models.ValidationError{Violations: violations}
	}
	return nil
}

var validImageExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// ValidateImageFile проверяет расширение и размер файла до отправки.
func ValidateImageFile(filename string, size, maxBytes int64) error {
	var violations []string

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := validImageExtensions[ext]; !ok {
		violations = append(violations, "invalid file type, expected JPEG, PNG, WebP or GIF")
	}
	if size > maxBytes {
		violations = append(violations,
			fmt.Sprintf("file size too large, expected at most %d bytes", maxBytes))
	}

	if len(violations) > 0 {
		return &models.ValidationError{Violations: violations}
	}
	return nil
}
