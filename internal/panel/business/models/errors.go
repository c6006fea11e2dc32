package models

import (
	"errors"
	"fmt"
	"strings"
)

// RequestError — транспортная ошибка: не-2xx ответ или сбой сети.
// Message берётся из тела ошибки бэкенда, если оно парсится.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewHTTPStatusError строит RequestError с generic-сообщением,
// когда тело ошибки распарсить не удалось.
func NewHTTPStatusError(status int) *RequestError {
	return &RequestError{
		Status:  status,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
	}
}

// TimeoutError — дедлайн запроса истёк до получения ответа.
type TimeoutError struct {
	Endpoint string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out", e.Endpoint)
}

// NotFoundError — 404 при запросе одиночного ресурса.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ValidationError собирает все нарушенные правила сразу, а не только
// первое, чтобы вызывающая сторона могла показать весь список.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// IsNotFound сообщает, относится ли ошибка к классу "не найдено":
// типизированный NotFoundError либо транспортный 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var re *RequestError
	return errors.As(err, &re) && re.Status == 404
}

// IsValidation сообщает, была ли ошибка отбита до сетевого вызова.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
