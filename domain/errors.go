package domain

import (
	"errors"
	"fmt"
)

// ErrorCode representa un código de error del dominio.
type ErrorCode string

// Códigos de error estándar
const (
	// ErrNoError indica éxito (sin error)
	ErrNoError ErrorCode = "NO_ERROR"

	// Errores de validación estructural del wire format
	ErrMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrInvalidType          ErrorCode = "INVALID_TYPE"
	ErrInvalidEnum          ErrorCode = "INVALID_ENUM"
	ErrInvalidNumber        ErrorCode = "INVALID_NUMBER"
	ErrInvalidTimestamp     ErrorCode = "INVALID_TIMESTAMP"
	ErrInvalidSideEffect    ErrorCode = "INVALID_SIDE_EFFECT"

	// Errores de sistema
	ErrUnknown ErrorCode = "UNKNOWN"
)

// TradingError representa un error del dominio con contexto.
type TradingError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implementa la interfaz error.
func (e *TradingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implementa la interfaz errors.Unwrap.
func (e *TradingError) Unwrap() error {
	return e.Wrapped
}

// WithDetail agrega un detalle al error.
func (e *TradingError) WithDetail(key string, value interface{}) *TradingError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewError crea un nuevo TradingError.
//
// Example:
//
//	err := domain.NewError(domain.ErrMissingRequiredField, "Order is nil")
func NewError(code ErrorCode, message string) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError envuelve un error existente con contexto del dominio.
//
// Example:
//
//	err := domain.WrapError(domain.ErrInvalidType, "decode failed", originalErr)
func WrapError(code ErrorCode, message string, wrapped error) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// IsValidation indica si un error proviene de validación estructural del wire
// format (ValidationError o ValidationErrors).
func IsValidation(err error) bool {
	var single *ValidationError
	var multi *ValidationErrors
	return errors.As(err, &single) || errors.As(err, &multi)
}
