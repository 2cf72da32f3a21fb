package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyCollected   = errors.New("el pedido ya fue cobrado")
)

// ValidationError acumula todas las razones de rechazo de una entrada.
// La operación se valida completa antes de escribir: el llamador recibe la
// lista entera de fallas, no solo la primera.
type ValidationError struct {
	Reasons []string
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return "entrada inválida: " + strings.Join(e.Reasons, "; ")
}

// Add agrega una razón de rechazo.
func (e *ValidationError) Add(reason string) {
	e.Reasons = append(e.Reasons, reason)
}

// AddAll agrega varias razones de rechazo.
func (e *ValidationError) AddAll(reasons []string) {
	e.Reasons = append(e.Reasons, reasons...)
}

// OrNil devuelve el error solo si acumuló razones.
func (e *ValidationError) OrNil() error {
	if len(e.Reasons) == 0 {
		return nil
	}
	return e
}

// AsValidation extrae un *ValidationError de la cadena de errores.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
