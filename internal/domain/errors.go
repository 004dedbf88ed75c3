package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNoContact    = errors.New("el proveedor no tiene whatsapp ni teléfono")
)

// ValidationError describe una entrada rechazada. errors.Is(err, ErrInvalidInput) es verdadero.
type ValidationError struct {
	Msg string
}

// NewValidationError construye el error con el mensaje visible para el cliente.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string { return e.Msg }

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// PersistenceError envuelve una falla del repositorio (consulta, timeout, conexión).
// El detalle se registra en el servidor; al cliente solo llega un mensaje genérico.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError envuelve err con la operación que falló.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
