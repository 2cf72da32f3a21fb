package entity

import "time"

// User operador autenticado del sistema. No hay modelo de roles: alcanza con
// estar autenticado para operar.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
