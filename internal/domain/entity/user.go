package entity

import "time"

// User cuenta que puede autenticarse y poseer clientes.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
