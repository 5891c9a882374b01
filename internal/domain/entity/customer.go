package entity

import "time"

// Customer representa un cliente de facturación.
// OwnerUserID es el usuario que lo creó; es inmutable y autoriza
// la edición y el borrado del registro.
type Customer struct {
	ID          string
	Name        string
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
