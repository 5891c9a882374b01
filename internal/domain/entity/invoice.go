package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. Conjunto cerrado; el estado se puede fijar en
// cualquier dirección (no es una máquina de estados de un solo sentido).
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// ValidInvoiceStatus indica si s pertenece al conjunto de estados permitidos.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice representa una factura de un cliente.
// ExternalID y ExternalCustID son referencias numéricas opcionales a un
// sistema contable externo.
type Invoice struct {
	ID             string
	CustomerID     string
	Amount         decimal.Decimal
	Status         string // pending | paid
	DueDate        time.Time
	ExternalID     *int64
	ExternalCustID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
