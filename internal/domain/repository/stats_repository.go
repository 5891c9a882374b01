package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas de agregados globales (solo lectura).
type StatsRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountPendingInvoices(ctx context.Context) (int64, error)
	// SumInvoiceAmounts suma amount sobre todas las facturas; devuelve 0
	// (nunca null) si no hay facturas.
	SumInvoiceAmounts(ctx context.Context) (decimal.Decimal, error)
}
