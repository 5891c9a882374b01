package dto

import "github.com/shopspring/decimal"

// StatsSnapshot agregados globales del dashboard, calculados bajo demanda.
// TotalRevenue es siempre un número (0 con la base vacía, nunca null).
type StatsSnapshot struct {
	TotalCustomers           int64           `json:"totalCustomers"`
	TotalOutstandingInvoices int64           `json:"totalOutstandingInvoices"`
	TotalRevenue             decimal.Decimal `json:"totalRevenue"`
}
