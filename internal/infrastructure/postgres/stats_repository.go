package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los agregados del dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountCustomers total de clientes registrados.
func (r *StatsRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountCustomers: %w", err)
	}
	return n, nil
}

// CountPendingInvoices total de facturas con status = 'pending'.
func (r *StatsRepo) CountPendingInvoices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE status = 'pending'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountPendingInvoices: %w", err)
	}
	return n, nil
}

// SumInvoiceAmounts suma amount sobre todas las facturas.
// COALESCE garantiza 0 con la tabla vacía en vez de NULL.
func (r *StatsRepo) SumInvoiceAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM invoices`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.SumInvoiceAmounts: %w", err)
	}
	return total, nil
}
