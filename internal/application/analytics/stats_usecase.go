// Package analytics contiene los agregados read-only del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// StatsUseCase calcula el snapshot de estadísticas globales del dashboard:
// total de clientes, facturas pendientes y revenue acumulado. Sin filtro por
// dueño: los agregados son globales para todos los usuarios.
//
// Fuente de datos: StatsRepository (consultas read-only). Nada se persiste;
// el snapshot se calcula en cada petición.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetSnapshot construye el StatsSnapshot.
//
// Tres llamadas en paralelo:
//  1. CountCustomers        → TotalCustomers
//  2. CountPendingInvoices  → TotalOutstandingInvoices
//  3. SumInvoiceAmounts     → TotalRevenue (0 con la base vacía, nunca null)
func (uc *StatsUseCase) GetSnapshot(ctx context.Context) (*dto.StatsSnapshot, error) {
	type countResult struct {
		n   int64
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	customersCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	revenueCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.statsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountPendingInvoices(ctx)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.statsRepo.SumInvoiceAmounts(ctx)
		revenueCh <- sumResult{total, err}
	}()

	customers := <-customersCh
	pending := <-pendingCh
	revenue := <-revenueCh

	if customers.err != nil {
		return nil, fmt.Errorf("stats: total de clientes: %w", customers.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("stats: facturas pendientes: %w", pending.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("stats: revenue total: %w", revenue.err)
	}

	return &dto.StatsSnapshot{
		TotalCustomers:           customers.n,
		TotalOutstandingInvoices: pending.n,
		TotalRevenue:             revenue.total,
	}, nil
}
