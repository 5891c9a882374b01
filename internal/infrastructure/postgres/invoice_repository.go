package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, due_date, external_id, external_cust_id, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.DueDate,
		&inv.ExternalID, &inv.ExternalCustID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve las facturas del cliente, o todas si customerID va vacío,
// con el nombre del cliente anexado vía JOIN.
func (r *InvoiceRepo) List(ctx context.Context, customerID string) ([]repository.InvoiceRow, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.due_date,
		       i.external_id, i.external_cust_id, i.created_at, i.updated_at,
		       c.name
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE ($1 = '' OR i.customer_id = $1)
		ORDER BY i.due_date, i.id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []repository.InvoiceRow
	for rows.Next() {
		var row repository.InvoiceRow
		inv := &row.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.DueDate,
			&inv.ExternalID, &inv.ExternalCustID, &inv.CreatedAt, &inv.UpdatedAt,
			&row.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByCustomerIDs devuelve las facturas de un conjunto de clientes en una
// sola consulta (carga eager del listado paginado).
func (r *InvoiceRepo) ListByCustomerIDs(ctx context.Context, customerIDs []string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, due_date, external_id, external_cust_id, created_at, updated_at
		FROM invoices WHERE customer_id = ANY($1)
		ORDER BY due_date, id`
	rows, err := r.q.Query(ctx, query, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("list invoices by customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.DueDate,
			&inv.ExternalID, &inv.ExternalCustID, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos editables de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET amount = $2, status = $3, due_date = $4, external_id = $5, external_cust_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.Amount, invoice.Status, invoice.DueDate,
		invoice.ExternalID, invoice.ExternalCustID, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todas las facturas del cliente.
func (r *InvoiceRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete invoices by customer: %w", err)
	}
	return nil
}
