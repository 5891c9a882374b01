package billing_test

import (
	"context"
	"sort"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	order     []string // orden de inserción, emula ORDER BY created_at
	failWith  error    // si no es nil, toda operación falla con este error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *c
	r.customers[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Customer
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		cp := *r.customers[r.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Count(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.order), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.customers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	names    map[string]string // customerID -> nombre, para el JOIN del listado
	failWith error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}, names: map[string]string{}}
}

func (r *fakeInvoiceRepo) put(inv entity.Invoice) {
	r.invoices[inv.ID] = &inv
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, customerID string) ([]repository.InvoiceRow, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []repository.InvoiceRow
	for _, inv := range r.invoices {
		if customerID != "" && inv.CustomerID != customerID {
			continue
		}
		out = append(out, repository.InvoiceRow{Invoice: *inv, CustomerName: r.names[inv.CustomerID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Invoice.ID < out[j].Invoice.ID })
	return out, nil
}

func (r *fakeInvoiceRepo) ListByCustomerIDs(_ context.Context, customerIDs []string) ([]*entity.Invoice, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	wanted := map[string]bool{}
	for _, id := range customerIDs {
		wanted[id] = true
	}
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if wanted[inv.CustomerID] {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteByCustomer(_ context.Context, customerID string) error {
	if r.failWith != nil {
		return r.failWith
	}
	for id, inv := range r.invoices {
		if inv.CustomerID == customerID {
			delete(r.invoices, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin tx real).
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	invoices  *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.customers, r.invoices)
}
