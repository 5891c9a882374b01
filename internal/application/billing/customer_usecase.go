package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-api/internal/application/auth"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/pkg/paginate"
)

// CustomerUseCase casos de uso para clientes.
//
// El listado es global: cualquier llamador ve todos los clientes
// (espacio de trabajo compartido del dashboard). La edición y el borrado,
// en cambio, exigen ser el dueño del registro.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	invoiceRepo repository.InvoiceRepository
	tx          TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, invoiceRepo: invoiceRepo, tx: tx}
}

// Create crea un cliente a nombre del llamador, que queda como dueño.
// El nombre se valida tras recortar espacios: "" y "   " son inválidos.
func (uc *CustomerUseCase) Create(ctx context.Context, caller auth.Identity, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        name,
		OwnerUserID: caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer, nil)
	return &resp, nil
}

// List devuelve la página pedida (tamaño fijo 10) con las facturas de cada
// cliente anexadas, y el total de páginas calculado sobre el conteo global.
//
// Página y conteo salen de dos consultas separadas, no atómicas: bajo
// escrituras concurrentes pueden discrepar. Aceptable para un dashboard de
// lectura. Pedir una página más allá de la última devuelve customers vacío
// con el totalPages real.
func (uc *CustomerUseCase) List(ctx context.Context, page int) (*dto.CustomerPageResponse, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pg := paginate.New(page, paginate.DefaultPageSize, total)

	customers, err := uc.repo.List(ctx, pg.Size, pg.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	byCustomer := map[string][]*entity.Invoice{}
	if len(ids) > 0 {
		invoices, err := uc.invoiceRepo.ListByCustomerIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, inv := range invoices {
			byCustomer[inv.CustomerID] = append(byCustomer[inv.CustomerID], inv)
		}
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c, byCustomer[c.ID]))
	}
	return &dto.CustomerPageResponse{Customers: out, TotalPages: pg.TotalPages}, nil
}

// Update cambia el nombre de un cliente del llamador.
// Cliente inexistente y cliente ajeno responden igual (ErrForbidden):
// no se revela a un no-dueño si el recurso existe.
func (uc *CustomerUseCase) Update(ctx context.Context, caller auth.Identity, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if in.ID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.OwnerUserID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	customer.Name = name
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer, nil)
	return &resp, nil
}

// Delete elimina un cliente del llamador junto con sus facturas, en una
// sola transacción. Mismo chequeo de existencia/dueño que Update.
func (uc *CustomerUseCase) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if caller.IsZero() {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil || customer.OwnerUserID != caller.UserID {
		return domain.ErrForbidden
	}
	return uc.tx.RunBilling(ctx, func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return customerRepo.Delete(ctx, id)
	})
}

func toCustomerResponse(c *entity.Customer, invoices []*entity.Invoice) dto.CustomerResponse {
	out := dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		OwnerUserID: c.OwnerUserID,
		Invoices:    make([]dto.InvoiceResponse, 0, len(invoices)),
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, toInvoiceResponse(inv, ""))
	}
	return out
}
