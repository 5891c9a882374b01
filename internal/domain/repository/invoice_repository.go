package repository

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
)

// InvoiceRow fila de listado: la factura más el nombre de su cliente,
// anexado para mostrar en el dashboard.
type InvoiceRow struct {
	Invoice      entity.Invoice
	CustomerName string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// La creación y el borrado individual no se exponen: las facturas entran por
// integraciones externas y solo se eliminan en cascada con su cliente.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List devuelve las facturas del cliente indicado, o todas si customerID
	// va vacío, cada una con el nombre del cliente.
	List(ctx context.Context, customerID string) ([]InvoiceRow, error)
	// ListByCustomerIDs devuelve las facturas de un conjunto de clientes
	// (carga eager del listado paginado).
	ListByCustomerIDs(ctx context.Context, customerIDs []string) ([]*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// DeleteByCustomer elimina todas las facturas del cliente (cascada del delete).
	DeleteByCustomer(ctx context.Context, customerID string) error
}
