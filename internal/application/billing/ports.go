package billing

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción, con repositorios
// atados a ella. Lo usa el borrado de clientes para eliminar cliente y
// facturas de forma atómica: sin la transacción podrían quedar facturas
// colgando de un cliente ya borrado.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator genera el documento PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
