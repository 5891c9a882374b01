package dto

import "github.com/shopspring/decimal"

// El formato de cable es camelCase: es el contrato que ya consume el
// dashboard (ownerUserId, customerId, dueDate, totalPages...).

// CreateCustomerRequest body para POST /customers.
type CreateCustomerRequest struct {
	Name string `json:"name"`
}

// UpdateCustomerRequest body para PATCH /customers.
type UpdateCustomerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerResponse cliente en respuestas, con sus facturas anexadas
// en el listado paginado.
type CustomerResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	OwnerUserID string            `json:"ownerUserId"`
	Invoices    []InvoiceResponse `json:"invoices"`
}

// CustomerPageResponse página de clientes para GET /customers.
type CustomerPageResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalPages int                `json:"totalPages"`
}

// UpdateInvoiceRequest body para PATCH /invoices. Los campos opcionales son
// punteros: solo los campos presentes en el body sobrescriben la factura.
type UpdateInvoiceRequest struct {
	ID             string           `json:"id"`
	Amount         *decimal.Decimal `json:"amount"`
	Status         *string          `json:"status"`
	DueDate        *string          `json:"dueDate"` // fecha ISO-8601 (YYYY-MM-DD)
	ExternalID     *int64           `json:"externalId"`
	ExternalCustID *int64           `json:"externalCustId"`
}

// InvoiceResponse factura en respuestas. CustomerName va anexado en los
// listados para mostrar en el dashboard.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	DueDate        string          `json:"dueDate"`
	ExternalID     *int64          `json:"externalId,omitempty"`
	ExternalCustID *int64          `json:"externalCustId,omitempty"`
}
