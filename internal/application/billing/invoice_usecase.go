package billing

import (
	"context"
	"time"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

const dueDateLayout = "2006-01-02"

// InvoiceUseCase casos de uso para facturas: listado y edición.
// Las facturas no se crean ni se borran por aquí; entran por integraciones
// externas y se eliminan solo en cascada con su cliente.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List devuelve las facturas del cliente indicado, o todas si customerID va
// vacío. Cada fila lleva el nombre de su cliente para mostrar en el dashboard.
// No se filtra por dueño en esta capa.
func (uc *InvoiceUseCase) List(ctx context.Context, customerID string) ([]dto.InvoiceResponse, error) {
	rows, err := uc.repo.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, row := range rows {
		inv := row.Invoice
		out = append(out, toInvoiceResponse(&inv, row.CustomerName))
	}
	return out, nil
}

// Update modifica exactamente los campos presentes en el body (los punteros
// no nulos). Reglas: amount no negativo, status dentro del conjunto cerrado
// {pending, paid} — re-asignable en cualquier dirección —, dueDate fecha
// ISO-8601. Última escritura gana: no se detectan ediciones concurrentes.
func (uc *InvoiceUseCase) Update(ctx context.Context, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		invoice.Amount = *in.Amount
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		invoice.Status = *in.Status
	}
	if in.DueDate != nil {
		due, err := parseDueDate(*in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		invoice.DueDate = due
	}
	if in.ExternalID != nil {
		invoice.ExternalID = in.ExternalID
	}
	if in.ExternalCustID != nil {
		invoice.ExternalCustID = in.ExternalCustID
	}

	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice, "")
	return &resp, nil
}

// parseDueDate acepta fecha ISO (YYYY-MM-DD) o timestamp RFC3339 completo.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(dueDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toInvoiceResponse(inv *entity.Invoice, customerName string) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:             inv.ID,
		CustomerID:     inv.CustomerID,
		CustomerName:   customerName,
		Amount:         inv.Amount,
		Status:         inv.Status,
		DueDate:        inv.DueDate.Format(dueDateLayout),
		ExternalID:     inv.ExternalID,
		ExternalCustID: inv.ExternalCustID,
	}
}
