package repository

import (
	"context"

	"github.com/jhoicas/billing-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve una página de clientes ordenados por fecha de creación.
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	// Count devuelve el total de clientes. Se consulta por separado de List:
	// página y conteo no son atómicos entre sí.
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
