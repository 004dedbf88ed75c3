package repository

import (
	"context"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// GetByID devuelve (nil, nil) si el proveedor no existe.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
}
