package repository

import (
	"context"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

// LinkWithProduct vínculo cruzado con su producto. Product es nil si el producto
// referenciado ya no existe.
type LinkWithProduct struct {
	Link    entity.ProductSupplierLink
	Product *entity.Product
}

// LinkWithSupplier vínculo cruzado con su proveedor.
type LinkWithSupplier struct {
	Link     entity.ProductSupplierLink
	Supplier *entity.Supplier
}

// ProductSupplierLinkRepository puerto de persistencia de vínculos producto-proveedor.
// Los listados devuelven filas en orden de lectura; el orden por prioridad lo aplica el dominio.
type ProductSupplierLinkRepository interface {
	Create(ctx context.Context, link *entity.ProductSupplierLink) error
	GetByID(ctx context.Context, id string) (*entity.ProductSupplierLink, error)
	Update(ctx context.Context, link *entity.ProductSupplierLink) error
	Delete(ctx context.Context, id string) error

	ListWithProductBySupplier(ctx context.Context, supplierID string) ([]LinkWithProduct, error)
	ListWithSupplierByProduct(ctx context.Context, productID string) ([]LinkWithSupplier, error)
}
