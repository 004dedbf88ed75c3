package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/replenishment"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// ProductUseCase consultas de productos. Stock y precio los mantiene el subsistema de
// inventario; aquí solo se leen.
type ProductUseCase struct {
	repo  repository.ProductRepository
	links repository.ProductSupplierLinkRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, links repository.ProductSupplierLinkRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, links: links}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.NewPersistenceError("listar productos", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Suppliers devuelve los proveedores de un producto ordenados por prioridad; el primero es el
// preferido. Los umbrales y SKU ya vienen resueltos con la cascada.
func (uc *ProductUseCase) Suppliers(ctx context.Context, productID string) ([]dto.ProductSupplierDTO, error) {
	product, err := uc.get(ctx, productID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.links.ListWithSupplierByProduct(ctx, product.ID)
	if err != nil {
		return nil, domain.NewPersistenceError("listar proveedores del producto", err)
	}
	rows = replenishment.SortSupplierLinks(rows)

	out := make([]dto.ProductSupplierDTO, 0, len(rows))
	for _, r := range rows {
		link := r.Link
		out = append(out, dto.ProductSupplierDTO{
			LinkID:             link.ID,
			SupplierID:         r.Supplier.ID,
			SupplierName:       r.Supplier.Name,
			ContactName:        r.Supplier.ContactName,
			SupplierSKU:        link.SupplierSKU,
			UnitCost:           link.UnitCost,
			EffectiveThreshold: replenishment.EffectiveThreshold(&link, product),
			EffectiveSKU:       replenishment.EffectiveSKU(&link, product),
			Priority:           link.Priority,
			HasContact:         replenishment.ResolveContactPhone(r.Supplier.WhatsApp, r.Supplier.Phone) != "",
		})
	}
	return out, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("product required")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Barcode:          p.Barcode,
		Stock:            p.Stock,
		PurchasePrice:    p.PurchasePrice,
		ReorderThreshold: p.ReorderThreshold,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
