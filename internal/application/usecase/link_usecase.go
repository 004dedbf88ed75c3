package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// LinkUseCase administra los vínculos producto-proveedor y sus valores propios
// (SKU, costo, umbral, cantidad de pedido, prioridad).
type LinkUseCase struct {
	links     repository.ProductSupplierLinkRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewLinkUseCase construye el caso de uso.
func NewLinkUseCase(
	links repository.ProductSupplierLinkRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
) *LinkUseCase {
	return &LinkUseCase{links: links, products: products, suppliers: suppliers}
}

// Create crea un vínculo. Producto y proveedor deben existir. No se impide un segundo
// vínculo para el mismo par: al resolver gana el primero por prioridad.
func (uc *LinkUseCase) Create(ctx context.Context, in dto.CreateLinkRequest) (*dto.LinkResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	supplierID := strings.TrimSpace(in.SupplierID)
	if productID == "" {
		return nil, domain.NewValidationError("product required")
	}
	if supplierID == "" {
		return nil, domain.NewValidationError("supplier required")
	}
	if err := checkOverrides(in.ReorderThreshold, in.DefaultReorderQty, in.UnitCost); err != nil {
		return nil, err
	}

	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, domain.NewPersistenceError("obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, domain.NewPersistenceError("obtener proveedor", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	link := &entity.ProductSupplierLink{
		ID:                uuid.New().String(),
		ProductID:         productID,
		SupplierID:        supplierID,
		SupplierSKU:       trimmedOrNil(in.SupplierSKU),
		UnitCost:          in.UnitCost,
		ReorderThreshold:  in.ReorderThreshold,
		DefaultReorderQty: in.DefaultReorderQty,
		Priority:          in.Priority,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.links.Create(ctx, link); err != nil {
		return nil, domain.NewPersistenceError("crear vínculo", err)
	}
	return toLinkResponse(link), nil
}

// Update actualiza los valores propios del vínculo. Producto y proveedor no cambian.
// Los campos listados en Clear quedan en NULL y el vínculo vuelve a heredar del producto.
func (uc *LinkUseCase) Update(ctx context.Context, id string, in dto.UpdateLinkRequest) (*dto.LinkResponse, error) {
	link, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOverrides(in.ReorderThreshold, in.DefaultReorderQty, in.UnitCost); err != nil {
		return nil, err
	}
	cleared, err := clearSet(in.Clear, map[string]bool{
		"supplier_sku":        in.SupplierSKU != nil,
		"unit_cost":           in.UnitCost != nil,
		"reorder_threshold":   in.ReorderThreshold != nil,
		"default_reorder_qty": in.DefaultReorderQty != nil,
	})
	if err != nil {
		return nil, err
	}
	if in.SupplierSKU != nil {
		link.SupplierSKU = trimmedOrNil(in.SupplierSKU)
	}
	if in.UnitCost != nil {
		link.UnitCost = in.UnitCost
	}
	if in.ReorderThreshold != nil {
		link.ReorderThreshold = in.ReorderThreshold
	}
	if in.DefaultReorderQty != nil {
		link.DefaultReorderQty = in.DefaultReorderQty
	}
	if in.Priority != nil {
		link.Priority = *in.Priority
	}
	if cleared["supplier_sku"] {
		link.SupplierSKU = nil
	}
	if cleared["unit_cost"] {
		link.UnitCost = nil
	}
	if cleared["reorder_threshold"] {
		link.ReorderThreshold = nil
	}
	if cleared["default_reorder_qty"] {
		link.DefaultReorderQty = nil
	}
	link.UpdatedAt = time.Now()
	if err := uc.links.Update(ctx, link); err != nil {
		return nil, domain.NewPersistenceError("actualizar vínculo", err)
	}
	return toLinkResponse(link), nil
}

// Delete elimina un vínculo.
func (uc *LinkUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.links.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("eliminar vínculo", err)
	}
	return nil
}

func (uc *LinkUseCase) get(ctx context.Context, id string) (*entity.ProductSupplierLink, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("link required")
	}
	link, err := uc.links.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("obtener vínculo", err)
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	return link, nil
}

func checkOverrides(threshold, qty *int, unitCost *decimal.Decimal) error {
	if threshold != nil && *threshold < 0 {
		return domain.NewValidationError("reorder_threshold must be >= 0")
	}
	if qty != nil && *qty < 1 {
		return domain.NewValidationError("default_reorder_qty must be >= 1")
	}
	if unitCost != nil && unitCost.IsNegative() {
		return domain.NewValidationError("unit_cost must be >= 0")
	}
	return nil
}

func toLinkResponse(l *entity.ProductSupplierLink) *dto.LinkResponse {
	return &dto.LinkResponse{
		ID:                l.ID,
		ProductID:         l.ProductID,
		SupplierID:        l.SupplierID,
		SupplierSKU:       l.SupplierSKU,
		UnitCost:          l.UnitCost,
		ReorderThreshold:  l.ReorderThreshold,
		DefaultReorderQty: l.DefaultReorderQty,
		Priority:          l.Priority,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}
