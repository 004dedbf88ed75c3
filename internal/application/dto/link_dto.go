package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLinkRequest body para POST /api/links.
type CreateLinkRequest struct {
	ProductID         string           `json:"product_id" validate:"required"`
	SupplierID        string           `json:"supplier_id" validate:"required"`
	SupplierSKU       *string          `json:"supplier_sku"`
	UnitCost          *decimal.Decimal `json:"unit_cost"`
	ReorderThreshold  *int             `json:"reorder_threshold" validate:"omitempty,min=0"`
	DefaultReorderQty *int             `json:"default_reorder_qty" validate:"omitempty,min=1"`
	Priority          int              `json:"priority"`
}

// UpdateLinkRequest body para PUT /api/links/:id. Los campos ausentes no cambian.
// Clear lista los campos que vuelven a NULL para heredar el valor del producto
// (supplier_sku, unit_cost, reorder_threshold, default_reorder_qty).
type UpdateLinkRequest struct {
	SupplierSKU       *string          `json:"supplier_sku"`
	UnitCost          *decimal.Decimal `json:"unit_cost"`
	ReorderThreshold  *int             `json:"reorder_threshold"`
	DefaultReorderQty *int             `json:"default_reorder_qty"`
	Priority          *int             `json:"priority"`
	Clear             []string         `json:"clear,omitempty"`
}

// LinkResponse salida de un vínculo producto-proveedor.
type LinkResponse struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	SupplierID        string           `json:"supplier_id"`
	SupplierSKU       *string          `json:"supplier_sku"`
	UnitCost          *decimal.Decimal `json:"unit_cost"`
	ReorderThreshold  *int             `json:"reorder_threshold"`
	DefaultReorderQty *int             `json:"default_reorder_qty"`
	Priority          int              `json:"priority"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductSupplierDTO proveedor de un producto con su vínculo. El primero de la lista es el preferido.
type ProductSupplierDTO struct {
	LinkID             string           `json:"link_id"`
	SupplierID         string           `json:"supplier_id"`
	SupplierName       string           `json:"supplier_name"`
	ContactName        *string          `json:"contact_name"`
	SupplierSKU        *string          `json:"supplier_sku"`
	UnitCost           *decimal.Decimal `json:"unit_cost"`
	EffectiveThreshold int              `json:"effective_threshold"`
	EffectiveSKU       string           `json:"effective_sku"`
	Priority           int              `json:"priority"`
	HasContact         bool             `json:"has_contact"`
}
