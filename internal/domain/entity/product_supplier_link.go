package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSupplierLink asocia un producto con un proveedor (muchos a muchos).
// Los campos nil heredan el valor del producto o el valor por defecto.
// La base no fuerza unicidad por (ProductID, SupplierID); al resolver se toma el primero por Priority.
type ProductSupplierLink struct {
	ID                string
	ProductID         string
	SupplierID        string
	SupplierSKU       *string
	UnitCost          *decimal.Decimal
	ReorderThreshold  *int
	DefaultReorderQty *int
	Priority          int // ascendente: 0/1 = preferido
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
