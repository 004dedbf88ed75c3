package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Lo administra el subsistema de inventario;
// este servicio solo lo lee para cruzarlo con los vínculos de proveedor.
type Product struct {
	ID               string
	Name             string
	Barcode          string
	Stock            int
	PurchasePrice    decimal.Decimal
	ReorderThreshold *int // nil = usar el umbral por defecto
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
