package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto (solo lectura).
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Barcode          string          `json:"barcode"`
	Stock            int             `json:"stock"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	ReorderThreshold *int            `json:"reorder_threshold"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
