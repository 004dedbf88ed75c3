package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	ContactName    *string          `json:"contact_name"`
	Phone          *string          `json:"phone"`
	WhatsApp       *string          `json:"whatsapp"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Notes          *string          `json:"notes"`
	LeadTimeDays   *int             `json:"lead_time_days" validate:"omitempty,min=0"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (solo campos enviados).
// Clear lista los campos opcionales que vuelven a NULL (ej. lead_time_days, min_order_amount).
type UpdateSupplierRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ContactName    *string          `json:"contact_name"`
	Phone          *string          `json:"phone"`
	WhatsApp       *string          `json:"whatsapp"`
	Email          *string          `json:"email"`
	Notes          *string          `json:"notes"`
	LeadTimeDays   *int             `json:"lead_time_days"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	Clear          []string         `json:"clear,omitempty"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	ContactName    *string          `json:"contact_name"`
	Phone          *string          `json:"phone"`
	WhatsApp       *string          `json:"whatsapp"`
	Email          *string          `json:"email"`
	Notes          *string          `json:"notes"`
	LeadTimeDays   *int             `json:"lead_time_days"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
