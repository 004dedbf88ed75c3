package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor. Los campos de contacto son opcionales.
type Supplier struct {
	ID             string
	Name           string
	ContactName    *string
	Phone          *string
	WhatsApp       *string
	Email          *string
	Notes          *string
	LeadTimeDays   *int             // días de entrega
	MinOrderAmount *decimal.Decimal // pedido mínimo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactNameOrEmpty devuelve el nombre de contacto o "".
func (s *Supplier) ContactNameOrEmpty() string {
	if s.ContactName == nil {
		return ""
	}
	return *s.ContactName
}
