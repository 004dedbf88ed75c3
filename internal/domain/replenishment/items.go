package replenishment

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reposicion-api/internal/domain"
)

// Mensajes de validación visibles para el cliente.
const (
	MsgSupplierRequired = "supplier required"
	MsgItemsRequired    = "items required"
	MsgNoValidItems     = "no valid items"
)

// RawItem ítem tal como llega del cliente, sin validar.
type RawItem struct {
	ProductID string
	Name      string
	Quantity  decimal.Decimal
	SKU       string
}

// maxQuantity mayor cantidad representable en un LineItem.
var maxQuantity = decimal.NewFromInt(math.MaxInt64)

// LineItem ítem de reposición válido. Vive solo durante una solicitud.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int64
	SKU       string // "" = sin SKU
}

// ValidateItems filtra los ítems de una solicitud de reposición.
// Primero exige supplierID e ítems; luego descarta en silencio los ítems sin productID o
// nombre, o con cantidad no entera, <= 0 o fuera de int64. Devuelve los válidos y cuántos se descartaron.
func ValidateItems(supplierID string, raw []RawItem) ([]LineItem, int, error) {
	if err := CheckRequest(supplierID, len(raw)); err != nil {
		return nil, 0, err
	}

	valid := make([]LineItem, 0, len(raw))
	for _, it := range raw {
		item, ok := validItem(it)
		if !ok {
			continue
		}
		valid = append(valid, item)
	}
	dropped := len(raw) - len(valid)
	if len(valid) == 0 {
		return nil, dropped, domain.NewValidationError(MsgNoValidItems)
	}
	return valid, dropped, nil
}

// CheckRequest valida lo mínimo de una solicitud antes de consultar el proveedor.
func CheckRequest(supplierID string, itemCount int) error {
	if strings.TrimSpace(supplierID) == "" {
		return domain.NewValidationError(MsgSupplierRequired)
	}
	if itemCount == 0 {
		return domain.NewValidationError(MsgItemsRequired)
	}
	return nil
}

func validItem(it RawItem) (LineItem, bool) {
	productID := strings.TrimSpace(it.ProductID)
	name := strings.TrimSpace(it.Name)
	if productID == "" || name == "" {
		return LineItem{}, false
	}
	// unidades de venta: solo enteros positivos
	if !it.Quantity.IsPositive() || !it.Quantity.IsInteger() || it.Quantity.GreaterThan(maxQuantity) {
		return LineItem{}, false
	}
	return LineItem{
		ProductID: productID,
		Name:      name,
		Quantity:  it.Quantity.IntPart(),
		SKU:       strings.TrimSpace(it.SKU),
	}, true
}
