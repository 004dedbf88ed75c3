package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BuildMessageRequest body para POST /api/replenishment/message y /purchase-order.
type BuildMessageRequest struct {
	SupplierID string                     `json:"supplierId"`
	Items      []ReplenishmentItemRequest `json:"items"`
	Notes      *string                    `json:"notes,omitempty"`
}

// ReplenishmentItemRequest ítem crudo enviado por el comprador.
type ReplenishmentItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	SKU       *string         `json:"sku,omitempty"`
}

// UnmarshalJSON tolera una cantidad mal tipada ("abc", true, {}): el ítem queda con
// cantidad cero y se descarta al validar, sin rechazar el request completo.
func (r *ReplenishmentItemRequest) UnmarshalJSON(b []byte) error {
	type alias ReplenishmentItemRequest
	aux := struct {
		*alias
		Quantity json.RawMessage `json:"quantity"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Quantity = decimal.Zero
	if len(aux.Quantity) > 0 {
		var q decimal.Decimal
		if err := q.UnmarshalJSON(aux.Quantity); err == nil {
			r.Quantity = q
		}
	}
	return nil
}

// SupplierSummary identidad del proveedor en la respuesta del mensaje.
type SupplierSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contactName"`
}

// ComposedMessageResponse salida de POST /api/replenishment/message.
type ComposedMessageResponse struct {
	Text     string          `json:"text"`
	Phone    string          `json:"phone"`
	URL      string          `json:"url"`
	Supplier SupplierSummary `json:"supplier"`
}

// ResolvedLineDTO producto de un proveedor con la cascada aplicada.
type ResolvedLineDTO struct {
	LinkID              string           `json:"link_id"`
	ProductID           string           `json:"product_id"`
	ProductName         string           `json:"product_name"`
	Barcode             string           `json:"barcode"`
	Stock               int              `json:"stock"`
	Priority            int              `json:"priority"`
	SupplierSKU         *string          `json:"supplier_sku"`
	UnitCost            *decimal.Decimal `json:"unit_cost"`
	ReorderThreshold    *int             `json:"reorder_threshold"`
	DefaultReorderQty   *int             `json:"default_reorder_qty"`
	EffectiveThreshold  int              `json:"effective_threshold"`
	EffectiveReorderQty int              `json:"effective_reorder_qty"`
	EffectiveSKU        string           `json:"effective_sku"`
	EffectiveUnitCost   decimal.Decimal  `json:"effective_unit_cost"`
	NeedsReorder        bool             `json:"needs_reorder"`
}

// SupplierProductsResponse salida de GET /api/suppliers/:id/products.
type SupplierProductsResponse struct {
	SupplierID string            `json:"supplier_id"`
	Total      int               `json:"total"`
	Items      []ResolvedLineDTO `json:"items"`
}

// ReplenishmentSuggestionDTO sugerencia de pedido para un producto en o bajo su umbral.
// Items se puede reenviar tal cual a POST /api/replenishment/message.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"` // cantidad de pedido efectiva
	SKU                string          `json:"sku,omitempty"`
	Stock              int             `json:"stock"`
	Threshold          int             `json:"threshold"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // Quantity * UnitCost
	Priority           int             `json:"priority"`
}

// SupplierReplenishmentResponse salida de GET /api/suppliers/:id/replenishment.
type SupplierReplenishmentResponse struct {
	SupplierID      string                       `json:"supplier_id"`
	Items           []ReplenishmentSuggestionDTO `json:"items"`
	EstimatedTotal  decimal.Decimal              `json:"estimated_total"`
	MinOrderAmount  *decimal.Decimal             `json:"min_order_amount"`
	MeetsMinOrder   bool                         `json:"meets_min_order"`
	LeadTimeDays    *int                         `json:"lead_time_days"`
	ExpectedArrival *time.Time                   `json:"expected_arrival,omitempty"`
}
