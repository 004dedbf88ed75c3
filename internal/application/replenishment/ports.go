package replenishment

import (
	"context"
	"time"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	core "github.com/jhoicas/reposicion-api/internal/domain/replenishment"
)

// PurchaseOrder datos de una orden de compra lista para imprimir.
type PurchaseOrder struct {
	Number      string
	IssuedAt    time.Time
	Supplier    *entity.Supplier
	Items       []core.LineItem
	Notes       string
	WhatsAppURL string // "" si el proveedor no tiene contacto
}

// PurchaseOrderPDFGenerator genera la representación PDF de una orden de compra.
type PurchaseOrderPDFGenerator interface {
	GeneratePurchaseOrderPDF(ctx context.Context, order PurchaseOrder) ([]byte, error)
}
