package replenishment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	core "github.com/jhoicas/reposicion-api/internal/domain/replenishment"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// PurchaseOrderUseCase genera la orden de compra en PDF a partir de la misma solicitud que el
// mensaje de WhatsApp. A diferencia del mensaje, no exige contacto: sin teléfono el PDF sale sin QR.
type PurchaseOrderUseCase struct {
	suppliers repository.SupplierRepository
	generator PurchaseOrderPDFGenerator
	now       func() time.Time
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(suppliers repository.SupplierRepository, generator PurchaseOrderPDFGenerator) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{suppliers: suppliers, generator: generator, now: time.Now}
}

// Generate valida la solicitud y devuelve (pdfBytes, filename).
func (uc *PurchaseOrderUseCase) Generate(ctx context.Context, in dto.BuildMessageRequest) ([]byte, string, error) {
	if err := core.CheckRequest(in.SupplierID, len(in.Items)); err != nil {
		return nil, "", err
	}

	supplier, err := uc.suppliers.GetByID(ctx, strings.TrimSpace(in.SupplierID))
	if err != nil {
		return nil, "", domain.NewPersistenceError("obtener proveedor", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	items, _, err := core.ValidateItems(supplier.ID, ToRawItems(in.Items))
	if err != nil {
		return nil, "", err
	}

	notes := notesOf(in.Notes)
	order := PurchaseOrder{
		Number:   newOrderNumber(uc.now()),
		IssuedAt: uc.now(),
		Supplier: supplier,
		Items:    items,
		Notes:    strings.TrimSpace(notes),
	}
	msg, err := core.BuildMessage(supplier.Name, supplier.ContactNameOrEmpty(), supplier.WhatsApp, supplier.Phone, items, notes)
	switch {
	case err == nil:
		order.WhatsAppURL = msg.URL
	case !errors.Is(err, domain.ErrNoContact):
		return nil, "", err
	}

	pdfBytes, err := uc.generator.GeneratePurchaseOrderPDF(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("orden de compra: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("orden_compra_%s.pdf", order.Number), nil
}

// newOrderNumber OC-AAAAMMDD-XXXXXXXX.
func newOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "OC-" + t.Format("20060102") + "-" + suffix
}
