package replenishment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	core "github.com/jhoicas/reposicion-api/internal/domain/replenishment"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// Service orquesta la reposición por proveedor: lee proveedor y vínculos (solo lectura),
// valida ítems, redacta el mensaje y arma el enlace de WhatsApp.
// No guarda estado entre llamadas; con los mismos datos externos la salida es idéntica.
type Service struct {
	suppliers repository.SupplierRepository
	links     repository.ProductSupplierLinkRepository
	now       func() time.Time
}

// NewService construye el servicio de reposición.
func NewService(
	suppliers repository.SupplierRepository,
	links repository.ProductSupplierLinkRepository,
) *Service {
	return &Service{suppliers: suppliers, links: links, now: time.Now}
}

// BuildMessage ejecuta el pipeline completo:
// validar solicitud → obtener proveedor → filtrar ítems → redactar → resolver contacto → URL.
//
// Errores:
//   - *domain.ValidationError  supplierId vacío, sin ítems o ningún ítem válido.
//   - domain.ErrNotFound       el proveedor no existe.
//   - domain.ErrNoContact      el proveedor no tiene whatsapp ni teléfono utilizable.
//   - *domain.PersistenceError falla del repositorio.
func (s *Service) BuildMessage(ctx context.Context, in dto.BuildMessageRequest) (*dto.ComposedMessageResponse, error) {
	if err := core.CheckRequest(in.SupplierID, len(in.Items)); err != nil {
		return nil, err
	}

	supplier, err := s.fetchSupplier(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}

	items, _, err := core.ValidateItems(supplier.ID, ToRawItems(in.Items))
	if err != nil {
		return nil, err
	}

	msg, err := core.BuildMessage(
		supplier.Name, supplier.ContactNameOrEmpty(),
		supplier.WhatsApp, supplier.Phone,
		items, notesOf(in.Notes),
	)
	if err != nil {
		return nil, err
	}

	return &dto.ComposedMessageResponse{
		Text:  msg.Text,
		Phone: msg.Phone,
		URL:   msg.URL,
		Supplier: dto.SupplierSummary{
			ID:          supplier.ID,
			Name:        supplier.Name,
			ContactName: supplier.ContactName,
		},
	}, nil
}

// ResolveProductsForSupplier devuelve los productos del proveedor con la cascada aplicada,
// ordenados por prioridad. Un proveedor sin vínculos devuelve una lista vacía; uno inexistente,
// domain.ErrNotFound.
func (s *Service) ResolveProductsForSupplier(ctx context.Context, supplierID string) ([]core.ResolvedLine, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, domain.NewValidationError(core.MsgSupplierRequired)
	}
	supplier, err := s.fetchSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, supplier.ID)
}

// SupplierProducts versión DTO de ResolveProductsForSupplier.
func (s *Service) SupplierProducts(ctx context.Context, supplierID string) (*dto.SupplierProductsResponse, error) {
	lines, err := s.ResolveProductsForSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResolvedLineDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, toResolvedLineDTO(l))
	}
	return &dto.SupplierProductsResponse{
		SupplierID: strings.TrimSpace(supplierID),
		Total:      len(items),
		Items:      items,
	}, nil
}

// Suggestions arma la lista de reposición de un proveedor: productos con stock en o bajo su
// umbral efectivo, con la cantidad de pedido efectiva y el costo estimado. Indica además si el
// total cubre el pedido mínimo y la fecha estimada de llegada según los días de entrega.
func (s *Service) Suggestions(ctx context.Context, supplierID string) (*dto.SupplierReplenishmentResponse, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, domain.NewValidationError(core.MsgSupplierRequired)
	}
	supplier, err := s.fetchSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	lines, err := s.resolve(ctx, supplier.ID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]dto.ReplenishmentSuggestionDTO, 0, len(lines))
	for _, l := range lines {
		if !l.NeedsReorder {
			continue
		}
		cost := l.EffectiveUnitCost.Mul(decimal.NewFromInt(int64(l.EffectiveReorderQty)))
		total = total.Add(cost)
		items = append(items, dto.ReplenishmentSuggestionDTO{
			ProductID:          l.ProductID,
			Name:               l.ProductName,
			Quantity:           l.EffectiveReorderQty,
			SKU:                l.EffectiveSKU,
			Stock:              l.Stock,
			Threshold:          l.EffectiveThreshold,
			UnitCost:           l.EffectiveUnitCost,
			EstimatedOrderCost: cost,
			Priority:           l.Priority,
		})
	}

	out := &dto.SupplierReplenishmentResponse{
		SupplierID:     supplier.ID,
		Items:          items,
		EstimatedTotal: total,
		MinOrderAmount: supplier.MinOrderAmount,
		MeetsMinOrder:  supplier.MinOrderAmount == nil || total.GreaterThanOrEqual(*supplier.MinOrderAmount),
		LeadTimeDays:   supplier.LeadTimeDays,
	}
	if supplier.LeadTimeDays != nil {
		eta := s.now().AddDate(0, 0, *supplier.LeadTimeDays)
		out.ExpectedArrival = &eta
	}
	return out, nil
}

func (s *Service) fetchSupplier(ctx context.Context, supplierID string) (*entity.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, strings.TrimSpace(supplierID))
	if err != nil {
		return nil, domain.NewPersistenceError("obtener proveedor", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func (s *Service) resolve(ctx context.Context, supplierID string) ([]core.ResolvedLine, error) {
	rows, err := s.links.ListWithProductBySupplier(ctx, supplierID)
	if err != nil {
		return nil, domain.NewPersistenceError("listar vínculos del proveedor", err)
	}
	return core.ResolveLines(rows), nil
}

// ToRawItems convierte el body HTTP en ítems del dominio.
func ToRawItems(in []dto.ReplenishmentItemRequest) []core.RawItem {
	out := make([]core.RawItem, 0, len(in))
	for _, it := range in {
		raw := core.RawItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity}
		if it.SKU != nil {
			raw.SKU = *it.SKU
		}
		out = append(out, raw)
	}
	return out
}

func notesOf(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}

func toResolvedLineDTO(l core.ResolvedLine) dto.ResolvedLineDTO {
	return dto.ResolvedLineDTO{
		LinkID:              l.LinkID,
		ProductID:           l.ProductID,
		ProductName:         l.ProductName,
		Barcode:             l.Barcode,
		Stock:               l.Stock,
		Priority:            l.Priority,
		SupplierSKU:         l.SupplierSKU,
		UnitCost:            l.UnitCost,
		ReorderThreshold:    l.ReorderThreshold,
		DefaultReorderQty:   l.DefaultQty,
		EffectiveThreshold:  l.EffectiveThreshold,
		EffectiveReorderQty: l.EffectiveReorderQty,
		EffectiveSKU:        l.EffectiveSKU,
		EffectiveUnitCost:   l.EffectiveUnitCost,
		NeedsReorder:        l.NeedsReorder,
	}
}
