package replenishment

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// DefaultThreshold umbral de reorden cuando ni el vínculo ni el producto definen uno.
const DefaultThreshold = 10

// DefaultReorderQty cantidad de pedido cuando el vínculo no define una.
const DefaultReorderQty = 1

// ResolvedLine producto de un proveedor con los valores efectivos ya resueltos.
type ResolvedLine struct {
	LinkID      string
	ProductID   string
	SupplierID  string
	ProductName string
	Barcode     string
	Stock       int
	Priority    int

	SupplierSKU      *string
	UnitCost         *decimal.Decimal
	ReorderThreshold *int // valor propio del vínculo, sin cascada
	DefaultQty       *int

	EffectiveThreshold  int
	EffectiveReorderQty int
	EffectiveSKU        string
	EffectiveUnitCost   decimal.Decimal
	NeedsReorder        bool // Stock <= EffectiveThreshold
}

// EffectiveThreshold = link.ReorderThreshold ?? product.ReorderThreshold ?? DefaultThreshold.
func EffectiveThreshold(link *entity.ProductSupplierLink, product *entity.Product) int {
	if link != nil && link.ReorderThreshold != nil {
		return *link.ReorderThreshold
	}
	if product != nil && product.ReorderThreshold != nil {
		return *product.ReorderThreshold
	}
	return DefaultThreshold
}

// EffectiveReorderQty = link.DefaultReorderQty ?? DefaultReorderQty.
func EffectiveReorderQty(link *entity.ProductSupplierLink) int {
	if link != nil && link.DefaultReorderQty != nil {
		return *link.DefaultReorderQty
	}
	return DefaultReorderQty
}

// EffectiveSKU = link.SupplierSKU ?? product.Barcode.
func EffectiveSKU(link *entity.ProductSupplierLink, product *entity.Product) string {
	if link != nil && link.SupplierSKU != nil {
		return *link.SupplierSKU
	}
	if product != nil {
		return product.Barcode
	}
	return ""
}

// EffectiveUnitCost = link.UnitCost ?? product.PurchasePrice.
func EffectiveUnitCost(link *entity.ProductSupplierLink, product *entity.Product) decimal.Decimal {
	if link != nil && link.UnitCost != nil {
		return *link.UnitCost
	}
	if product != nil {
		return product.PurchasePrice
	}
	return decimal.Zero
}

// Resolve aplica la cascada a un vínculo y su producto.
func Resolve(link entity.ProductSupplierLink, product *entity.Product) ResolvedLine {
	threshold := EffectiveThreshold(&link, product)
	return ResolvedLine{
		LinkID:              link.ID,
		ProductID:           link.ProductID,
		SupplierID:          link.SupplierID,
		ProductName:         product.Name,
		Barcode:             product.Barcode,
		Stock:               product.Stock,
		Priority:            link.Priority,
		SupplierSKU:         link.SupplierSKU,
		UnitCost:            link.UnitCost,
		ReorderThreshold:    link.ReorderThreshold,
		DefaultQty:          link.DefaultReorderQty,
		EffectiveThreshold:  threshold,
		EffectiveReorderQty: EffectiveReorderQty(&link),
		EffectiveSKU:        EffectiveSKU(&link, product),
		EffectiveUnitCost:   EffectiveUnitCost(&link, product),
		NeedsReorder:        product.Stock <= threshold,
	}
}

// ResolveLines cruza vínculos con productos y devuelve las líneas ordenadas por Priority
// ascendente. Los empates conservan el orden de lectura. Se descartan las filas sin producto y,
// si un producto aparece más de una vez, queda solo el primer vínculo tras ordenar.
func ResolveLines(rows []repository.LinkWithProduct) []ResolvedLine {
	lines := make([]ResolvedLine, 0, len(rows))
	for _, row := range rows {
		if row.Product == nil || row.Link.ProductID == "" {
			continue
		}
		lines = append(lines, Resolve(row.Link, row.Product))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Priority < lines[j].Priority
	})

	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if _, dup := seen[l.ProductID]; dup {
			continue
		}
		seen[l.ProductID] = struct{}{}
		out = append(out, l)
	}
	return out
}

// ResolveLink devuelve la línea efectiva de un producto concreto (primer vínculo por prioridad).
func ResolveLink(rows []repository.LinkWithProduct, productID string) (ResolvedLine, bool) {
	for _, l := range ResolveLines(rows) {
		if l.ProductID == productID {
			return l, true
		}
	}
	return ResolvedLine{}, false
}

// SortSupplierLinks ordena los vínculos de un producto por Priority (estable) y descarta
// los que no tienen proveedor. El primero es el proveedor preferido.
func SortSupplierLinks(rows []repository.LinkWithSupplier) []repository.LinkWithSupplier {
	out := make([]repository.LinkWithSupplier, 0, len(rows))
	for _, row := range rows {
		if row.Supplier == nil {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Link.Priority < out[j].Link.Priority
	})
	return out
}
