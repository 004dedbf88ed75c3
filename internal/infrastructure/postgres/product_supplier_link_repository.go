package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

var _ repository.ProductSupplierLinkRepository = (*LinkRepo)(nil)

const linkColumns = `id, product_id, supplier_id, supplier_sku, unit_cost, reorder_threshold, default_reorder_qty, priority, created_at, updated_at`

// LinkRepo implementación del puerto ProductSupplierLinkRepository sobre PostgreSQL.
type LinkRepo struct {
	q Querier
}

// NewLinkRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLinkRepository(q Querier) *LinkRepo {
	return &LinkRepo{q: q}
}

// Create persiste un vínculo. Un producto o proveedor inexistente devuelve domain.ErrNotFound.
func (r *LinkRepo) Create(ctx context.Context, l *entity.ProductSupplierLink) error {
	query := `
		INSERT INTO product_supplier_links (` + linkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.ProductID, l.SupplierID, l.SupplierSKU, l.UnitCost, l.ReorderThreshold,
		l.DefaultReorderQty, l.Priority, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// GetByID obtiene un vínculo por ID. (nil, nil) si no existe.
func (r *LinkRepo) GetByID(ctx context.Context, id string) (*entity.ProductSupplierLink, error) {
	query := `SELECT ` + linkColumns + ` FROM product_supplier_links WHERE id = $1`
	var l entity.ProductSupplierLink
	err := r.q.QueryRow(ctx, query, id).Scan(linkDest(&l)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link: %w", err)
	}
	return &l, nil
}

// Update actualiza los valores propios del vínculo.
func (r *LinkRepo) Update(ctx context.Context, l *entity.ProductSupplierLink) error {
	query := `
		UPDATE product_supplier_links SET supplier_sku = $2, unit_cost = $3, reorder_threshold = $4,
			default_reorder_qty = $5, priority = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.SupplierSKU, l.UnitCost, l.ReorderThreshold, l.DefaultReorderQty, l.Priority, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update link: %w", err)
	}
	return nil
}

// Delete elimina un vínculo por ID.
func (r *LinkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_supplier_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

// ListWithProductBySupplier devuelve los vínculos del proveedor con su producto. LEFT JOIN: un
// vínculo cuyo producto ya no existe llega con Product nil.
func (r *LinkRepo) ListWithProductBySupplier(ctx context.Context, supplierID string) ([]repository.LinkWithProduct, error) {
	query := `
		SELECT l.id, l.product_id, l.supplier_id, l.supplier_sku, l.unit_cost, l.reorder_threshold,
			l.default_reorder_qty, l.priority, l.created_at, l.updated_at,
			p.id, p.name, p.barcode, p.stock, p.purchase_price, p.reorder_threshold, p.created_at, p.updated_at
		FROM product_supplier_links l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.supplier_id = $1
		ORDER BY l.priority, l.created_at`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list links by supplier: %w", err)
	}
	defer rows.Close()

	out := make([]repository.LinkWithProduct, 0)
	for rows.Next() {
		var (
			l        entity.ProductSupplierLink
			pID      *string
			pName    *string
			pBarcode *string
			pStock   *int
			pPrice   *decimal.Decimal
			pThresh  *int
			pCreated *time.Time
			pUpdated *time.Time
		)
		dest := append(linkDest(&l), &pID, &pName, &pBarcode, &pStock, &pPrice, &pThresh, &pCreated, &pUpdated)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		row := repository.LinkWithProduct{Link: l}
		if pID != nil {
			row.Product = &entity.Product{
				ID:               *pID,
				Name:             deref(pName),
				Barcode:          deref(pBarcode),
				ReorderThreshold: pThresh,
			}
			if pStock != nil {
				row.Product.Stock = *pStock
			}
			if pPrice != nil {
				row.Product.PurchasePrice = *pPrice
			}
			if pCreated != nil {
				row.Product.CreatedAt = *pCreated
			}
			if pUpdated != nil {
				row.Product.UpdatedAt = *pUpdated
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListWithSupplierByProduct devuelve los vínculos del producto con su proveedor.
func (r *LinkRepo) ListWithSupplierByProduct(ctx context.Context, productID string) ([]repository.LinkWithSupplier, error) {
	query := `
		SELECT l.id, l.product_id, l.supplier_id, l.supplier_sku, l.unit_cost, l.reorder_threshold,
			l.default_reorder_qty, l.priority, l.created_at, l.updated_at,
			s.id, s.name, s.contact_name, s.phone, s.whatsapp, s.email, s.notes,
			s.lead_time_days, s.min_order_amount, s.created_at, s.updated_at
		FROM product_supplier_links l
		JOIN suppliers s ON s.id = l.supplier_id
		WHERE l.product_id = $1
		ORDER BY l.priority, l.created_at`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list links by product: %w", err)
	}
	defer rows.Close()

	out := make([]repository.LinkWithSupplier, 0)
	for rows.Next() {
		var (
			l entity.ProductSupplierLink
			s entity.Supplier
		)
		dest := append(linkDest(&l),
			&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.WhatsApp, &s.Email, &s.Notes,
			&s.LeadTimeDays, &s.MinOrderAmount, &s.CreatedAt, &s.UpdatedAt,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, repository.LinkWithSupplier{Link: l, Supplier: &s})
	}
	return out, rows.Err()
}

func linkDest(l *entity.ProductSupplierLink) []any {
	return []any{
		&l.ID, &l.ProductID, &l.SupplierID, &l.SupplierSKU, &l.UnitCost, &l.ReorderThreshold,
		&l.DefaultReorderQty, &l.Priority, &l.CreatedAt, &l.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
