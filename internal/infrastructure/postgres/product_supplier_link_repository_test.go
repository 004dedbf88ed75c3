package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var linkCols = []string{
	"id", "product_id", "supplier_id", "supplier_sku", "unit_cost", "reorder_threshold",
	"default_reorder_qty", "priority", "created_at", "updated_at",
}

type LinkRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *LinkRepo
	ctx  context.Context
	now  time.Time
}

func (s *LinkRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.repo = NewLinkRepository(mock)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

func (s *LinkRepoTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestLinkRepoTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRepoTestSuite))
}

func (s *LinkRepoTestSuite) TestListWithProductBySupplier() {
	cols := append(append([]string{}, linkCols...),
		"id", "name", "barcode", "stock", "purchase_price", "reorder_threshold", "created_at", "updated_at")
	rows := pgxmock.NewRows(cols).
		AddRow("l1", "p1", "s1", strPtr("TOR-1"), decPtr(2500), intPtr(5), (*int)(nil), 1, s.now, s.now,
			strPtr("p1"), strPtr("Tornillos"), strPtr("7701"), intPtr(4), decPtr(2000), intPtr(10), &s.now, &s.now).
		AddRow("l2", "p9", "s1", (*string)(nil), (*decimal.Decimal)(nil), (*int)(nil), (*int)(nil), 2, s.now, s.now,
			(*string)(nil), (*string)(nil), (*string)(nil), (*int)(nil), (*decimal.Decimal)(nil), (*int)(nil), (*time.Time)(nil), (*time.Time)(nil))

	s.mock.ExpectQuery(`FROM product_supplier_links l\s+LEFT JOIN products p ON p.id = l.product_id\s+WHERE l.supplier_id = \$1`).
		WithArgs("s1").
		WillReturnRows(rows)

	out, err := s.repo.ListWithProductBySupplier(s.ctx, "s1")
	s.Require().NoError(err)
	s.Require().Len(out, 2)

	first := out[0]
	s.Equal("l1", first.Link.ID)
	s.Equal("TOR-1", *first.Link.SupplierSKU)
	s.Equal(5, *first.Link.ReorderThreshold)
	s.Nil(first.Link.DefaultReorderQty)
	s.Require().NotNil(first.Product)
	s.Equal("Tornillos", first.Product.Name)
	s.Equal(4, first.Product.Stock)
	s.True(decimal.NewFromInt(2000).Equal(first.Product.PurchasePrice))

	s.Nil(out[1].Product, "producto eliminado llega como nil")
}

func (s *LinkRepoTestSuite) TestListWithProductBySupplier_Error() {
	s.mock.ExpectQuery(`FROM product_supplier_links l`).
		WithArgs("s1").
		WillReturnError(errors.New("conexión perdida"))

	_, err := s.repo.ListWithProductBySupplier(s.ctx, "s1")
	s.Error(err)
	s.Contains(err.Error(), "list links by supplier")
}

func (s *LinkRepoTestSuite) TestListWithSupplierByProduct() {
	cols := append(append([]string{}, linkCols...),
		"id", "name", "contact_name", "phone", "whatsapp", "email", "notes",
		"lead_time_days", "min_order_amount", "created_at", "updated_at")
	rows := pgxmock.NewRows(cols).
		AddRow("l1", "p1", "s1", (*string)(nil), (*decimal.Decimal)(nil), (*int)(nil), intPtr(12), 0, s.now, s.now,
			"s1", "Proveedor Uno", strPtr("Ana"), (*string)(nil), strPtr("+56 9 1234 5678"), (*string)(nil), (*string)(nil),
			intPtr(3), decPtr(100000), s.now, s.now)

	s.mock.ExpectQuery(`JOIN suppliers s ON s.id = l.supplier_id\s+WHERE l.product_id = \$1`).
		WithArgs("p1").
		WillReturnRows(rows)

	out, err := s.repo.ListWithSupplierByProduct(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal(12, *out[0].Link.DefaultReorderQty)
	s.Equal("Proveedor Uno", out[0].Supplier.Name)
	s.Equal("+56 9 1234 5678", *out[0].Supplier.WhatsApp)
	s.Equal(3, *out[0].Supplier.LeadTimeDays)
}

func (s *LinkRepoTestSuite) TestGetByID_NoExiste() {
	s.mock.ExpectQuery(`FROM product_supplier_links WHERE id = \$1`).
		WithArgs("l404").
		WillReturnError(pgx.ErrNoRows)

	link, err := s.repo.GetByID(s.ctx, "l404")
	s.NoError(err)
	s.Nil(link)
}

func (s *LinkRepoTestSuite) TestCreate() {
	link := &entity.ProductSupplierLink{
		ID: "l1", ProductID: "p1", SupplierID: "s1", SupplierSKU: strPtr("TOR-1"),
		Priority: 1, CreatedAt: s.now, UpdatedAt: s.now,
	}
	s.mock.ExpectExec(`INSERT INTO product_supplier_links`).
		WithArgs("l1", "p1", "s1", link.SupplierSKU, link.UnitCost, link.ReorderThreshold,
			link.DefaultReorderQty, 1, s.now, s.now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s.NoError(s.repo.Create(s.ctx, link))
}

func (s *LinkRepoTestSuite) TestCreate_ProductoInexistente() {
	link := &entity.ProductSupplierLink{ID: "l1", ProductID: "p404", SupplierID: "s1"}
	s.mock.ExpectExec(`INSERT INTO product_supplier_links`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := s.repo.Create(s.ctx, link)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LinkRepoTestSuite) TestDelete() {
	s.mock.ExpectExec(`DELETE FROM product_supplier_links WHERE id = \$1`).
		WithArgs("l1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	s.NoError(s.repo.Delete(s.ctx, "l1"))
}
