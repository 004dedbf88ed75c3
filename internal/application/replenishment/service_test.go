package replenishment

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func proveedorUno() *entity.Supplier {
	return &entity.Supplier{ID: "s1", Name: "Proveedor Uno", WhatsApp: strPtr("+56 9 1234 5678")}
}

func tornillosRequest() dto.BuildMessageRequest {
	return dto.BuildMessageRequest{
		SupplierID: "s1",
		Items: []dto.ReplenishmentItemRequest{
			{ProductID: "p1", Name: "Tornillos", Quantity: decimal.NewFromInt(50), SKU: strPtr("TOR-1")},
		},
		Notes: strPtr("Urgente"),
	}
}

func newTestService() (*Service, *MockSupplierRepository, *MockLinkRepository) {
	suppliers := new(MockSupplierRepository)
	links := new(MockLinkRepository)
	svc := NewService(suppliers, links)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }
	return svc, suppliers, links
}

func TestBuildMessage_Exito(t *testing.T) {
	svc, suppliers, _ := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(proveedorUno(), nil)

	out, err := svc.BuildMessage(context.Background(), tornillosRequest())
	require.NoError(t, err)

	wantText := "Hola Proveedor Uno, necesitamos reponer inventario:\n\n• Tornillos (SKU TOR-1): 50 unidades\nNotas: Urgente\nGracias, quedamos atentos a su confirmación."
	assert.Equal(t, wantText, out.Text)
	assert.Equal(t, "56912345678", out.Phone)
	assert.Equal(t, "https://wa.me/56912345678?text="+
		"Hola%20Proveedor%20Uno%2C%20necesitamos%20reponer%20inventario%3A%0A%0A"+
		"%E2%80%A2%20Tornillos%20%28SKU%20TOR-1%29%3A%2050%20unidades%0A"+
		"Notas%3A%20Urgente%0A"+
		"Gracias%2C%20quedamos%20atentos%20a%20su%20confirmaci%C3%B3n.", out.URL)
	assert.Equal(t, dto.SupplierSummary{ID: "s1", Name: "Proveedor Uno"}, out.Supplier)

	u, err := url.Parse(out.URL)
	require.NoError(t, err)
	assert.Equal(t, wantText, u.Query().Get("text"))
	suppliers.AssertExpectations(t)
}

func TestBuildMessage_Idempotente(t *testing.T) {
	svc, suppliers, _ := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(proveedorUno(), nil)

	first, err := svc.BuildMessage(context.Background(), tornillosRequest())
	require.NoError(t, err)
	second, err := svc.BuildMessage(context.Background(), tornillosRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	suppliers.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestBuildMessage_ValidacionAntesDeConsultar(t *testing.T) {
	svc, suppliers, _ := newTestService()

	_, err := svc.BuildMessage(context.Background(), dto.BuildMessageRequest{SupplierID: "", Items: tornillosRequest().Items})
	assert.EqualError(t, err, "supplier required")

	_, err = svc.BuildMessage(context.Background(), dto.BuildMessageRequest{SupplierID: "s1"})
	assert.EqualError(t, err, "items required")

	suppliers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBuildMessage_SinItemsValidos(t *testing.T) {
	svc, suppliers, _ := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(proveedorUno(), nil)

	_, err := svc.BuildMessage(context.Background(), dto.BuildMessageRequest{
		SupplierID: "s1",
		Items:      []dto.ReplenishmentItemRequest{{ProductID: "", Name: "x", Quantity: decimal.NewFromInt(1)}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.EqualError(t, err, "no valid items")
}

func TestBuildMessage_ProveedorNoExiste(t *testing.T) {
	svc, suppliers, _ := newTestService()
	suppliers.On("GetByID", mock.Anything, "s404").Return(nil, nil)

	req := tornillosRequest()
	req.SupplierID = "s404"
	_, err := svc.BuildMessage(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildMessage_SinContacto(t *testing.T) {
	svc, suppliers, _ := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno"}, nil)

	_, err := svc.BuildMessage(context.Background(), tornillosRequest())
	assert.ErrorIs(t, err, domain.ErrNoContact)
}

func TestBuildMessage_FallaDePersistencia(t *testing.T) {
	svc, suppliers, _ := newTestService()
	cause := errors.New("timeout")
	suppliers.On("GetByID", mock.Anything, "s1").Return(nil, cause)

	_, err := svc.BuildMessage(context.Background(), tornillosRequest())
	var pErr *domain.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.ErrorIs(t, err, cause)
}

func TestResolveProductsForSupplier(t *testing.T) {
	svc, suppliers, links := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(proveedorUno(), nil)
	links.On("ListWithProductBySupplier", mock.Anything, "s1").Return([]repository.LinkWithProduct{
		{Link: entity.ProductSupplierLink{ID: "l2", ProductID: "p2", SupplierID: "s1", Priority: 2}, Product: &entity.Product{ID: "p2", Name: "Tuercas", Barcode: "770-2", ReorderThreshold: intPtr(10)}},
		{Link: entity.ProductSupplierLink{ID: "l1", ProductID: "p1", SupplierID: "s1", Priority: 1, ReorderThreshold: intPtr(5)}, Product: &entity.Product{ID: "p1", Name: "Tornillos", ReorderThreshold: intPtr(10)}},
	}, nil)

	lines, err := svc.ResolveProductsForSupplier(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 5, lines[0].EffectiveThreshold)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, 10, lines[1].EffectiveThreshold)
	assert.Equal(t, "770-2", lines[1].EffectiveSKU)
}

func TestResolveProductsForSupplier_SinVinculosNoEsError(t *testing.T) {
	svc, suppliers, links := newTestService()
	suppliers.On("GetByID", mock.Anything, "s1").Return(proveedorUno(), nil)
	links.On("ListWithProductBySupplier", mock.Anything, "s1").Return([]repository.LinkWithProduct{}, nil)

	lines, err := svc.ResolveProductsForSupplier(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestResolveProductsForSupplier_ProveedorNoExiste(t *testing.T) {
	svc, suppliers, links := newTestService()
	suppliers.On("GetByID", mock.Anything, "s9").Return(nil, nil)

	_, err := svc.ResolveProductsForSupplier(context.Background(), "s9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	links.AssertNotCalled(t, "ListWithProductBySupplier", mock.Anything, mock.Anything)
}

func TestSuggestions(t *testing.T) {
	svc, suppliers, links := newTestService()
	minOrder := decimal.NewFromInt(100000)
	supplier := proveedorUno()
	supplier.MinOrderAmount = &minOrder
	supplier.LeadTimeDays = intPtr(3)
	unitCost := decimal.NewFromInt(2500)

	suppliers.On("GetByID", mock.Anything, "s1").Return(supplier, nil)
	links.On("ListWithProductBySupplier", mock.Anything, "s1").Return([]repository.LinkWithProduct{
		{
			Link:    entity.ProductSupplierLink{ID: "l1", ProductID: "p1", Priority: 1, DefaultReorderQty: intPtr(20), UnitCost: &unitCost, SupplierSKU: strPtr("TOR-1")},
			Product: &entity.Product{ID: "p1", Name: "Tornillos", Stock: 4, ReorderThreshold: intPtr(10)},
		},
		{
			Link:    entity.ProductSupplierLink{ID: "l2", ProductID: "p2", Priority: 2},
			Product: &entity.Product{ID: "p2", Name: "Tuercas", Stock: 50, PurchasePrice: decimal.NewFromInt(800)},
		},
	}, nil)

	out, err := svc.Suggestions(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	item := out.Items[0]
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 20, item.Quantity)
	assert.Equal(t, "TOR-1", item.SKU)
	assert.True(t, decimal.NewFromInt(50000).Equal(item.EstimatedOrderCost))
	assert.True(t, decimal.NewFromInt(50000).Equal(out.EstimatedTotal))
	assert.False(t, out.MeetsMinOrder, "50.000 no cubre el mínimo de 100.000")
	require.NotNil(t, out.ExpectedArrival)
	assert.Equal(t, time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC), *out.ExpectedArrival)
}
