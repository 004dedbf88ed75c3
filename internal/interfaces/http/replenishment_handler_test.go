package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/application/replenishment"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/reposicion-api/internal/interfaces/http"
)

const tornillosBody = `{"supplierId":"s1","items":[{"productId":"p1","name":"Tornillos","quantity":50,"sku":"TOR-1"}],"notes":"Urgente"}`

func strPtr(s string) *string { return &s }

func newReplenishmentApp(suppliers *mockSupplierRepo) *fiber.App {
	links := new(mockLinkRepo)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Replenishment: replenishment.NewService(suppliers, links),
		PurchaseOrder: replenishment.NewPurchaseOrderUseCase(suppliers, pdf.NewMarotoPDFGenerator("Ferretería Test")),
		JWTSecret:     testJWTSecret,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMessage_Exito(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").
		Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno", WhatsApp: strPtr("+56 9 1234 5678")}, nil)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, tokenForRole(t, "seller"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComposedMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Hola Proveedor Uno, necesitamos reponer inventario:\n\n"+
		"• Tornillos (SKU TOR-1): 50 unidades\nNotas: Urgente\n"+
		"Gracias, quedamos atentos a su confirmación.", out.Text)
	assert.Equal(t, "56912345678", out.Phone)
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/56912345678?text=Hola%20Proveedor%20Uno"))
	assert.Equal(t, "s1", out.Supplier.ID)
	assert.Nil(t, out.Supplier.ContactName)
}

func TestMessage_SinItems_Validacion(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", `{"supplierId":"s1","items":[]}`, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "items required", body.Error)
	suppliers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMessage_CuerpoInvalido(t *testing.T) {
	app := newReplenishmentApp(new(mockSupplierRepo))

	resp := postJSON(t, app, "/api/replenishment/message", `{"supplierId":`, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestMessage_CantidadMalTipada_DescartaItem(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").
		Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno", WhatsApp: strPtr("+56 9 1234 5678")}, nil)
	app := newReplenishmentApp(suppliers)

	body := `{"supplierId":"s1","items":[` +
		`{"productId":"p1","name":"Tornillos","quantity":"abc"},` +
		`{"productId":"p2","name":"Clavos","quantity":true},` +
		`{"productId":"p3","name":"Tuercas","quantity":"30"}]}`
	resp := postJSON(t, app, "/api/replenishment/message", body, tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComposedMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Text, "• Tuercas: 30 unidades")
	assert.NotContains(t, out.Text, "Tornillos")
	assert.NotContains(t, out.Text, "Clavos")
}

func TestMessage_SoloCantidadesMalTipadas_Validacion(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").
		Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno", WhatsApp: strPtr("+56 9 1234 5678")}, nil)
	app := newReplenishmentApp(suppliers)

	body := `{"supplierId":"s1","items":[{"productId":"p1","name":"Tornillos","quantity":{"n":5}}]}`
	resp := postJSON(t, app, "/api/replenishment/message", body, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Equal(t, "no valid items", errBody.Error)
}

func TestMessage_ProveedorNoExiste(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").Return(nil, nil)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestMessage_SinContacto(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").
		Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno", Phone: strPtr("---")}, nil)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_CONTACT", decodeError(t, resp).Code)
}

func TestMessage_FallaDePersistencia_NoExponeDetalle(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").Return(nil, errors.New("dial tcp 10.0.0.5:5432: timeout"))
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Error)
}

func TestMessage_RolUserSinPermiso(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	suppliers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMessage_SinToken(t *testing.T) {
	app := newReplenishmentApp(new(mockSupplierRepo))

	resp := postJSON(t, app, "/api/replenishment/message", tornillosBody, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPurchaseOrder_DevuelvePDF(t *testing.T) {
	suppliers := new(mockSupplierRepo)
	suppliers.On("GetByID", mock.Anything, "s1").
		Return(&entity.Supplier{ID: "s1", Name: "Proveedor Uno", WhatsApp: strPtr("+56 9 1234 5678")}, nil)
	app := newReplenishmentApp(suppliers)

	resp := postJSON(t, app, "/api/replenishment/purchase-order", tornillosBody, tokenForRole(t, "seller"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment;")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
