package replenishment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/reposicion-api/internal/domain/replenishment"
)

func TestComposeMessage_FormatoExacto(t *testing.T) {
	items := []replenishment.LineItem{{ProductID: "p1", Name: "Tornillos", Quantity: 50, SKU: "TOR-1"}}

	got := replenishment.ComposeMessage("Proveedor Uno", "", items, "Urgente")

	want := "Hola Proveedor Uno, necesitamos reponer inventario:\n\n" +
		"• Tornillos (SKU TOR-1): 50 unidades\n" +
		"Notas: Urgente\n" +
		"Gracias, quedamos atentos a su confirmación."
	assert.Equal(t, want, got)
}

func TestComposeMessage_SinNotasNiSKU(t *testing.T) {
	items := []replenishment.LineItem{
		{ProductID: "p1", Name: "Tornillos", Quantity: 50},
		{ProductID: "p2", Name: "Tuercas", Quantity: 3, SKU: "TU-3"},
	}

	got := replenishment.ComposeMessage("Proveedor Uno", "Ana", items, "   ")

	want := "Hola Ana, necesitamos reponer inventario:\n\n" +
		"• Tornillos: 50 unidades\n" +
		"• Tuercas (SKU TU-3): 3 unidades\n" +
		"Gracias, quedamos atentos a su confirmación."
	assert.Equal(t, want, got)
}

func TestGreetingName(t *testing.T) {
	assert.Equal(t, "Ana", replenishment.GreetingName("Proveedor Uno", "Ana"))
	assert.Equal(t, "Proveedor Uno", replenishment.GreetingName("Proveedor Uno", " "))
	assert.Equal(t, "equipo", replenishment.GreetingName("", ""))
}
