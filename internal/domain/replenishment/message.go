package replenishment

import (
	"strconv"
	"strings"
)

const (
	fallbackGreeting = "equipo"
	messageClosing   = "Gracias, quedamos atentos a su confirmación."
)

// GreetingName devuelve a quién se saluda: contacto, si no el proveedor, si no "equipo".
func GreetingName(supplierName, contactName string) string {
	if c := strings.TrimSpace(contactName); c != "" {
		return c
	}
	if s := strings.TrimSpace(supplierName); s != "" {
		return s
	}
	return fallbackGreeting
}

// ComposeMessage redacta el mensaje de pedido. El formato es fijo:
//
//	Hola {saludo}, necesitamos reponer inventario:
//
//	• {nombre} (SKU {sku}): {cantidad} unidades
//	Notas: {notas}
//	Gracias, quedamos atentos a su confirmación.
//
// La línea de notas solo aparece si notes no es vacío. Los ítems van en el orden recibido.
func ComposeMessage(supplierName, contactName string, items []LineItem, notes string) string {
	var b strings.Builder
	b.WriteString("Hola ")
	b.WriteString(GreetingName(supplierName, contactName))
	b.WriteString(", necesitamos reponer inventario:\n\n")

	for _, it := range items {
		b.WriteString("• ")
		b.WriteString(it.Name)
		if it.SKU != "" {
			b.WriteString(" (SKU ")
			b.WriteString(it.SKU)
			b.WriteString(")")
		}
		b.WriteString(": ")
		b.WriteString(strconv.FormatInt(it.Quantity, 10))
		b.WriteString(" unidades\n")
	}

	if n := strings.TrimSpace(notes); n != "" {
		b.WriteString("Notas: ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	b.WriteString(messageClosing)
	return b.String()
}
