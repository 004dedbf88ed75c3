// Package replenishment contiene la lógica pura de reposición por proveedor: cascada de
// valores efectivos de los vínculos producto-proveedor, validación de ítems, redacción del
// mensaje de pedido y construcción del enlace de WhatsApp. No hace I/O.
package replenishment

import "strings"

// NormalizePhone deja solo los dígitos marcables de un teléfono escrito a mano.
// Descarta todo lo que no sea dígito o '+', y luego elimina todos los '+' (no solo el inicial).
// Devuelve "" si la entrada es vacía o no queda ningún dígito.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if strings.Contains(phone, "+") {
		phone = strings.ReplaceAll(phone, "+", "")
	}
	return phone
}

// ResolveContactPhone elige el número destino: WhatsApp si es utilizable, si no el teléfono.
// Devuelve "" si ninguno sirve.
func ResolveContactPhone(whatsapp, phone *string) string {
	if whatsapp != nil {
		if n := NormalizePhone(*whatsapp); n != "" {
			return n
		}
	}
	if phone != nil {
		return NormalizePhone(*phone)
	}
	return ""
}
