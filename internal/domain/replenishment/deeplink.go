package replenishment

import (
	"net/url"
	"strings"

	"github.com/jhoicas/reposicion-api/internal/domain"
)

// WhatsAppBaseURL prefijo de los enlaces click-to-chat.
const WhatsAppBaseURL = "https://wa.me/"

// BuildWhatsAppURL arma https://wa.me/{digits}?text={texto codificado}.
// Los espacios van como %20 y el resto de reservados (&, +, saltos de línea, unicode) en %XX.
func BuildWhatsAppURL(phoneDigits, text string) (string, error) {
	if phoneDigits == "" {
		return "", domain.ErrNoContact
	}
	return WhatsAppBaseURL + phoneDigits + "?text=" + encodeQueryComponent(text), nil
}

// QueryEscape codifica '+' literal como %2B, así que todo '+' restante era un espacio.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ComposedMessage resultado del pipeline de reposición.
type ComposedMessage struct {
	Text  string
	Phone string
	URL   string
}

// BuildMessage compone el texto y el enlace para un proveedor ya validado.
// Devuelve domain.ErrNoContact si ni whatsapp ni phone dejan un número utilizable.
func BuildMessage(supplierName, contactName string, whatsapp, phone *string, items []LineItem, notes string) (ComposedMessage, error) {
	text := ComposeMessage(supplierName, contactName, items, notes)
	digits := ResolveContactPhone(whatsapp, phone)
	link, err := BuildWhatsAppURL(digits, text)
	if err != nil {
		return ComposedMessage{}, err
	}
	return ComposedMessage{Text: text, Phone: digits, URL: link}, nil
}
