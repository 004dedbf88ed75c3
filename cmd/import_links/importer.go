package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	core "github.com/jhoicas/reposicion-api/internal/domain/replenishment"
)

// Columnas reconocidas en la cabecera (sin importar mayúsculas ni orden).
const (
	colSupplierName      = "supplier_name"
	colContactName       = "contact_name"
	colWhatsApp          = "whatsapp"
	colPhone             = "phone"
	colEmail             = "email"
	colLeadTimeDays      = "lead_time_days"
	colMinOrderAmount    = "min_order_amount"
	colBarcode           = "barcode"
	colSupplierSKU       = "supplier_sku"
	colUnitCost          = "unit_cost"
	colReorderThreshold  = "reorder_threshold"
	colDefaultReorderQty = "default_reorder_qty"
	colPriority          = "priority"
)

var errMissingSupplierColumn = errors.New("la cabecera no tiene la columna supplier_name")

type supplierRow struct {
	Name           string
	ContactName    string
	WhatsApp       string // normalizado
	Phone          string // normalizado
	Email          string
	LeadTimeDays   *int
	MinOrderAmount *decimal.Decimal
}

type linkRow struct {
	SupplierName      string
	Barcode           string
	SupplierSKU       string
	UnitCost          *decimal.Decimal
	ReorderThreshold  *int
	DefaultReorderQty *int
	Priority          int
}

type rowError struct {
	Line   int
	Reason string
}

// importSet resultado de leer el CSV. Un proveedor aparece una vez aunque tenga varias filas.
type importSet struct {
	Suppliers []supplierRow
	Links     []linkRow
	Skipped   []rowError
}

// decodeReader envuelve r según la codificación del archivo exportado.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", encoding)
}

// parseCSV lee filas proveedor/vínculo. Las filas inválidas se informan en Skipped y no
// detienen la lectura. Una fila sin barcode solo aporta datos del proveedor.
func parseCSV(r io.Reader, delimiter rune) (*importSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols[colSupplierName]; !ok {
		return nil, errMissingSupplierColumn
	}

	set := &importSet{}
	seenSupplier := make(map[string]bool)
	seenLink := make(map[string]bool)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			set.Skipped = append(set.Skipped, rowError{Line: line, Reason: err.Error()})
			continue
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		sup, link, reason := parseRecord(get)
		if reason != "" {
			set.Skipped = append(set.Skipped, rowError{Line: line, Reason: reason})
			continue
		}

		key := strings.ToLower(sup.Name)
		if !seenSupplier[key] {
			seenSupplier[key] = true
			set.Suppliers = append(set.Suppliers, sup)
		}
		if link == nil {
			continue
		}
		linkKey := key + "\x00" + link.Barcode
		if seenLink[linkKey] {
			set.Skipped = append(set.Skipped, rowError{Line: line, Reason: "vínculo repetido para " + link.Barcode})
			continue
		}
		seenLink[linkKey] = true
		set.Links = append(set.Links, *link)
	}
	return set, nil
}

func parseRecord(get func(string) string) (supplierRow, *linkRow, string) {
	sup := supplierRow{
		Name:        get(colSupplierName),
		ContactName: get(colContactName),
		WhatsApp:    core.NormalizePhone(get(colWhatsApp)),
		Phone:       core.NormalizePhone(get(colPhone)),
		Email:       get(colEmail),
	}
	if sup.Name == "" {
		return sup, nil, "supplier_name vacío"
	}
	var err error
	if sup.LeadTimeDays, err = optionalInt(get(colLeadTimeDays), 0); err != nil {
		return sup, nil, colLeadTimeDays + ": " + err.Error()
	}
	if sup.MinOrderAmount, err = optionalDecimal(get(colMinOrderAmount)); err != nil {
		return sup, nil, colMinOrderAmount + ": " + err.Error()
	}

	barcode := get(colBarcode)
	if barcode == "" {
		return sup, nil, ""
	}
	link := &linkRow{SupplierName: sup.Name, Barcode: barcode, SupplierSKU: get(colSupplierSKU)}
	if link.UnitCost, err = optionalDecimal(get(colUnitCost)); err != nil {
		return sup, nil, colUnitCost + ": " + err.Error()
	}
	if link.ReorderThreshold, err = optionalInt(get(colReorderThreshold), 0); err != nil {
		return sup, nil, colReorderThreshold + ": " + err.Error()
	}
	if link.DefaultReorderQty, err = optionalInt(get(colDefaultReorderQty), 1); err != nil {
		return sup, nil, colDefaultReorderQty + ": " + err.Error()
	}
	priority, err := optionalInt(get(colPriority), 0)
	if err != nil {
		return sup, nil, colPriority + ": " + err.Error()
	}
	if priority != nil {
		link.Priority = *priority
	}
	return sup, link, ""
}

func optionalInt(s string, min int) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("no es un entero: %q", s)
	}
	if v < min {
		return nil, fmt.Errorf("debe ser >= %d", min)
	}
	return &v, nil
}

// optionalDecimal acepta coma decimal ("1500,50") como la exportan las planillas en español.
func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return nil, fmt.Errorf("no es un número: %q", s)
	}
	if d.IsNegative() {
		return nil, errors.New("debe ser >= 0")
	}
	return &d, nil
}

// phoneWarnings informa los teléfonos que no son válidos para la región (ej. "CL").
// El número se importa igual, normalizado.
func phoneWarnings(set *importSet, region string) []string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return nil
	}
	var out []string
	for _, s := range set.Suppliers {
		for _, p := range []string{s.WhatsApp, s.Phone} {
			if p == "" {
				continue
			}
			num, err := phonenumbers.Parse(p, region)
			if err != nil || !phonenumbers.IsValidNumber(num) {
				out = append(out, fmt.Sprintf("%s: teléfono %s no es válido para %s", s.Name, p, region))
			}
		}
	}
	return out
}

// buildStatements genera una sentencia idempotente por proveedor y por vínculo: actualiza la
// fila existente y si no la hay la inserta. No depende de restricciones únicas en la base.
// Los proveedores se buscan por nombre (sin distinguir mayúsculas) y los productos por barcode;
// si el producto no existe la sentencia del vínculo no hace nada.
func buildStatements(set *importSet, newID func() string) []string {
	stmts := make([]string, 0, len(set.Suppliers)+len(set.Links))
	for _, s := range set.Suppliers {
		contact, phone, whatsapp := nullString(s.ContactName), nullString(s.Phone), nullString(s.WhatsApp)
		email, lead, minOrder := nullString(s.Email), nullInt(s.LeadTimeDays), nullDecimal(s.MinOrderAmount)
		stmts = append(stmts, fmt.Sprintf(
			"WITH upd AS (\n"+
				"  UPDATE suppliers SET\n"+
				"    contact_name = COALESCE(%s, contact_name),\n"+
				"    phone = COALESCE(%s, phone),\n"+
				"    whatsapp = COALESCE(%s, whatsapp),\n"+
				"    email = COALESCE(%s, email),\n"+
				"    lead_time_days = COALESCE(%s, lead_time_days),\n"+
				"    min_order_amount = COALESCE(%s, min_order_amount),\n"+
				"    updated_at = now()\n"+
				"  WHERE lower(name) = lower(%s)\n"+
				"  RETURNING id\n"+
				")\n"+
				"INSERT INTO suppliers (id, name, contact_name, phone, whatsapp, email, lead_time_days, min_order_amount, created_at, updated_at)\n"+
				"SELECT %s, %s, %s, %s, %s, %s, %s, %s, now(), now()\n"+
				"WHERE NOT EXISTS (SELECT 1 FROM upd);",
			contact, phone, whatsapp, email, lead, minOrder, quote(s.Name),
			quote(newID()), quote(s.Name), contact, phone, whatsapp, email, lead, minOrder,
		))
	}
	for _, l := range set.Links {
		sku, cost := nullString(l.SupplierSKU), nullDecimal(l.UnitCost)
		threshold, qty := nullInt(l.ReorderThreshold), nullInt(l.DefaultReorderQty)
		stmts = append(stmts, fmt.Sprintf(
			"WITH target AS (\n"+
				"  SELECT p.id AS product_id, s.id AS supplier_id\n"+
				"  FROM products p JOIN suppliers s ON lower(s.name) = lower(%s)\n"+
				"  WHERE p.barcode = %s\n"+
				"  LIMIT 1\n"+
				"), upd AS (\n"+
				"  UPDATE product_supplier_links l SET\n"+
				"    supplier_sku = %s,\n"+
				"    unit_cost = %s,\n"+
				"    reorder_threshold = %s,\n"+
				"    default_reorder_qty = %s,\n"+
				"    priority = %d,\n"+
				"    updated_at = now()\n"+
				"  FROM target t WHERE l.product_id = t.product_id AND l.supplier_id = t.supplier_id\n"+
				"  RETURNING l.id\n"+
				")\n"+
				"INSERT INTO product_supplier_links (id, product_id, supplier_id, supplier_sku, unit_cost, reorder_threshold, default_reorder_qty, priority, created_at, updated_at)\n"+
				"SELECT %s, t.product_id, t.supplier_id, %s, %s, %s, %s, %d, now(), now()\n"+
				"FROM target t WHERE NOT EXISTS (SELECT 1 FROM upd);",
			quote(l.SupplierName), quote(l.Barcode),
			sku, cost, threshold, qty, l.Priority,
			quote(newID()), sku, cost, threshold, qty, l.Priority,
		))
	}
	return stmts
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullString(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}

func nullInt(v *int) string {
	if v == nil {
		return "NULL"
	}
	return strconv.Itoa(*v)
}

func nullDecimal(d *decimal.Decimal) string {
	if d == nil {
		return "NULL"
	}
	return d.String()
}
