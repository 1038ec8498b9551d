// Package documents renders the restaurant's printable PDFs: the boleta for
// a placed order and the carta listing every menu.
package documents

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// taxRate is the IVA applied on top of the summed subtotal when printing.
// It exists only on the document; stored order totals exclude it.
const taxRate = 0.19

// ReceiptItem is one printed line of the boleta.
type ReceiptItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

func RenderReceipt(items []ReceiptItem, placedAt time.Time) ([]byte, error) {

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	// Company block on the left, order date on the right.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 6, "Boleta Restaurante", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(120, 5, "Restaurante Crunch", "", 1, "L", false, 0, "")
	pdf.CellFormat(120, 5, "RUT: 12.345.678-9", "", 1, "L", false, 0, "")
	pdf.CellFormat(120, 5, "Direccion: Calle Ejemplo 123, Temuco", "", 1, "L", false, 0, "")
	pdf.CellFormat(120, 5, "Telefono: +56 9 1234 5678", "", 1, "L", false, 0, "")

	if placedAt.IsZero() {
		placedAt = time.Now()
	}
	pdf.SetXY(140, 10)
	pdf.CellFormat(60, 6, placedAt.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	pdf.Ln(10)

	// Detail table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(239, 239, 239)
	pdf.CellFormat(85, 7, "Producto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Cantidad", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Precio Unitario", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)

	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
		pdf.CellFormat(85, 7, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, formatCLP(item.UnitPrice), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, formatCLP(item.Subtotal), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)

	// Totals.
	iva := subtotal * taxRate
	total := subtotal + iva

	pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, formatCLP(subtotal), "", 1, "R", false, 0, "")

	pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("IVA (%.0f%%):", taxRate*100), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, formatCLP(iva), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, formatCLP(total), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Gracias por su compra.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatCLP renders whole-peso amounts with dot thousand separators: $12.345.
func formatCLP(v float64) string {
	n := int64(math.Round(v))
	digits := strconv.FormatInt(n, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "$" + string(out)
}
