package documents

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// MenuEntry is one row of the printed carta.
type MenuEntry struct {
	Name  string
	Price float64
}

func RenderMenuCard(entries []MenuEntry) ([]byte, error) {

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	// Banner header.
	pdf.SetFillColor(43, 155, 230)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Restaurante Crunch - Carta", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Primavera 2025", "", 1, "L", true, 0, "")

	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(245, 247, 250)
	pdf.CellFormat(140, 8, "Menu", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Precio", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, entry := range entries {
		pdf.CellFormat(140, 8, entry.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, formatCLP(entry.Price), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
