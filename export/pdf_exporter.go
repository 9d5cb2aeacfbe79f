package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"podorder/model"
)

// BuildPDF renders the order lines as a tabular A4 document. Presentation
// only; the flat-file layout engine is not involved.
func BuildPDF(batch model.OrderBatch, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Book Order", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Order reference: %s", batch.OrderRef), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", now.Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{15, 35, 85, 20, 35}
	headers := []string{"Line", "ISBN", "Description", "Qty", "Status"}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, line := range batch.Lines {
		status := "Available"
		if !line.Available {
			status = "Not Found"
		}
		pdf.CellFormat(widths[0], 7, line.LineNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, line.ISBN, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, strconv.Itoa(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
