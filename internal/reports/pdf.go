package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Column widths of the sales table, in mm. Same proportions the old web
// client used for its downloadable report.
var columnWidths = [4]float64{30, 40, 80, 30}

var columnHeaders = [4]string{"Date", "Seller", "Products (Qty)", "Total"}

// RenderPDF renders the report as a one-document PDF: title, period line,
// one table row per sale and a totals summary underneath.
func RenderPDF(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Sales Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", boundLabel(report.From, "Start"), boundLabel(report.To, "End")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range columnHeaders {
		pdf.CellFormat(columnWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, sale := range report.Sales {
		lines := make([]string, 0, len(sale.Items))
		for _, item := range sale.Items {
			lines = append(lines, fmt.Sprintf("%s (%d)", item.Product.Name, item.Quantity))
		}

		pdf.CellFormat(columnWidths[0], 7, sale.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[1], 7, sale.Seller.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[2], 7, strings.Join(lines, ", "), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[3], 7, "$"+sale.Total.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Summary:")
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Sales: $%s", report.TotalRevenue.StringFixed(2)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Products Sold: %d", report.TotalUnits))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func boundLabel(t time.Time, open string) string {
	if t.IsZero() {
		return open
	}
	return t.Format("2006-01-02")
}
