// Package pdf renders quotation summaries as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/pdf"

const (
	defaultTitle    = "CCTV Quotations"
	defaultCurrency = "Rs."
	font            = "Helvetica"
)

// column widths in mm; they sum to the printable A4 width with 15mm margins.
var (
	headers = []string{"#", "Product", "Qty", "Unit price", "Price", "GST (18%)", "Total"}
	widths  = []float64{10, 35, 15, 30, 30, 30, 30}
)

// Config configures the exporter.
type Config struct {
	Title    string
	Currency string
}

// Exporter implements ports.QuotationExporter.
type Exporter struct {
	title    string
	currency string
}

// New creates an Exporter, falling back to defaults for empty fields.
func New(cfg Config) *Exporter {
	e := &Exporter{title: cfg.Title, currency: cfg.Currency}
	if e.title == "" {
		e.title = defaultTitle
	}

	if e.currency == "" {
		e.currency = defaultCurrency
	}

	return e
}

// ContentType implements ports.QuotationExporter.
func (e *Exporter) ContentType() string { return ContentType }

// Render draws one table row per quotation followed by a grand total row.
func (e *Exporter) Render(qs []domain.Quotation, generatedAt time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetTitle(e.title, false)
	doc.SetCreator("cctv-quotations", false)
	doc.SetCreationDate(generatedAt)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(font, "I", 8)
		doc.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont(font, "B", 16)
	doc.CellFormat(0, 10, e.title, "", 1, "L", false, 0, "")

	doc.SetFont(font, "", 9)
	doc.CellFormat(0, 6, "Generated "+generatedAt.UTC().Format("02 Jan 2006 15:04 MST"), "", 1, "L", false, 0, "")
	doc.Ln(4)

	e.header(doc)

	doc.SetFont(font, "", 10)

	for i, q := range qs {
		if doc.GetY() > 270 {
			doc.AddPage()
			e.header(doc)
			doc.SetFont(font, "", 10)
		}

		cells := []string{
			fmt.Sprintf("%d", i+1),
			q.Product.String(),
			fmt.Sprintf("%d", q.Quantity),
			e.money(q.UnitPrice),
			e.money(q.Price),
			e.money(q.GST),
			e.money(q.Total),
		}
		for j, c := range cells {
			align := "R"
			if j == 1 {
				align = "L"
			}

			doc.CellFormat(widths[j], 7, c, "1", 0, align, false, 0, "")
		}

		doc.Ln(-1)
	}

	if len(qs) == 0 {
		doc.SetFont(font, "I", 10)
		doc.CellFormat(sum(widths), 7, "No quotations", "1", 1, "C", false, 0, "")
	}

	doc.SetFont(font, "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(sum(widths[:len(widths)-1]), 8, "Grand total", "1", 0, "R", true, 0, "")
	doc.CellFormat(widths[len(widths)-1], 8, e.money(domain.GrandTotal(qs)), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *Exporter) header(doc *gofpdf.Fpdf) {
	doc.SetFont(font, "B", 10)
	doc.SetFillColor(40, 40, 40)
	doc.SetTextColor(255, 255, 255)

	for i, h := range headers {
		doc.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}

	doc.Ln(-1)
	doc.SetTextColor(0, 0, 0)
}

func (e *Exporter) money(v float64) string {
	return fmt.Sprintf("%s %.2f", e.currency, v)
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}

	return total
}
