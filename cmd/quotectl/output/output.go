// Package output renders quotectl results as styled tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Printer writes results either as JSON or as human readable tables.
type Printer struct {
	w    io.Writer
	json bool
}

// New creates a printer writing to w.
func New(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, json: asJSON}
}

// JSON reports whether the printer emits JSON.
func (p *Printer) JSON() bool {
	return p.json
}

// quotationJSON matches the API's quotation shape so scripts can consume
// quotectl output and API responses the same way.
type quotationJSON struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Price     float64   `json:"price"`
	GST       float64   `json:"gst"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toJSON(q *domain.Quotation) quotationJSON {
	return quotationJSON{
		ID:        q.ID,
		Product:   q.Product.String(),
		Quantity:  q.Quantity,
		UnitPrice: q.UnitPrice,
		Price:     q.Price,
		GST:       q.GST,
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Quotations prints a list followed by the grand total.
func (p *Printer) Quotations(qs []domain.Quotation) error {
	if p.json {
		out := make([]quotationJSON, 0, len(qs))
		for i := range qs {
			out = append(out, toJSON(&qs[i]))
		}

		return p.encode(out)
	}

	if len(qs) == 0 {
		_, err := fmt.Fprintln(p.w, mutedStyle.Render("No quotations yet."))
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQTY\tUNIT PRICE\tPRICE\tGST\tTOTAL")

	for i := range qs {
		q := &qs[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			q.ID, q.Product, q.Quantity, Money(q.UnitPrice), Money(q.Price), Money(q.GST), Money(q.Total))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.w, "\n%s %s\n", primaryStyle.Render("Grand total:"), Money(domain.GrandTotal(qs)))

	return err
}

// Quotation prints a single record.
func (p *Printer) Quotation(q *domain.Quotation) error {
	if p.json {
		return p.encode(toJSON(q))
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", q.ID)
	fmt.Fprintf(tw, "Product\t%s\n", q.Product)
	fmt.Fprintf(tw, "Quantity\t%d\n", q.Quantity)
	fmt.Fprintf(tw, "Unit price\t%s\n", Money(q.UnitPrice))
	fmt.Fprintf(tw, "Price\t%s\n", Money(q.Price))
	fmt.Fprintf(tw, "GST (18%%)\t%s\n", Money(q.GST))
	fmt.Fprintf(tw, "Total\t%s\n", Money(q.Total))

	if !q.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Created\t%s\n", q.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(tw, "Updated\t%s\n", q.UpdatedAt.Local().Format(time.DateTime))
	}

	return tw.Flush()
}

// Catalog prints the product list prices.
func (p *Printer) Catalog(items []domain.CatalogItem) error {
	if p.json {
		type productJSON struct {
			Product   string  `json:"product"`
			UnitPrice float64 `json:"unitPrice"`
		}

		out := make([]productJSON, 0, len(items))
		for _, it := range items {
			out = append(out, productJSON{Product: it.Product.String(), UnitPrice: it.UnitPrice})
		}

		return p.encode(out)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tUNIT PRICE")

	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\n", it.Product, Money(it.UnitPrice))
	}

	return tw.Flush()
}

// Success prints a confirmation line. JSON printers stay silent so their
// output remains a single document.
func (p *Printer) Success(format string, args ...any) {
	if p.json {
		return
	}

	fmt.Fprint(p.w, successStyle.Render("✓ "))
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Error prints an error message to w.
func Error(w io.Writer, err error) {
	fmt.Fprint(w, errorStyle.Render("✗ "))
	fmt.Fprintln(w, err.Error())
}

// Money formats an amount with two decimals.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportFilename names a PDF export after the time it was taken, matching the
// name the service suggests in Content-Disposition.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("quotations-%s.pdf", now.UTC().Format("20060102-150405"))
}
