package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

func newCatalogCommand(withAPI apiBinder) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the products and their list prices",
		Args:  cobra.NoArgs,
		RunE: withAPI(func(cmd *cobra.Command, _ []string, api ports.QuotationAPI, p *output.Printer) error {
			items, err := api.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			return p.Catalog(items)
		}),
	}
}

func newExportCommand(withAPI apiBinder) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download every quotation as a PDF",
		Long: `Download a PDF listing every quotation and the grand total.

Examples:
  quotectl export                     # writes quotations-<timestamp>.pdf
  quotectl export -o out/quotes.pdf`,
		Args: cobra.NoArgs,
		RunE: withAPI(func(cmd *cobra.Command, _ []string, api ports.QuotationAPI, p *output.Printer) error {
			doc, err := api.Export(cmd.Context())
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = output.ExportFilename(time.Now())
			}

			if err := os.WriteFile(path, doc, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			p.Success("Wrote %s (%d bytes)", path, len(doc))

			return nil
		}),
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Destination file")

	return cmd
}
