package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

func newListCommand(withAPI apiBinder) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List quotations, newest first, with the grand total",
		Args:    cobra.NoArgs,
		RunE: withAPI(func(cmd *cobra.Command, _ []string, api ports.QuotationAPI, p *output.Printer) error {
			qs, err := api.List(cmd.Context())
			if err != nil {
				return err
			}

			return p.Quotations(qs)
		}),
	}
}

func newGetCommand(withAPI apiBinder) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one quotation",
		Args:  cobra.ExactArgs(1),
		RunE: withAPI(func(cmd *cobra.Command, args []string, api ports.QuotationAPI, p *output.Printer) error {
			q, err := api.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return p.Quotation(q)
		}),
	}
}

func newCreateCommand(withAPI apiBinder) *cobra.Command {
	var (
		product   string
		quantity  int
		unitPrice float64
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a quotation",
		Long: `Create a quotation for one product line.

The unit price defaults to the catalog list price. Price, GST and total are
always computed by the service.

Examples:
  quotectl create --product Camera --quantity 2
  quotectl create --product DVR --quantity 1 --unit-price 3000
  quotectl create --product Monitor --quantity 4 --dry-run`,
		Args: cobra.NoArgs,
		RunE: withAPI(func(cmd *cobra.Command, _ []string, api ports.QuotationAPI, p *output.Printer) error {
			d := domain.Draft{Product: domain.Product(product), Quantity: quantity, UnitPrice: unitPrice}
			if !cmd.Flags().Changed("unit-price") {
				d.UnitPrice, _ = domain.ListPrice(d.Product)
			}

			if dryRun {
				line, err := api.Preview(cmd.Context(), d)
				if err != nil {
					return err
				}

				return p.Quotation(&domain.Quotation{
					Product:   d.Product,
					Quantity:  d.Quantity,
					UnitPrice: d.UnitPrice,
					Price:     line.Price,
					GST:       line.GST,
					Total:     line.Total,
				})
			}

			q, err := api.Create(cmd.Context(), d)
			if err != nil {
				return err
			}

			p.Success("Created quotation %s", q.ID)

			return p.Quotation(q)
		}),
	}

	cmd.Flags().StringVarP(&product, "product", "p", "", "Product: Camera, Monitor or DVR")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity, at least 1")
	cmd.Flags().Float64Var(&unitPrice, "unit-price", 0, "Unit price (defaults to the list price)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Price the line without storing it")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newUpdateCommand(withAPI apiBinder) *cobra.Command {
	var (
		product   string
		quantity  int
		unitPrice float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a quotation",
		Long: `Change the product, quantity or unit price of a quotation. Only the
flags given are sent; the service recomputes price, GST and total.

Examples:
  quotectl update <id> --quantity 3
  quotectl update <id> --product Monitor --unit-price 4200`,
		Args: cobra.ExactArgs(1),
		RunE: withAPI(func(cmd *cobra.Command, args []string, api ports.QuotationAPI, p *output.Printer) error {
			var patch domain.Patch

			if cmd.Flags().Changed("product") {
				pr := domain.Product(product)
				patch.Product = &pr
			}

			if cmd.Flags().Changed("quantity") {
				patch.Quantity = &quantity
			}

			if cmd.Flags().Changed("unit-price") {
				patch.UnitPrice = &unitPrice
			}

			if patch.Empty() {
				return errors.New("nothing to update: pass --product, --quantity or --unit-price")
			}

			q, err := api.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			p.Success("Updated quotation %s", q.ID)

			return p.Quotation(q)
		}),
	}

	cmd.Flags().StringVarP(&product, "product", "p", "", "New product")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "New quantity")
	cmd.Flags().Float64Var(&unitPrice, "unit-price", 0, "New unit price")

	return cmd
}

func newDeleteCommand(withAPI apiBinder) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a quotation",
		Args:    cobra.ExactArgs(1),
		RunE: withAPI(func(cmd *cobra.Command, args []string, api ports.QuotationAPI, p *output.Printer) error {
			q, err := api.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if p.JSON() {
				return p.Quotation(q)
			}

			p.Success("Deleted quotation %s (%s × %d)", q.ID, q.Product, q.Quantity)

			return nil
		}),
	}
}
