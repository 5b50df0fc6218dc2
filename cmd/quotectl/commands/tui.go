package commands

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/tui"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

func newTUICommand(withAPI apiBinder) *cobra.Command {
	var light bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive quotation screen",
		Long: `Open a full screen editor for quotations.

Keys:
  tab         switch between the form and the list
  ←/→         change product
  enter       save the form, or edit the selected quotation
  d           delete the selected quotation
  e           export a PDF
  t           toggle dark mode
  q, ctrl+c   quit`,
		Args: cobra.NoArgs,
		RunE: withAPI(func(cmd *cobra.Command, _ []string, api ports.QuotationAPI, _ *output.Printer) error {
			return tui.Run(cmd.Context(), api, tui.Options{DarkMode: !light})
		}),
	}

	cmd.Flags().BoolVar(&light, "light", false, "Start in light mode")

	return cmd
}
