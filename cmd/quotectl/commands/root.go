// Package commands implements the quotectl command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// Version is injected via ldflags.
var Version = "dev"

// options holds the global flags shared by every subcommand.
type options struct {
	apiURL     string
	profile    string
	jsonOutput bool
	verbose    bool
}

// APIFactory builds the quotation API a command talks to.
type APIFactory func(opts *options) (ports.QuotationAPI, error)

// Execute runs the root command against the configured service and exits
// non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := NewRootCommand(newRemoteAPI, os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)

	stop()

	if err != nil {
		output.Error(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand assembles the command tree. newAPI is called lazily by the
// subcommands that need the service.
func NewRootCommand(newAPI APIFactory, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "quotectl - CCTV quotation client",
		Long: `quotectl creates, lists, edits and exports CCTV equipment quotations
held by the quotation service.

Every quotation line is priced as unit price × quantity with 18% GST on top.

Examples:
  quotectl catalog
  quotectl create --product Camera --quantity 2
  quotectl list --json
  quotectl update <id> --quantity 3
  quotectl export -o quotations.pdf
  quotectl tui`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.apiURL, "api", os.Getenv("QUOTECTL_API"),
		"Quotation service base URL (defaults to services.quotations.base_url)")
	root.PersistentFlags().StringVar(&opts.profile, "profile", "local", "Config profile to read client settings from")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log client requests to stderr")

	withAPI := func(run runWithAPI) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(opts)
			if err != nil {
				return fmt.Errorf("connecting to quotation service: %w", err)
			}

			return run(cmd, args, api, output.New(cmd.OutOrStdout(), opts.jsonOutput))
		}
	}

	root.AddCommand(
		newListCommand(withAPI),
		newGetCommand(withAPI),
		newCreateCommand(withAPI),
		newUpdateCommand(withAPI),
		newDeleteCommand(withAPI),
		newCatalogCommand(withAPI),
		newExportCommand(withAPI),
		newTUICommand(withAPI),
	)

	return root
}

// runWithAPI is a subcommand body with its dependencies resolved.
type runWithAPI func(cmd *cobra.Command, args []string, api ports.QuotationAPI, p *output.Printer) error

// apiBinder adapts a runWithAPI into a cobra RunE.
type apiBinder func(run runWithAPI) func(*cobra.Command, []string) error
