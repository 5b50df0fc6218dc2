package commands

import (
	"fmt"
	"os"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients/acl"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// newRemoteAPI builds the resilient HTTP client from the client section of
// the service configuration and wraps it in the quotation ACL.
func newRemoteAPI(opts *options) (ports.QuotationAPI, error) {
	cfg, err := config.Load(opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: "quotectl",
		Version: Version,
	}, os.Stderr)

	baseURL := cfg.Services.Quotations.BaseURL
	if opts.apiURL != "" {
		baseURL = opts.apiURL
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: cfg.Services.Quotations.Name,
		UserAgent:   "quotectl/" + Version,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	return acl.NewQuotationClient(acl.QuotationClientConfig{
		Client: httpClient,
		Logger: logger,
	}), nil
}
