// Package ports defines the contracts between the quotation service and its adapters.
//
// Port conventions:
//   - Context is the first parameter of every blocking method
//   - Methods return domain types, never wire DTOs or driver rows
//   - Failures use domain errors (ErrInvalidID, ErrNotFound, ErrUnavailable)
package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// QuotationRepository persists quotations. Implementations assign the id and
// both timestamps, and never leave a record partially written.
//
// Every id-taking method returns domain.ErrInvalidID for an id the backend
// cannot parse and domain.ErrNotFound for a well-formed id with no record.
// Backend faults are reported as domain.ErrUnavailable.
type QuotationRepository interface {
	// Create stores q as a new record and returns it with id and timestamps set.
	Create(ctx context.Context, q domain.Quotation) (*domain.Quotation, error)

	// List returns every record, most recently created first.
	List(ctx context.Context) ([]domain.Quotation, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (*domain.Quotation, error)

	// Update replaces the mutable fields of the record identified by q.ID
	// and refreshes its update timestamp.
	Update(ctx context.Context, q domain.Quotation) (*domain.Quotation, error)

	// Delete removes the record and returns it as it was before removal.
	Delete(ctx context.Context, id string) (*domain.Quotation, error)
}

// Store is a repository that can also be health checked and closed.
type Store interface {
	QuotationRepository
	HealthChecker
	io.Closer
}

// QuotationExporter renders quotations into a printable document.
type QuotationExporter interface {
	// ContentType returns the MIME type of rendered documents.
	ContentType() string

	// Render writes the document for qs. generatedAt is printed on the document.
	Render(qs []domain.Quotation, generatedAt time.Time) ([]byte, error)
}

// QuotationAPI is the remote view of the service used by the quotectl client.
type QuotationAPI interface {
	Create(ctx context.Context, d domain.Draft) (*domain.Quotation, error)
	List(ctx context.Context) ([]domain.Quotation, error)
	Get(ctx context.Context, id string) (*domain.Quotation, error)
	Update(ctx context.Context, id string, p domain.Patch) (*domain.Quotation, error)
	Delete(ctx context.Context, id string) (*domain.Quotation, error)
	Preview(ctx context.Context, d domain.Draft) (domain.LinePricing, error)
	Catalog(ctx context.Context) ([]domain.CatalogItem, error)
	Export(ctx context.Context) ([]byte, error)
}
