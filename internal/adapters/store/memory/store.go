// Package memory provides an in-process quotation store.
// Records are lost on restart. It is the default driver for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// Name is the driver and health check name.
const Name = "memory"

type record struct {
	q   domain.Quotation
	seq uint64
}

// Store keeps quotations in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]record
	seq     uint64
	now     func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records: make(map[uuid.UUID]record),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NewInvalidIDError(domain.EntityQuotation, id)
	}

	return u, nil
}

// Create implements ports.QuotationRepository.
func (s *Store) Create(_ context.Context, q domain.Quotation) (*domain.Quotation, error) {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	q.ID = id.String()
	q.CreatedAt = now
	q.UpdatedAt = now

	s.seq++
	s.records[id] = record{q: q, seq: s.seq}

	return &q, nil
}

// List implements ports.QuotationRepository.
func (s *Store) List(_ context.Context) ([]domain.Quotation, error) {
	s.mu.RLock()
	recs := make([]record, 0, len(s.records))
	for _, r := range s.records {
		recs = append(recs, r)
	}
	s.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].q.CreatedAt.Equal(recs[j].q.CreatedAt) {
			return recs[i].q.CreatedAt.After(recs[j].q.CreatedAt)
		}

		return recs[i].seq > recs[j].seq
	})

	out := make([]domain.Quotation, len(recs))
	for i, r := range recs {
		out[i] = r.q
	}

	return out, nil
}

// Get implements ports.QuotationRepository.
func (s *Store) Get(_ context.Context, id string) (*domain.Quotation, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[key]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	q := r.q

	return &q, nil
}

// Update implements ports.QuotationRepository.
func (s *Store) Update(_ context.Context, q domain.Quotation) (*domain.Quotation, error) {
	key, err := parseID(q.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[key]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityQuotation, q.ID)
	}

	q.CreatedAt = r.q.CreatedAt
	q.UpdatedAt = s.now()
	r.q = q
	s.records[key] = r

	return &q, nil
}

// Delete implements ports.QuotationRepository.
func (s *Store) Delete(_ context.Context, id string) (*domain.Quotation, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[key]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	delete(s.records, key)

	return &r.q, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return Name }

// Check implements ports.HealthChecker. The memory store is always healthy.
func (s *Store) Check(ctx context.Context) error { return ctx.Err() }

// Close implements io.Closer.
func (s *Store) Close() error { return nil }

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
