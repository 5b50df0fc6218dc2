// Package acl is the anti-corruption layer between quotectl and the
// quotation REST API.
//
// The API's JSON shapes and error envelope are decoded into unexported wire
// types here and translated into domain values, so the CLI and TUI only ever
// see domain.Quotation and domain errors. A change to the wire format stops
// at this package.
//
// Error translation:
//   - 400 INVALID_ID → [domain.ErrInvalidID]
//   - 400 VALIDATION_ERROR → [domain.ErrValidation] with every field detail
//   - 404 → [domain.ErrNotFound]
//   - other 4xx → [domain.ErrValidation]
//   - 429, 5xx, transport failures, an open breaker → [domain.ErrUnavailable]
package acl
