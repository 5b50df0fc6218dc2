package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// Error codes the quotation API puts in its error envelope.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeInvalidID   = "INVALID_ID"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// ErrorResponse mirrors the API error envelope.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the body of the error envelope.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ParseErrorResponse decodes an error envelope. It returns nil when the body
// is empty or not an envelope.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Error.Code == "" && errResp.Error.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError translates a failed call into a domain error. clientErr is the
// transport error when no response arrived; otherwise resp must be a non-2xx
// response whose body has not been read. id is the quotation id the call
// addressed, if any.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, id string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return mapStatusCode(resp.StatusCode, ParseErrorResponse(resp.Body), serviceName, operation, id)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, "circuit breaker open during "+operation)

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName, "max retries exceeded during "+operation)

	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, id string) error {
	message := fmt.Sprintf("%s failed with status %d", operation, status)

	var detail ErrorDetail
	if errResp != nil {
		detail = errResp.Error
		if detail.Message != "" {
			message = detail.Message
		}
	}

	switch {
	case status == http.StatusNotFound && id != "":
		return domain.NewNotFoundError(domain.EntityQuotation, id)

	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, message)

	case detail.Code == CodeInvalidID:
		return domain.NewInvalidIDError(domain.EntityQuotation, id)

	case detail.Code == CodeValidation && len(detail.Details) > 0:
		return validationFromDetails(detail.Details)

	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return domain.NewValidationError("", message)
	}
}

// validationFromDetails keeps every field failure, ordered by field name.
func validationFromDetails(details map[string]string) error {
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}

	sort.Strings(fields)

	errs := &domain.ValidationErrors{}
	for _, f := range fields {
		errs.Add(f, details[f], nil)
	}

	return errs
}
