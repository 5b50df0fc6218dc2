package dto

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
)

// contextKeyTraceID mirrors telemetry.ContextKeyTraceID.
const contextKeyTraceID = "trace_id"

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			validationDetails(err),
		)

	case domain.IsInvalidID(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeInvalidID, invalidIDMessage(err))

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, notFoundMessage(err))

	case domain.IsUnavailable(err):
		// Store faults carry driver detail; it stays in the logs.
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"service temporarily unavailable",
		)

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}

	return "resource not found"
}

func invalidIDMessage(err error) string {
	var bad *domain.InvalidIDError
	if errors.As(err, &bad) {
		return bad.Error()
	}

	return "invalid id"
}

func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var many *domain.ValidationErrors
	if errors.As(err, &many) {
		for _, fe := range many.Errors {
			details[fe.Field] = fe.Message
		}

		return details
	}

	var one *domain.ValidationError
	if errors.As(err, &one) && one.Field != "" {
		details[one.Field] = one.Message
	}

	return details
}

// GetTraceID returns the trace id stored by the telemetry middleware, the
// active span's trace id, or the request id header, in that order.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(contextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError writes the envelope for err. 5xx errors are logged with the
// request logger.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			"error", err.Error(),
			"status", status,
		)
	}

	c.JSON(status, resp)
}

// HandleBindError classifies request decoding failures.
// Type mismatches and validator failures become VALIDATION_ERROR with field
// details; unparseable bodies become BAD_REQUEST.
func HandleBindError(c *gin.Context, err error) {
	var (
		tooLarge *http.MaxBytesError
		typeErr  *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &tooLarge):
		RespondWithErrorCode(c, ErrorCodePayloadTooLarge, "request body too large")

	case IsValidationError(err):
		RespondWithValidationErrors(c, ValidationErrors(err))

	case errors.As(err, &typeErr) && typeErr.Field != "":
		RespondWithValidationErrors(c, map[string]string{
			typeErr.Field: "must be a " + jsonKind(typeErr.Type.Kind().String()),
		})

	case errors.Is(err, io.EOF):
		RespondWithErrorCode(c, ErrorCodeBadRequest, "request body is required")

	default:
		RespondWithErrorCode(c, ErrorCodeBadRequest, "malformed JSON body")
	}
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "whole number"
	case "float32", "float64":
		return "number"
	default:
		return goKind
	}
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response with field-level validation errors.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
