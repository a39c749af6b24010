package errors

import (
	"fmt"
	"net/http"

	"lecturescribe/internal/app/pipeline"
)

// ErrorKind classifies API errors for clients.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindBadRequest ErrorKind = "bad_request"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindUpstream   ErrorKind = "upstream_failure"
	KindTimeout    ErrorKind = "timeout"
	KindInternal   ErrorKind = "internal"
)

// APIError is the structured error body returned by every failing endpoint.
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a response status code.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details.
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{Kind: KindValidation, Message: message, Details: fields}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewConflictError(message string) *APIError {
	return &APIError{Kind: KindConflict, Message: message}
}

func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

// FromPipeline translates a transcription pipeline failure into the API
// error shape. Failures against external systems surface as upstream
// failures; exhausting the poll budget surfaces as a timeout.
func FromPipeline(err error) *APIError {
	switch pipeline.KindOf(err) {
	case pipeline.KindNotFound:
		return &APIError{Kind: KindNotFound, Message: err.Error()}
	case pipeline.KindConflict:
		return &APIError{Kind: KindConflict, Message: err.Error()}
	case pipeline.KindTimeout:
		return &APIError{Kind: KindTimeout, Message: err.Error()}
	case pipeline.KindRetrieval, pipeline.KindTranscode, pipeline.KindSubmission, pipeline.KindProviderFailed:
		return &APIError{Kind: KindUpstream, Message: err.Error()}
	default:
		return NewInternalError(err.Error())
	}
}
