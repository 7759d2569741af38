package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kailas-cloud/aiconsole/internal/domain"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes returned by the API.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeCatalogEmpty      ErrorCode = "catalog_empty"
	CodeProviderError     ErrorCode = "provider_error"
	CodeTranslationFailed ErrorCode = "translation_failed"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

var errorHandlers = []errorHandler{
	sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, CodeValidationFailed),
	sentinelHandler(domain.ErrEmptyCatalog, http.StatusServiceUnavailable, CodeCatalogEmpty),
	sentinelHandler(domain.ErrProviderError, http.StatusBadGateway, CodeProviderError),
	sentinelHandler(domain.ErrNoToolCall, http.StatusBadGateway, CodeTranslationFailed),
	sentinelHandler(domain.ErrInvalidToolArguments, http.StatusBadGateway, CodeTranslationFailed),
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client only sees the sentinel message, never the wrapped details.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}
