// Package apierror provides the standardized error taxonomy and response
// envelope for the API. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (credential paths, upstream API errors, etc.).
package apierror

// Machine-readable error codes carried in the response body. The frontend
// branches on these, so they are part of the API contract.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateUsername  = "DUPLICATE_USERNAME"
	CodeDuplicateMobile    = "DUPLICATE_MOBILE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeApprovalRequired   = "APPROVAL_REQUIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeRecordNotFound     = "RECORD_NOT_FOUND"
	CodeInvalidRange       = "INVALID_RANGE"
	CodeNoDataFound        = "NO_DATA_FOUND"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is the canonical application error. Message is safe to show to
// clients; anything sensitive belongs in the server-side log, not here.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func New(code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// From returns err as an *AppError, wrapping unknown errors as a generic
// internal error so raw fault text never reaches a client.
func From(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return &AppError{Code: CodeInternal, Message: "internal server error"}
}

// Envelope is the JSON body for application-level failures. HTTP status is
// 200 for these; error semantics live in the body.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Body converts an error into the client-facing envelope.
func Body(err error) Envelope {
	appErr := From(err)
	return Envelope{Status: "error", Message: appErr.Message, ErrorCode: appErr.Code}
}
