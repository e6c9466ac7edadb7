package apierror

import (
	"fmt"
	"net/http"
)

// Kind is the closed classification of failures used across the whole
// application. Handlers, services and repositories only ever signal one of
// these five kinds; the HTTP status and the default message are derived from
// the kind alone.
type Kind int

const (
	// InvalidField - a request body field failed validation.
	InvalidField Kind = iota
	// InvalidParameter - a query/path parameter is missing or malformed.
	InvalidParameter
	// InvalidOperation - the request is well-formed but violates a business rule.
	InvalidOperation
	// TemporaryUnavailable - a transient infrastructure failure; retry may succeed.
	TemporaryUnavailable
	// DbAccess - any other persistence failure.
	DbAccess
)

// Default messages per kind. Used when the caller supplies no message.
const (
	MsgInvalidField         = "Invalid field value."
	MsgInvalidParameter     = "Invalid parameter."
	MsgInvalidOperation     = "Invalid operation."
	MsgTemporaryUnavailable = "Connection temporarily failed."
	MsgDbAccess             = "An error occurred while connecting to the database."
)

// Internal wrap messages used by repositories beneath the classified kinds.
const (
	MsgSelectFailed = "Select failed."
	MsgInsertFailed = "Insert failed"
	MsgUpdateFailed = "Update failed."
	MsgDeleteFailed = "Delete failed."
)

// Fixed business-rule message for the publish latch.
const MsgPublishFlag = "Cannot change the status from Published to Unpublished."

func (k Kind) String() string {
	switch k {
	case InvalidField:
		return "invalid_field"
	case InvalidParameter:
		return "invalid_parameter"
	case InvalidOperation:
		return "invalid_operation"
	case TemporaryUnavailable:
		return "temporary_unavailable"
	case DbAccess:
		return "db_access"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the fixed status code for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidField, InvalidParameter, InvalidOperation:
		return http.StatusBadRequest
	case TemporaryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage returns the fixed fallback message for the kind.
func (k Kind) DefaultMessage() string {
	switch k {
	case InvalidField:
		return MsgInvalidField
	case InvalidParameter:
		return MsgInvalidParameter
	case InvalidOperation:
		return MsgInvalidOperation
	case TemporaryUnavailable:
		return MsgTemporaryUnavailable
	default:
		return MsgDbAccess
	}
}

// Error is the typed error carried between layers. It wraps the low-level
// cause (if any) for logging, but only Kind and Message ever reach a client.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an error of the given kind. An empty message keeps the kind's
// default.
func New(kind Kind, message string) *Error {
	if message == "" {
		message = kind.DefaultMessage()
	}
	return &Error{Kind: kind, Message: message}
}

// Wrap is New with the underlying cause attached.
func Wrap(kind Kind, message string, cause error) *Error {
	e := New(kind, message)
	e.cause = cause
	return e
}
