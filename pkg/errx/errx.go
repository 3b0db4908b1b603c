package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport-agnostic handling
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error definition (e.g. "RESUME_NOT_FOUND")
type Code string

// Error is the application error type carried through all layers
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair to the error and returns it for chaining
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// ToHTTPResponse returns the JSON-serializable response body
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// definition is the registered template for a code
type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain, namespaced by prefix
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with the domain name
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its fully-qualified code
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New instantiates a fresh error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Type:       def.errType,
		Code:       code,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithMessage instantiates a registered code with an overridden message
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	err := r.New(code)
	err.Message = message
	return err
}

// Wrap converts an arbitrary error into an *Error of the given type.
// Already-typed errors pass through untouched so HTTP mapping is preserved.
func Wrap(err error, message string, errType Type) *Error {
	if typed, ok := err.(*Error); ok {
		return typed
	}
	return &Error{
		Type:       errType,
		Code:       Code(string(errType) + "_ERROR"),
		Message:    message,
		HTTPStatus: statusForType(errType),
		cause:      err,
	}
}

func statusForType(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	typed, ok := err.(*Error)
	return ok && typed.Type == t
}
