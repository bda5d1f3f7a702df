package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Kind tells apart the outcomes a domain operation may fail with.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindDuplicateKey      Kind = "DUPLICATE_KEY"
	KindReferenceNotFound Kind = "REFERENCE_NOT_FOUND"
	KindValidationFailed  Kind = "VALIDATION_FAILED"
	KindInternal          Kind = "INTERNAL"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int

	// ErrorKind is the domain outcome behind the response.
	ErrorKind() Kind
}

type APIError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

func (a *APIError) ErrorKind() Kind {
	return a.Kind
}

type StructuredError struct {
	Kind   Kind                `json:"kind"`
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) ErrorKind() Kind {
	return s.Kind
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = newKind(KindValidationFailed, "Malformed JSON body")
	InternalServerError = newKind(KindInternal, "Internal server error")
	NotFoundError       = newKind(KindNotFound, "Resource not found")
	InvalidIDError      = newKind(KindValidationFailed, "The provided ID is invalid, IDs are usually int32 > 0")
)

// Is reports whether err carries the given kind.
func Is(err ErrorResponse, kind Kind) bool {
	return err != nil && err.ErrorKind() == kind
}

// StatusFor maps an outcome kind onto its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound, KindReferenceNotFound:
		return http.StatusNotFound
	case KindDuplicateKey, KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(msg string, args ...any) *APIError {
	return newKind(KindNotFound, msg, args...)
}

func DuplicateKey(msg string, args ...any) *APIError {
	return newKind(KindDuplicateKey, msg, args...)
}

func ReferenceNotFound(msg string, args ...any) *APIError {
	return newKind(KindReferenceNotFound, msg, args...)
}

func ValidationFailed(msg string, args ...any) *APIError {
	return newKind(KindValidationFailed, msg, args...)
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := NewStructured(KindValidationFailed)
	for _, fe := range ve {
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "gt":
			problems.Add(field, "Value must be greater than "+fe.Param())
		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

// NewSimple builds an error with an explicit status. The kind is inferred from it.
func NewSimple(status int, msg string, args ...any) *APIError {
	kind := KindInternal
	switch status {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
		kind = KindValidationFailed
	}
	err := newKind(kind, msg, args...)
	err.Status = status
	return err
}

func NewStructured(kind Kind) *StructuredError {
	return &StructuredError{
		Kind:   kind,
		Errors: make(map[string][]string),
		Status: StatusFor(kind),
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return ValidationFailed("Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func newKind(kind Kind, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Kind: kind, Message: msg, Status: StatusFor(kind)}
}
