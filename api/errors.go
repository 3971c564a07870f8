package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/infobip-go/internal/validation"
)

// Sentinel errors classify every failure a call can return; match them with
// errors.Is. The structured types below carry the details.
var (
	ErrValidation = errors.New("infobip: validation failed")
	ErrTransport  = errors.New("infobip: transport failure")
	ErrAPI        = errors.New("infobip: api error")
	ErrDecode     = errors.New("infobip: decode failure")
	ErrIO         = errors.New("infobip: attachment i/o failure")
)

var errMissingEnvelope = errors.New("missing requestError.serviceException")

// Violation is one broken field rule.
type Violation = validation.Violation

// ValidationError lists every rule a request broke. It is returned before
// anything is sent.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the violations reported for the given wire path.
func (e *ValidationError) Field(path string) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Field == path {
			out = append(out, v)
		}
	}
	return out
}

// ServiceException is the remote description of a failed call.
type ServiceException struct {
	MessageID        string              `json:"messageId,omitempty"`
	Text             string              `json:"text,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}

// RequestError wraps the service exception on the wire.
type RequestError struct {
	ServiceException ServiceException `json:"serviceException"`
}

// ErrorDetails is the body returned with a non-success status.
type ErrorDetails struct {
	RequestError RequestError `json:"requestError"`
}

// APIError is a non-success response whose body decoded as ErrorDetails.
// Body keeps the raw response, truncated to DefaultRawBodyLimit runes.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
	Body       string
}

func (e *APIError) Error() string {
	ex := e.Details.RequestError.ServiceException
	msg := fmt.Sprintf("%s: status %d", ErrAPI.Error(), e.StatusCode)
	if ex.MessageID != "" {
		msg += ": " + ex.MessageID
	}
	if ex.Text != "" {
		msg += ": " + ex.Text
	}
	return msg
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// Exception is a shortcut to the decoded service exception.
func (e *APIError) Exception() ServiceException {
	return e.Details.RequestError.ServiceException
}

// DecodeError means a response body did not match the expected shape.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", ErrDecode.Error(), e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func wrapTransport(method, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
}

func wrapIO(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}

// Validate runs the field rules of v and returns a *ValidationError listing
// every violation, or nil.
func Validate(v any) error {
	violations, err := validation.Struct(v)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
