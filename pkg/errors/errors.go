// Package errors defines the gateway error model shared across the module.
// Every failure surfaced to callers carries a Code so call sites can branch
// on kind without string matching.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a gateway failure.
type Code string

const (
	// CodeValidation marks a field value that violates a stated constraint.
	// Always caller-fixable, never retried.
	CodeValidation Code = "validation"

	// CodeEncryption marks a cipher primitive rejecting its inputs. Treated
	// as a configuration defect, not retried.
	CodeEncryption Code = "encryption"

	// CodeDecode marks malformed hex or a cipher/padding failure on decrypt.
	// Indicates corrupted or foreign input.
	CodeDecode Code = "decode"

	// CodeIntegrity marks a TradeSha mismatch. The callback must be
	// rejected; replaying the same bytes will always fail the same way.
	CodeIntegrity Code = "integrity"

	// CodeGateway marks a non-SUCCESS status in a gateway API response.
	CodeGateway Code = "gateway"

	// CodeInternal is the fallback for unexpected failures.
	CodeInternal Code = "internal"
)

// GatewayError is the error type returned by this module.
type GatewayError struct {
	Code    Code
	Message string
	Err     error
}

func (e GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e GatewayError) Unwrap() error {
	return e.Err
}

// New builds a GatewayError with the given code and message.
func New(code Code, message string) error {
	return GatewayError{Code: code, Message: message}
}

// Newf builds a GatewayError with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return GatewayError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, message string, err error) error {
	return GatewayError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) is a GatewayError
// carrying the given code.
func HasCode(err error, code Code) bool {
	var ge GatewayError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}

// Required reports a missing mandatory field.
func Required(field string) error {
	return Newf(CodeValidation, "field %s is required", field)
}

// TooLong reports a field exceeding its maximum length.
func TooLong(field string, maxLength int) error {
	return Newf(CodeValidation, "field %s exceeds maximum length %d", field, maxLength)
}

// Invalid reports a field value that fails a constraint.
func Invalid(field, reason string) error {
	if reason == "" {
		return Newf(CodeValidation, "field %s has an invalid value", field)
	}
	return Newf(CodeValidation, "field %s has an invalid value: %s", field, reason)
}

// ToHTTPStatus translates a code into an HTTP status for the callback
// receiver. Integrity and decode failures on an inbound callback are the
// sender's problem, hence 400.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeDecode, CodeIntegrity:
		return http.StatusBadRequest
	case CodeGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
