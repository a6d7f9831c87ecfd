// Package apperrors defines the discriminated error type shared by the
// payment use cases and their HTTP handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so callers can branch without parsing messages
type Kind string

const (
	KindConfiguration       Kind = "configuration"
	KindValidation          Kind = "validation"
	KindUnsupportedCurrency Kind = "unsupported_currency"
	KindEmptyCart           Kind = "empty_cart"
	KindMissingCustomer     Kind = "missing_customer"
	KindInvalidAmount       Kind = "invalid_amount"
	KindInvalidCart         Kind = "invalid_cart"
	KindSignature           Kind = "signature"
	KindNotFound            Kind = "not_found"
	KindNotConfirmed        Kind = "not_confirmed"
	KindDecode              Kind = "decode"
	KindInternal            Kind = "internal"
)

// Cause codes that the storefront renders with bespoke copy
const (
	CauseOutOfStock = "out_of_stock"
)

// Error is the error type returned across the payments use case boundary
type Error struct {
	Kind    Kind
	Cause   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: k}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Cause == "" || t.Cause == e.Cause)
}

// IsValidation reports whether the error is a client input problem
func (e *Error) IsValidation() bool {
	switch e.Kind {
	case KindValidation, KindUnsupportedCurrency, KindEmptyCart,
		KindMissingCustomer, KindInvalidAmount, KindInvalidCart:
		return true
	}
	return false
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithCause returns a copy of e carrying a cause code
func (e *Error) WithCause(cause string) *Error {
	clone := *e
	clone.Cause = cause
	return &clone
}

// KindOf returns the kind of err, or KindInternal for foreign errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind anywhere in its chain
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code used by the HTTP handlers
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	if appErr.IsValidation() {
		return http.StatusBadRequest
	}

	switch appErr.Kind {
	case KindSignature, KindDecode:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNotConfirmed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Constructors for the initiation and confirmation taxonomy

func Configuration(message string) *Error { return New(KindConfiguration, message) }

func Validation(message string) *Error { return New(KindValidation, message) }

func UnsupportedCurrency(currency string) *Error {
	return New(KindUnsupportedCurrency, fmt.Sprintf("currency %q is not supported", currency))
}

func EmptyCart() *Error { return New(KindEmptyCart, "cart is empty") }

func MissingCustomer() *Error {
	return New(KindMissingCustomer, "a signed-in customer or an email address is required")
}

func InvalidAmount() *Error { return New(KindInvalidAmount, "cart subtotal must be a positive amount") }

func InvalidCart() *Error { return New(KindInvalidCart, "cart has no identifier") }

func OutOfStock(productID string) *Error {
	return Validation(fmt.Sprintf("product %s is out of stock", productID)).WithCause(CauseOutOfStock)
}

func NotFound(message string) *Error { return New(KindNotFound, message) }

func NotConfirmed(message string) *Error { return New(KindNotConfirmed, message) }

func Signature(message string) *Error { return New(KindSignature, message) }

func Decode(err error) *Error { return Wrap(KindDecode, "malformed payload", err) }

func Internal(message string, err error) *Error { return Wrap(KindInternal, message, err) }
