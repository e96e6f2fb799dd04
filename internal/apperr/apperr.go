// Package apperr defines the error kinds shared by the repository, the
// services and the HTTP layer. Callers match on Kind, never on driver codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindParse       Kind = "PARSE_ERROR"
	KindEmptyInput  Kind = "EMPTY_INPUT"
	KindDatabase    Kind = "DATABASE_ERROR"
	KindNotFound    Kind = "NOT_FOUND"
	KindValidation  Kind = "VALIDATION_ERROR"
	KindConflict    Kind = "CONFLICT"
	KindUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindInternal    Kind = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind
	Op      string
	SKU     string
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.SKU != "" {
		msg = fmt.Sprintf("%s (sku %s)", msg, e.SKU)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap keeps err as the cause of a new error of the given kind.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Message: err.Error(), Err: err}
}

func (e *Error) WithSKU(sku string) *Error {
	e.SKU = sku
	return e
}

func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// KindOf reports the kind of the first *Error in err's chain, or
// KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func NotFound(op, sku string) *Error {
	return &Error{Kind: KindNotFound, Op: op, SKU: sku, Message: "product not found"}
}

func Validation(op, message string, details interface{}) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message, Details: details}
}
