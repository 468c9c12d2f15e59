package entity

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidAmount      ErrorKind = "invalid_amount"
	KindSelfDealing        ErrorKind = "self_dealing"
	KindForbidden          ErrorKind = "forbidden"
	KindInsufficientFunds  ErrorKind = "insufficient_funds"
	KindInvalidState       ErrorKind = "invalid_state"
	KindNotAuthorized      ErrorKind = "not_authorized"
	KindRefundFailure      ErrorKind = "refund_failure"
	KindConflict           ErrorKind = "conflict"
	KindGatewayError       ErrorKind = "gateway_error"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadGateway         ErrorKind = "bad_gateway"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindInternal           ErrorKind = "internal"
)

// Error is the failure type of the ledger core. Upstream fields are set
// only for KindGatewayError.
type Error struct {
	Kind           ErrorKind
	Message        string
	UpstreamStatus int
	UpstreamBody   string
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal otherwise.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidAmount      = &Error{Kind: KindInvalidAmount}
	ErrSelfDealing        = &Error{Kind: KindSelfDealing}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrInsufficientFunds  = &Error{Kind: KindInsufficientFunds}
	ErrInvalidState       = &Error{Kind: KindInvalidState}
	ErrNotAuthorized      = &Error{Kind: KindNotAuthorized}
	ErrRefundFailure      = &Error{Kind: KindRefundFailure}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrGatewayError       = &Error{Kind: KindGatewayError}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrBadGateway         = &Error{Kind: KindBadGateway}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
)
