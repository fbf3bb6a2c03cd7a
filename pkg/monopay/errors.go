package monopay

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an SDK error.
type Kind string

const (
	KindNetwork             Kind = "NETWORK_ERROR"
	KindDecode              Kind = "DECODE_ERROR"
	KindGateway             Kind = "GATEWAY_ERROR"
	KindLegacyGateway       Kind = "LEGACY_GATEWAY_ERROR"
	KindUnknownGateway      Kind = "UNKNOWN_GATEWAY_ERROR"
	KindValidation          Kind = "DOMAIN_VALIDATION_ERROR"
	KindContractViolation   Kind = "GATEWAY_CONTRACT_VIOLATION"
	KindClientNotConfigured Kind = "CLIENT_NOT_CONFIGURED"
)

// Code narrows a Kind down to the failed check.
type Code string

const (
	CodeAmountInvalid        Code = "AMOUNT_INVALID"
	CodeCardFieldMissing     Code = "CARD_FIELD_MISSING"
	CodeInvoiceIDMissing     Code = "INVOICE_ID_MISSING"
	CodeInvoiceCreateFailed  Code = "INVOICE_CREATE_FAILED"
	CodeInvoiceNotFound      Code = "INVOICE_NOT_FOUND"
	CodeInvoiceRefundFailed  Code = "INVOICE_REFUND_FAILED"
	CodeInvoiceCaptureFailed Code = "INVOICE_CAPTURE_FAILED"
	CodeReceiptUnavailable   Code = "RECEIPT_UNAVAILABLE"
	CodeChecksUnavailable    Code = "CHECKS_UNAVAILABLE"
	CodePaymentFailed        Code = "PAYMENT_FAILED"
	CodeMerchantUnavailable  Code = "MERCHANT_UNAVAILABLE"
	CodeStatementUnavailable Code = "STATEMENT_UNAVAILABLE"
	CodePublicKeyUnavailable Code = "PUBLIC_KEY_UNAVAILABLE"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrNetwork             = &Error{Kind: KindNetwork}
	ErrDecode              = &Error{Kind: KindDecode}
	ErrGateway             = &Error{Kind: KindGateway}
	ErrLegacyGateway       = &Error{Kind: KindLegacyGateway}
	ErrUnknownGateway      = &Error{Kind: KindUnknownGateway}
	ErrValidation          = &Error{Kind: KindValidation}
	ErrContractViolation   = &Error{Kind: KindContractViolation}
	ErrClientNotConfigured = &Error{Kind: KindClientNotConfigured}
)

// Error is returned by every fallible SDK call.
//
// StatusCode is the gateway HTTP status for GATEWAY_ERROR, LEGACY_GATEWAY_ERROR and
// UNKNOWN_GATEWAY_ERROR. Errors raised locally carry 500.
type Error struct {
	Kind       Kind
	Code       Code
	Message    string
	StatusCode int
	// Body is the raw gateway body for decode and unknown-shape failures.
	Body string
	// Field names the missing card field for CARD_FIELD_MISSING.
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "monopay: " + string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("monopay: %s: %v", e.Message, e.Err)
	}
	return "monopay: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by Kind, and by Code when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// KindOf returns the Kind of err, or "" when err is not an SDK error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf returns the Code of err, or "" when none is set.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newLocalError(kind Kind, code Code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, StatusCode: http.StatusInternalServerError}
}

func validationError(code Code, msg string) *Error {
	return newLocalError(KindValidation, code, msg)
}

func contractError(code Code, msg string) *Error {
	return newLocalError(KindContractViolation, code, msg)
}

func errClientMissing() *Error {
	return newLocalError(KindClientNotConfigured, "", "Mono API Client isn't specified.")
}
