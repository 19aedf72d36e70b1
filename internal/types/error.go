package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// Validation errors: rejected before any mutation, retryable with
	// corrected input.
	InvalidAmount      ErrorCode = "INVALID_AMOUNT"
	UnevenDistribution ErrorCode = "UNEVEN_DISTRIBUTION"
	UnauthorizedCaller ErrorCode = "UNAUTHORIZED_CALLER"
	UnauthorizedMinter ErrorCode = "UNAUTHORIZED_MINTER"
	ValidationError    ErrorCode = "VALIDATION_ERROR"

	// State errors: lifecycle gates, expected non-fatal outcomes.
	EscrowNotFound   ErrorCode = "ESCROW_NOT_FOUND"
	EscrowExpired    ErrorCode = "ESCROW_EXPIRED"
	EscrowNotExpired ErrorCode = "ESCROW_NOT_EXPIRED"

	// Arithmetic errors: a computed quantity would violate an invariant.
	CalculationOverflow      ErrorCode = "CALCULATION_OVERFLOW"
	InsufficientFunds        ErrorCode = "INSUFFICIENT_FUNDS"
	InsufficientTokenBalance ErrorCode = "INSUFFICIENT_TOKEN_BALANCE"

	// External-dependency errors: propagated verbatim, never retried here.
	TransferFailed ErrorCode = "TRANSFER_FAILED"
	BurnFailed     ErrorCode = "BURN_FAILED"

	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error carries an HTTP-ish status for the API surface, a stable code for
// programmatic handling and the underlying cause.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.ErrorCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, fmt.Errorf("%s", msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}

// HasErrorCode reports whether err is a *types.Error carrying the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	typed, ok := err.(*Error)
	if !ok {
		return false
	}
	return typed.ErrorCode == code
}
