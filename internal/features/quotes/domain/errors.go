package domain

import "strconv"

// Quote error codes surfaced to the caller.
const (
	CodeEmptyCart     = "CALCULATE_EMPTY_CART"
	CodeInvalidZip    = "CALCULATE_INVALID_ZIP"
	CodeConfigMissing = "CALCULATE_ERR"
	CodeCarrierMsg    = "CALCULATE_ERR_MSG"
	CodeUnexpectedRsp = "CALCULATE_UNEXPECTED_RSP"
)

// CalcError is a structured quote failure with a stable error code.
type CalcError struct {
	// Code is one of the CALCULATE_* error codes.
	Code string `json:"error"`
	// Message describes the failure for operator diagnosis.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	return e.Code + ": " + e.Message
}

// NewCalcError builds a CalcError with the given code and message.
func NewCalcError(code, message string) *CalcError {
	return &CalcError{Code: code, Message: message}
}

// UpstreamStatusError reports a non-2xx status from the carrier web service.
type UpstreamStatusError struct {
	Status int
}

// Error implements the error interface.
func (e *UpstreamStatusError) Error() string {
	return "carrier responded with status " + strconv.Itoa(e.Status)
}
