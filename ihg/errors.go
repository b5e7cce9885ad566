package ihg

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidInput indicates a missing or malformed argument. It is
	// returned before any request is made.
	ErrInvalidInput = errors.New("ihg: invalid input")
	// ErrInvalidHotelCode indicates the hotel mnemonic does not resolve upstream
	ErrInvalidHotelCode = errors.New("ihg: unknown or invalid hotel code")
	// ErrNoAvailability indicates the search executed but nothing matched
	ErrNoAvailability = errors.New("ihg: no availability for the requested stay")
)

// ValidationError describes a rejected input argument.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes ValidationError match ErrInvalidInput via errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// UpstreamError carries an error reported by the IHG API verbatim.
type UpstreamError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("ihg API error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("ihg API error: %s", e.Message)
}

// Error codes reported in the structured error list of POST endpoints.
const (
	codeInvalidHotelMnemonic = "INVALID_HOTEL_MNEMONIC"
	codeRateNotAvailable     = "RATE_CODE_NOT_AVAILABLE"
	codeNoAvailability       = "NO_AVAILABILITY"
)

// apiError is one entry of the upstream error list.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decodeAPIErrors extracts the structured error list from a non-2xx body.
// Bodies that are not the expected shape yield an empty list.
func decodeAPIErrors(body []byte) []apiError {
	var resp struct {
		Errors []apiError `json:"errors"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	return resp.Errors
}

// mapAPIErrors translates the upstream error list into a domain error.
// Known codes become sentinel errors; anything else forwards the first
// reported message verbatim.
func mapAPIErrors(errs []apiError) error {
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		switch e.Code {
		case codeInvalidHotelMnemonic:
			return ErrInvalidHotelCode
		case codeRateNotAvailable, codeNoAvailability:
			return ErrNoAvailability
		}
	}
	first := errs[0]
	return &UpstreamError{Code: first.Code, Message: first.Message}
}
