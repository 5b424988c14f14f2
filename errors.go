// FILE: lixenwraith/params/errors.go
package params

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBadParam is matched by every coercion failure of a present parameter
	ErrBadParam = errors.New("bad request parameter")
	// ErrMissingParam is returned by Required accessors for absent parameters
	ErrMissingParam = errors.New("missing required parameter")
	// ErrReadOnly is returned when writing through an Entry
	ErrReadOnly = errors.New("params are read-only")
	// ErrInvalidBool is the cause for values ParseBool does not accept
	ErrInvalidBool = errors.New("invalid boolean value")
	// ErrParse is returned by ParseQuery for malformed query strings
	ErrParse = errors.New("malformed query string")
	// ErrFileNotFound indicates a params file that does not exist (not fatal for Builder)
	ErrFileNotFound = errors.New("params file not found")
	// ErrUnknownFormat indicates a params file whose format could not be determined
	ErrUnknownFormat = errors.New("unable to determine params format")
)

// ParamError reports a present parameter whose value does not parse as the requested type.
// It matches both ErrBadParam and the underlying cause with errors.Is.
type ParamError struct {
	Name  string // Parameter name actually read, "f.<field>.<param>" for field overrides
	Value string // Raw value
	Kind  string // Target type: bool, int, int64, float32, float64
	Err   error  // Parse cause
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s value %q for parameter '%s': %v", e.Kind, e.Value, e.Name, e.Err)
}

func (e *ParamError) Unwrap() []error {
	return []error{ErrBadParam, e.Err}
}

// StatusCode classifies the error as a client error
func (e *ParamError) StatusCode() int {
	return http.StatusBadRequest
}

// MissingError reports an absent parameter requested through Required.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

func (e *MissingError) Unwrap() error {
	return ErrMissingParam
}

// StatusCode classifies the error as a client error
func (e *MissingError) StatusCode() int {
	return http.StatusBadRequest
}
