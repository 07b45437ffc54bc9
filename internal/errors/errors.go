// Package errors provides standardized error types for the apachemgr tool.
//
// The one distinguished failure in this tool is the unsupported
// distribution: every operation that branches on the distro family
// returns ErrUnsupportedDistro when no branch matches, and the CLI layer
// decides whether to abort. Everything else is either a benign
// idempotent no-op (module already enabled, site config absent) or an
// opaque collaborator failure wrapped with context.
//
// Use errors.Is for sentinel comparison:
//
//	if errors.Is(err, errors.ErrUnsupportedDistro) {
//	    // bail out, nothing this tool can do on this host
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeUnsupportedDistro ErrorCode = "UNSUPPORTED_DISTRO" // No branch for this distro family
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"          // Site or file not found
	ErrCodeValidation        ErrorCode = "VALIDATION"         // Input validation failed
	ErrCodePermission        ErrorCode = "PERMISSION"         // Permission denied
	ErrCodeConfig            ErrorCode = "CONFIG"             // Configuration error
	ErrCodePackage           ErrorCode = "PACKAGE"            // Package manager failure
	ErrCodeService           ErrorCode = "SERVICE"            // Service control failure
	ErrCodeInternal          ErrorCode = "INTERNAL"           // Internal/unexpected error
)

// Error represents a structured error with context about the operation.
type Error struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Site    string    // Site name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Site != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Site, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error, compared by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common scenarios. Use with errors.Is().
var (
	// ErrUnsupportedDistro indicates the host's distro family has no
	// Apache packaging support in this tool.
	ErrUnsupportedDistro = &Error{Code: ErrCodeUnsupportedDistro, Message: "distribution not supported"}

	// ErrSiteNotFound indicates the requested site config does not exist.
	ErrSiteNotFound = &Error{Code: ErrCodeNotFound, Message: "site not found"}

	// ErrInvalidSite indicates the site name is not valid.
	ErrInvalidSite = &Error{Code: ErrCodeValidation, Message: "invalid site name"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &Error{Code: ErrCodePermission, Message: "root privileges required"}

	// ErrConfigInvalid indicates the tool configuration is invalid.
	ErrConfigInvalid = &Error{Code: ErrCodeConfig, Message: "invalid configuration"}

	// ErrServiceUnresolved indicates a service operation was attempted
	// without a resolved service name.
	ErrServiceUnresolved = &Error{Code: ErrCodeService, Message: "service name unresolved"}
)

// UnsupportedDistro creates an unsupported-distribution error naming the family.
func UnsupportedDistro(family string) error {
	return &Error{
		Code:    ErrCodeUnsupportedDistro,
		Message: fmt.Sprintf("distribution not supported: %s", family),
	}
}

// NotFound creates an error for a site that doesn't exist.
func NotFound(site string) error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "site not found",
		Site:    site,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &Error{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapSite creates an error with site context and underlying error.
func WrapSite(code ErrorCode, site, msg string, err error) error {
	return &Error{
		Code:    code,
		Message: msg,
		Site:    site,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
