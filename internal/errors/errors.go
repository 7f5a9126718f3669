// Package errors provides standardized error types for the phpdbg CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// ConfigError is the primary error type, containing:
//   - Code: Categorizes the error (INI_NOT_FOUND, INI_NOT_WRITABLE, etc.)
//   - Message: Human-readable error description
//   - Extension: The extension name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrIniNotFound    // no php.ini path resolvable
//	errors.ErrIniNotWritable // php.ini lacks write permission
//	errors.ErrUnknownName    // registry lookup miss
//
// # Usage
//
// Creating domain-specific errors:
//
//	// php.ini could not be located
//	return errors.IniNotFound("xdebug")
//
//	// Wrapping an underlying I/O error
//	return errors.Wrap(errors.ErrCodeIniRead, "failed to read php.ini", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrIniNotFound) {
//	    // Handle missing php.ini
//	}
//
// Use errors.As for type assertion:
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("Error code: %s, Extension: %s\n", cfgErr.Code, cfgErr.Extension)
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
	ErrCodeIniNotFound    ErrorCode = "INI_NOT_FOUND"    // No php.ini path resolvable
	ErrCodeIniNotWritable ErrorCode = "INI_NOT_WRITABLE" // php.ini lacks write permission
	ErrCodeIniRead        ErrorCode = "INI_READ"         // I/O error reading php.ini
	ErrCodeIniWrite       ErrorCode = "INI_WRITE"        // I/O error writing php.ini
	ErrCodeUnknownName    ErrorCode = "UNKNOWN_NAME"     // Registry lookup miss
	ErrCodeInstall        ErrorCode = "INSTALL"          // Extension installation failed
	ErrCodeValidation     ErrorCode = "VALIDATION"       // Input validation failed
	ErrCodeInternal       ErrorCode = "INTERNAL"         // Internal/unexpected error
)

// ConfigError represents a structured error with context about the operation.
type ConfigError struct {
	Code      ErrorCode // Error category
	Message   string    // Human-readable message
	Extension string    // Extension name (if applicable)
	Err       error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Extension != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Extension, e.Message, e.Err)
	}
	if e.Extension != "" {
		return fmt.Sprintf("%s: %s", e.Extension, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrIniNotFound indicates no php.ini path could be resolved.
	ErrIniNotFound = &ConfigError{Code: ErrCodeIniNotFound, Message: "php.ini not found"}

	// ErrIniNotWritable indicates the php.ini file lacks write permission.
	ErrIniNotWritable = &ConfigError{Code: ErrCodeIniNotWritable, Message: "php.ini is not writable"}

	// ErrIniRead indicates an I/O error while reading php.ini.
	ErrIniRead = &ConfigError{Code: ErrCodeIniRead, Message: "failed to read php.ini"}

	// ErrIniWrite indicates an I/O error while writing php.ini.
	ErrIniWrite = &ConfigError{Code: ErrCodeIniWrite, Message: "failed to write php.ini"}

	// ErrUnknownName indicates the requested driver or integrator is not registered.
	ErrUnknownName = &ConfigError{Code: ErrCodeUnknownName, Message: "unknown name"}

	// ErrInstallFailed indicates the extension install command failed.
	ErrInstallFailed = &ConfigError{Code: ErrCodeInstall, Message: "installation failed"}
)

// IniNotFound creates an error for an unresolvable php.ini path.
func IniNotFound(extension string) error {
	return &ConfigError{
		Code:      ErrCodeIniNotFound,
		Message:   "php.ini not found",
		Extension: extension,
	}
}

// IniNotWritable creates an error for a php.ini that cannot be written.
func IniNotWritable(path string, err error) error {
	return &ConfigError{
		Code:    ErrCodeIniNotWritable,
		Message: fmt.Sprintf("php.ini is not writable: %s", path),
		Err:     err,
	}
}

// UnknownName creates an error for a registry miss, listing what is registered.
func UnknownName(name string, registered []string) error {
	return &ConfigError{
		Code:      ErrCodeUnknownName,
		Message:   fmt.Sprintf("unknown name %q (registered: %v)", name, registered),
		Extension: name,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &ConfigError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapExtension creates an error with extension context and underlying error.
func WrapExtension(code ErrorCode, extension string, msg string, err error) error {
	return &ConfigError{
		Code:      code,
		Message:   msg,
		Extension: extension,
		Err:       err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
