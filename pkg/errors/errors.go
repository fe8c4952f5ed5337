package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Network errors
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeConnection ErrorType = "connection"

	// Authentication errors
	ErrorTypeAuth           ErrorType = "auth"
	ErrorTypeUnauthorized   ErrorType = "unauthorized"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeSessionExpired ErrorType = "session_expired"

	// Validation errors
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeInvalidFormat ErrorType = "invalid_format"

	// Server errors
	ErrorTypeServer    ErrorType = "server"
	ErrorTypeNotFound  ErrorType = "not_found"
	ErrorTypeConflict  ErrorType = "conflict"
	ErrorTypeRateLimit ErrorType = "rate_limit"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// GenericMessage is shown when the server gave no machine-readable error name.
const GenericMessage = "Something went wrong. Please try again."

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
	RetryAfter int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NetworkError creates a network error
func NetworkError(message string) *CLIError {
	err := NewCLIError(ErrorTypeNetwork, message, nil)
	err.Suggestion = "Check your internet connection and try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError() *CLIError {
	err := NewCLIError(ErrorTypeTimeout, "Request timed out", nil)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// AuthError creates an authentication error
func AuthError(message string) *CLIError {
	err := NewCLIError(ErrorTypeAuth, message, nil)
	err.Suggestion = "Try logging in again with 'onesocial auth login'"
	return err
}

// SessionExpiredError creates a session expired error
func SessionExpiredError() *CLIError {
	err := NewCLIError(ErrorTypeSessionExpired, "Your session has expired", nil)
	err.Suggestion = "Run 'onesocial auth login' to refresh your session."
	return err
}

// UnauthorizedError creates an unauthorized error
func UnauthorizedError() *CLIError {
	err := NewCLIError(ErrorTypeUnauthorized, "You need to be logged in to do that", nil)
	err.Suggestion = "Run 'onesocial auth login' first."
	return err
}

// ForbiddenError creates a forbidden error
func ForbiddenError() *CLIError {
	err := NewCLIError(ErrorTypeForbidden, "Access denied", nil)
	err.Suggestion = "Only the author or an administrator can do this."
	return err
}

// ValidationError creates a validation error
func ValidationError(field, reason string) *CLIError {
	message := fmt.Sprintf("Validation error: %s - %s", field, reason)
	return NewCLIError(ErrorTypeValidation, message, nil)
}

// ServerError creates a server error
func ServerError() *CLIError {
	err := NewCLIError(ErrorTypeServer, "Server error", nil)
	err.Suggestion = "The server encountered an error. Try again in a few moments."
	return err
}

// NotFoundError creates a not found error
func NotFoundError(resourceType, identifier string) *CLIError {
	return NewCLIError(ErrorTypeNotFound,
		fmt.Sprintf("%s not found: %s", resourceType, identifier),
		nil)
}

// RateLimitError creates a rate limit error
func RateLimitError(retryAfter int) *CLIError {
	err := NewCLIError(ErrorTypeRateLimit,
		"Rate limit exceeded. Too many requests.",
		nil)
	err.RetryAfter = retryAfter
	err.Suggestion = fmt.Sprintf("Please wait %d seconds before trying again.", retryAfter)
	return err
}

// ConflictError creates a conflict error
func ConflictError(message string) *CLIError {
	err := NewCLIError(ErrorTypeConflict, message, nil)
	err.Suggestion = "This resource already exists. Try a different name or identifier."
	return err
}

// namedError is satisfied by API errors that carry the server's
// machine-readable error name.
type namedError interface {
	error
	ErrorName() string
	HTTPStatus() int
}

// IsNetwork reports whether err is a transport failure rather than an
// answer from the server.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	var ne namedError
	if errors.As(err, &ne) {
		return false
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == ErrorTypeNetwork || cliErr.Type == ErrorTypeTimeout ||
			cliErr.Type == ErrorTypeConnection
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "connection refused")
}

// CategorizeError converts a standard error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var ne namedError
	if errors.As(err, &ne) {
		return categorizeStatus(ne)
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "connection refused"):
		return NetworkError("Could not connect to server. Make sure it's running.")
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(errMsg, "timeout"),
		strings.Contains(errMsg, "context deadline exceeded"):
		return TimeoutError()
	case IsNetwork(err):
		return NetworkError("Network request failed")
	default:
		return NewCLIError(ErrorTypeUnknown, errMsg, err)
	}
}

func categorizeStatus(ne namedError) *CLIError {
	message := UserMessage(ne)
	var out *CLIError

	switch status := ne.HTTPStatus(); {
	case status == 401:
		out = AuthError(message)
	case status == 403:
		out = ForbiddenError()
		out.Message = message
	case status == 404:
		out = NewCLIError(ErrorTypeNotFound, message, nil)
	case status == 409:
		out = ConflictError(message)
	case status == 422 || status == 400:
		out = NewCLIError(ErrorTypeValidation, message, nil)
	case status == 429:
		out = RateLimitError(60)
	case status >= 500:
		out = ServerError()
		out.Message = message
	default:
		out = NewCLIError(ErrorTypeUnknown, message, nil)
	}

	out.Cause = ne
	out.StatusCode = ne.HTTPStatus()
	return out
}

// FormatError returns a user-friendly error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Message)
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	if cliErr.Type == ErrorTypeRateLimit && cliErr.RetryAfter > 0 {
		sb.WriteString(fmt.Sprintf("\nRetry in: %d seconds\n", cliErr.RetryAfter))
	}

	return sb.String()
}
