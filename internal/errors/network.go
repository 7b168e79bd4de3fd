package errors

import (
	"fmt"
)

// Network-related error constructors.

// NetworkUnavailable creates an error for connectivity issues with the image service.
func NetworkUnavailable(host string, cause error) *Error {
	err := &Error{
		Kind:    ErrNetwork,
		Message: "image service unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify internet connectivity
  2. Check if VPN or firewall is blocking access
  3. Try: curl -I https://cataas.com

To use a different endpoint set api.base_url in ~/.catsays/config.yaml
or export CATSAYS_API_BASE_URL.`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// BadStatus creates an error for a non-success HTTP status from the image service.
func BadStatus(host string, status int) *Error {
	return &Error{
		Kind:    ErrNetwork,
		Message: fmt.Sprintf("image service returned status %d", status),
		Details: map[string]string{
			"host":   host,
			"status": fmt.Sprintf("%d", status),
		},
		Suggestion: "The service may be temporarily down. Try again in a moment.",
	}
}

// MalformedResponse creates an error for a response body that could not be used.
func MalformedResponse(detail string, cause error) *Error {
	return &Error{
		Kind:       ErrMalformedResponse,
		Message:    fmt.Sprintf("unexpected response from image service: %s", detail),
		Cause:      cause,
		Suggestion: "The image service API may have changed. Check api.base_url points at a cataas-compatible service.",
	}
}

// ContextCancelled creates an error for cancelled or timed out operations.
func ContextCancelled(operation string, cause error) *Error {
	return &Error{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s was cancelled", operation),
		Cause:   cause,
		Details: map[string]string{
			"operation": operation,
		},
		Suggestion: "Increase api.timeout in ~/.catsays/config.yaml if the service is slow.",
	}
}

// Helper functions for error detection.

// IsRetryable returns true if the error is likely transient and retrying may succeed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var e *Error
	if As(err, &e) {
		switch e.Kind {
		case ErrNetwork, ErrTimeout:
			return true
		default:
			return false
		}
	}
	return false
}

// IsUserError returns true if the error is due to user input or misconfiguration.
func IsUserError(err error) bool {
	var e *Error
	if As(err, &e) {
		switch e.Kind {
		case ErrConfig, ErrValidation:
			return true
		default:
			return false
		}
	}
	return false
}
