package ai

import "fmt"

// ProviderError wraps any failure of the remote generation call: transport,
// authentication, quota, timeout, or an empty completion. The relay boundary
// converts it into a degraded reply; it never surfaces as a server error.
type ProviderError struct {
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("generation provider: %v", e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
