package paystack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSecretKey   = errors.New("paystack: secret key is required")
	ErrEmptyMethod        = errors.New("paystack: empty HTTP method")
	ErrNoResponse         = errors.New("paystack: no response, nothing has been dispatched")
	ErrVerificationFailed = errors.New("paystack: transaction verification failed")
	ErrNoAuthorizationURL = errors.New("paystack: no authorization URL to redirect to")
	ErrInvalidPayload     = errors.New("paystack: invalid payload")
)

// ConfigError is returned before any network call when the client or a
// request is misconfigured.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// APIError is returned when the gateway answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("paystack: api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("paystack: api error (status %d): %s", e.StatusCode, string(e.Body))
}

// VerificationError carries the gateway message of a transaction that did
// not verify.
type VerificationError struct {
	Reference string
	Message   string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("paystack: invalid transaction reference %q: %s", e.Reference, e.Message)
}

func (e *VerificationError) Unwrap() error { return ErrVerificationFailed }

// ValidationError lists the required payload fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "paystack: missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidPayload }
