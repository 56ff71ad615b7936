package llm

import "errors"

// Gateway error taxonomy. Only ErrRateLimited and ErrUnavailable are
// retryable; provider 4xx failures never are.
var (
	// ErrTimeout indicates the per-call deadline elapsed.
	ErrTimeout = errors.New("llm timeout")

	// ErrRateLimited indicates the provider throttled the call (retryable).
	ErrRateLimited = errors.New("llm rate limited")

	// ErrInvalidResponse indicates the response did not match the requested
	// schema after the single parse-repair pass.
	ErrInvalidResponse = errors.New("llm invalid response")

	// ErrProviderError indicates a non-retryable provider rejection (4xx).
	ErrProviderError = errors.New("llm provider error")

	// ErrUnavailable indicates retries were exhausted on 5xx/timeout.
	ErrUnavailable = errors.New("llm unavailable")
)

// IsRetryable reports whether the gateway may retry after err.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout)
}
