package config

import (
	"fmt"
	"sync"
	"time"
)

// LLMProviderConfig defines one completion-endpoint configuration used by
// the gateway. The provider itself is opaque; only call policy lives here.
type LLMProviderConfig struct {
	// Model name sent on every request (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable holding the API key (resolved by the sidecar)
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Default completion budget when the caller does not specify one
	MaxTokensDefault int `yaml:"max_tokens_default,omitempty"`

	// Per-call timeout in milliseconds
	TimeoutMS int `yaml:"timeout_ms,omitempty"`

	// Retry policy for rate-limited / unavailable responses
	RetryMax    int `yaml:"retry_max,omitempty"`
	RetryBaseMS int `yaml:"retry_base_ms,omitempty"`
}

// Timeout returns the per-call timeout as a duration.
func (c *LLMProviderConfig) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// RetryBase returns the base backoff interval.
func (c *LLMProviderConfig) RetryBase() time.Duration {
	if c.RetryBaseMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.RetryBaseMS) * time.Millisecond
}

// Retries returns the retry cap (total tries, including the first).
func (c *LLMProviderConfig) Retries() int {
	if c.RetryMax <= 0 {
		return 3
	}
	return c.RetryMax
}

// LLMProviderRegistry stores LLM provider configurations in memory with
// thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

// Get retrieves an LLM provider configuration by name (thread-safe).
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// Has checks if an LLM provider exists in the registry (thread-safe).
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe).
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
