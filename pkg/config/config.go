package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Quality gate thresholds, bias detection, and optimizer cost tables
	Quality   *QualityConfig
	Bias      *BiasConfig
	Optimizer *OptimizerConfig

	// NLU conversation buffer settings
	NLU *NLUConfig

	// Code generation queue and worker pool
	Queue *QueueConfig

	// Data retention
	Retention *RetentionConfig

	// Prompt masking pattern groups
	Masking *MaskingConfig

	// LLM provider registry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	LLMProviders int
	BiasKeywords int
	CostedPaths  int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.Bias != nil {
		s.BiasKeywords = len(c.Bias.Keywords) + len(c.Bias.ProductDenylist)
	}
	if c.Optimizer != nil {
		s.CostedPaths = len(c.Optimizer.ImmediateCost)
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// DefaultLLMProvider resolves the provider named in defaults.
func (c *Config) DefaultLLMProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.LLMProvider)
}
