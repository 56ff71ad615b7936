package config

// Defaults contains system-wide default configurations.
type Defaults struct {
	// LLM provider used when a component doesn't name one
	LLMProvider string `yaml:"llm_provider,omitempty"`
}
