package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SpecsmithYAMLConfig represents the complete specsmith.yaml file structure.
type SpecsmithYAMLConfig struct {
	Defaults  *Defaults        `yaml:"defaults"`
	Quality   *QualityConfig   `yaml:"quality"`
	Bias      *BiasConfig      `yaml:"bias"`
	Optimizer *OptimizerConfig `yaml:"optimizer"`
	NLU       *NLUConfig       `yaml:"nlu"`
	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`
	Masking   *MaskingConfig   `yaml:"masking"`
}

// LLMProvidersYAMLConfig represents the llm-providers.yaml file structure.
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load specsmith.yaml and llm-providers.yaml from configDir
//  2. Expand environment variables
//  3. Merge built-in defaults under user-defined values (user wins)
//  4. Build in-memory registries
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"bias_terms", stats.BiasKeywords,
		"costed_actions", stats.CostedPaths)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	userCfg, err := loader.loadSpecsmithYAML()
	if err != nil {
		return nil, NewLoadError("specsmith.yaml", err)
	}

	providers, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// Merge user configuration over the built-ins.
	merged := GetBuiltinConfig()
	if err := mergo.Merge(merged, userCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	return &Config{
		configDir:           configDir,
		Defaults:            merged.Defaults,
		Quality:             merged.Quality,
		Bias:                merged.Bias,
		Optimizer:           merged.Optimizer,
		NLU:                 merged.NLU,
		Queue:               merged.Queue,
		Retention:           merged.Retention,
		Masking:             merged.Masking,
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
	}, nil
}

type configLoader struct {
	configDir string
}

// loadSpecsmithYAML reads and parses specsmith.yaml. A missing file is not
// an error: built-in defaults apply.
func (l *configLoader) loadSpecsmithYAML() (*SpecsmithYAMLConfig, error) {
	path := filepath.Join(l.configDir, "specsmith.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("specsmith.yaml not found, using built-in defaults", "path", path)
			return &SpecsmithYAMLConfig{}, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg SpecsmithYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// loadLLMProvidersYAML reads and parses llm-providers.yaml (required).
func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	path := filepath.Join(l.configDir, "llm-providers.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg LLMProvidersYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return cfg.LLMProviders, nil
}
