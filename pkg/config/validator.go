package config

import (
	"errors"
	"fmt"
	"regexp"
)

// validate checks the merged configuration for internal consistency.
// All problems are collected and returned together.
func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateQuality(cfg.Quality)...)
	errs = append(errs, validateBias(cfg.Bias)...)
	errs = append(errs, validateOptimizer(cfg.Optimizer)...)
	errs = append(errs, validateLLMProviders(cfg)...)

	if cfg.NLU != nil && cfg.NLU.HistorySize <= 0 {
		errs = append(errs, &ValidationError{
			Component: "nlu", ID: "history_size",
			Err: fmt.Errorf("%w: must be positive", ErrInvalidValue),
		})
	}
	if cfg.Queue != nil && cfg.Queue.WorkerCount <= 0 {
		errs = append(errs, &ValidationError{
			Component: "queue", ID: "worker_count",
			Err: fmt.Errorf("%w: must be positive", ErrInvalidValue),
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func validateQuality(q *QualityConfig) []error {
	var errs []error
	if q == nil {
		return []error{&ValidationError{Component: "quality", ID: "quality", Err: ErrMissingRequiredField}}
	}
	for phase, t := range q.PhaseThresholds {
		if t.MaturityThreshold < 0 || t.MaturityThreshold > 100 {
			errs = append(errs, &ValidationError{
				Component: "quality", ID: phase, Field: "maturity_threshold",
				Err: fmt.Errorf("%w: must be in [0,100]", ErrInvalidValue),
			})
		}
		if t.CategoryThreshold < 0 || t.CategoryThreshold > 100 {
			errs = append(errs, &ValidationError{
				Component: "quality", ID: phase, Field: "category_threshold",
				Err: fmt.Errorf("%w: must be in [0,100]", ErrInvalidValue),
			})
		}
	}
	if q.RegenerationCap < 0 {
		errs = append(errs, &ValidationError{
			Component: "quality", ID: "regeneration_cap",
			Err: fmt.Errorf("%w: must be non-negative", ErrInvalidValue),
		})
	}
	if q.MinQuestionScore < 0 || q.MinQuestionScore > 1 {
		errs = append(errs, &ValidationError{
			Component: "quality", ID: "min_question_score",
			Err: fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue),
		})
	}
	switch q.MergeResolvers {
	case "", "creator_or_editor", "any_member":
	default:
		errs = append(errs, &ValidationError{
			Component: "quality", ID: "merge_resolvers",
			Err: fmt.Errorf("%w: must be creator_or_editor or any_member", ErrInvalidValue),
		})
	}
	return errs
}

func validateBias(b *BiasConfig) []error {
	var errs []error
	if b == nil {
		return nil
	}
	for _, pattern := range b.LeadingPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			errs = append(errs, &ValidationError{
				Component: "bias", ID: pattern, Field: "leading_patterns",
				Err: fmt.Errorf("%w: %v", ErrInvalidValue, err),
			})
		}
	}
	return errs
}

func validateOptimizer(o *OptimizerConfig) []error {
	var errs []error
	if o == nil {
		return []error{&ValidationError{Component: "optimizer", ID: "optimizer", Err: ErrMissingRequiredField}}
	}
	for action, cost := range o.ImmediateCost {
		if cost < 0 {
			errs = append(errs, &ValidationError{
				Component: "optimizer", ID: action, Field: "immediate_cost",
				Err: fmt.Errorf("%w: must be non-negative", ErrInvalidValue),
			})
		}
	}
	if o.BlockRatio <= 0 {
		errs = append(errs, &ValidationError{
			Component: "optimizer", ID: "block_ratio",
			Err: fmt.Errorf("%w: must be positive", ErrInvalidValue),
		})
	}
	return errs
}

func validateLLMProviders(cfg *Config) []error {
	var errs []error
	if cfg.LLMProviderRegistry == nil || cfg.LLMProviderRegistry.Len() == 0 {
		return []error{&ValidationError{
			Component: "llm_provider", ID: "llm_providers",
			Err: fmt.Errorf("%w: at least one provider required", ErrMissingRequiredField),
		}}
	}
	if cfg.Defaults != nil && cfg.Defaults.LLMProvider != "" &&
		!cfg.LLMProviderRegistry.Has(cfg.Defaults.LLMProvider) {
		errs = append(errs, &ValidationError{
			Component: "defaults", ID: cfg.Defaults.LLMProvider, Field: "llm_provider",
			Err: ErrLLMProviderNotFound,
		})
	}
	return errs
}
