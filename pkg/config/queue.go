package config

import "time"

// QueueConfig contains code-generation queue and worker pool configuration.
// These values control how pending generation runs are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of generation runs being
	// processed across ALL replicas. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum time one generation run may take.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat before
	// it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       4,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// RetentionConfig controls background pruning of aged rows.
type RetentionConfig struct {
	// EndedSessionTTL is how long ended sessions are kept.
	EndedSessionTTL time.Duration `yaml:"ended_session_ttl"`

	// ActivityTTL is how long activity log entries are kept.
	ActivityTTL time.Duration `yaml:"activity_ttl"`

	// DeletedProjectTTL is how long soft-deleted projects are kept before
	// they are purged with everything they own.
	DeletedProjectTTL time.Duration `yaml:"deleted_project_ttl"`

	// SweepInterval is how often the cleanup service runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EndedSessionTTL:   90 * 24 * time.Hour,
		ActivityTTL:       180 * 24 * time.Hour,
		DeletedProjectTTL: 30 * 24 * time.Hour,
		SweepInterval:     1 * time.Hour,
	}
}

// MaskingConfig selects which pattern groups are applied to user utterances
// before they are embedded in LLM prompts.
type MaskingConfig struct {
	Enabled       bool     `yaml:"enabled"`
	PatternGroups []string `yaml:"pattern_groups"`
}
