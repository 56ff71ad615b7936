// Package queue runs the code-generation worker pool: claiming pending
// GeneratedProject runs, heartbeating while they execute, and recovering
// runs orphaned by dead workers.
package queue

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/services"
)

// Generator produces the artifact files for one claimed run.
type Generator interface {
	Generate(ctx context.Context, run *ent.GeneratedProject) ([]services.GeneratedFileInput, error)
}

// heartbeatDivisor sets the heartbeat period relative to the orphan
// threshold, so a live worker can never be mistaken for a dead one.
const heartbeatDivisor = 3

// Pool claims and processes pending generation runs.
type Pool struct {
	cfg       *config.QueueConfig
	generated *services.GeneratedService
	generator Generator
	podID     string
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool creates a worker pool. podID identifies this replica in claims.
func NewPool(cfg *config.QueueConfig, generated *services.GeneratedService, generator Generator, podID string, logger *slog.Logger) *Pool {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		cfg:       cfg,
		generated: generated,
		generator: generator,
		podID:     podID,
		logger:    logger,
	}
}

// Start launches the workers and the orphan-recovery loop.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go func(worker int) {
			defer p.wg.Done()
			p.pollLoop(ctx, worker)
		}(i)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.orphanLoop(ctx)
	}()

	p.logger.Info("Generation worker pool started",
		"pod_id", p.podID,
		"workers", p.cfg.WorkerCount)
}

// Stop cancels polling and waits for active runs, bounded by the graceful
// shutdown timeout.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("Generation worker pool stopped", "pod_id", p.podID)
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		p.logger.Warn("Generation worker pool shutdown timed out",
			"pod_id", p.podID,
			"timeout", p.cfg.GracefulShutdownTimeout)
	}
}

func (p *Pool) pollLoop(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.pollInterval()):
		}

		// Capacity check is best-effort: racy between workers, but the
		// overshoot is bounded by WorkerCount and damped by poll jitter.
		if p.cfg.MaxConcurrentRuns > 0 {
			active, err := p.generated.CountInProgress(ctx)
			if err != nil {
				p.logger.Error("Failed to count active runs", "worker", worker, "error", err)
				continue
			}
			if active >= p.cfg.MaxConcurrentRuns {
				continue
			}
		}

		run, err := p.generated.ClaimNext(ctx, p.podID)
		if err != nil {
			p.logger.Error("Failed to claim run", "worker", worker, "error", err)
			continue
		}
		if run == nil {
			continue
		}

		p.logger.Info("Claimed generation run",
			"worker", worker,
			"run_id", run.ID,
			"project_id", run.ProjectID,
			"version", run.Version)
		p.process(ctx, run)
	}
}

// process executes one claimed run under the run timeout, heartbeating
// until it finishes.
func (p *Pool) process(ctx context.Context, run *ent.GeneratedProject) {
	runCtx, cancel := context.WithTimeout(ctx, p.cfg.RunTimeout)
	defer cancel()

	stopBeat := p.heartbeat(runCtx, run.ID)
	defer stopBeat()

	files, err := p.generator.Generate(runCtx, run)
	if err != nil {
		p.logger.Error("Generation run failed",
			"run_id", run.ID,
			"error", err)
		// The failure write uses the outer context; the run context may
		// already be expired.
		if failErr := p.generated.FailRun(ctx, run.ID, err.Error()); failErr != nil {
			p.logger.Error("Failed to mark run failed", "run_id", run.ID, "error", failErr)
		}
		return
	}

	if err := p.generated.CompleteRun(ctx, run.ID, files); err != nil {
		p.logger.Error("Failed to complete run", "run_id", run.ID, "error", err)
		return
	}
	p.logger.Info("Generation run completed",
		"run_id", run.ID,
		"files", len(files))
}

// heartbeat refreshes the run's liveness marker until the returned stop
// function is called.
func (p *Pool) heartbeat(ctx context.Context, runID string) func() {
	interval := p.cfg.OrphanThreshold / heartbeatDivisor
	if interval <= 0 {
		interval = time.Second
	}

	beatCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-beatCtx.Done():
				return
			case <-ticker.C:
				if err := p.generated.Heartbeat(beatCtx, runID); err != nil {
					p.logger.Warn("Heartbeat failed", "run_id", runID, "error", err)
				}
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

func (p *Pool) orphanLoop(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.generated.RecoverOrphans(ctx, p.cfg.OrphanThreshold)
			if err != nil {
				p.logger.Error("Orphan recovery failed", "error", err)
				continue
			}
			if n > 0 {
				p.logger.Warn("Requeued orphaned generation runs", "count", n)
			}
		}
	}
}

// pollInterval returns the base interval plus random jitter, so replicas do
// not poll in lockstep.
func (p *Pool) pollInterval() time.Duration {
	interval := p.cfg.PollInterval
	if p.cfg.PollIntervalJitter > 0 {
		interval += time.Duration(rand.Int63n(int64(p.cfg.PollIntervalJitter)))
	}
	return interval
}
