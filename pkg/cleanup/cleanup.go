// Package cleanup prunes aged rows from the work store on a fixed interval:
// ended sessions past their TTL, old activity entries, and soft-deleted
// projects due for purging. Dependent rows go with their owner via the
// schema's cascades.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/activitylog"
	"github.com/specsmith/specsmith/ent/project"
	"github.com/specsmith/specsmith/ent/session"
	"github.com/specsmith/specsmith/pkg/config"
)

// SweepResult reports what one sweep removed.
type SweepResult struct {
	EndedSessions   int
	ActivityEntries int
	PurgedProjects  int
}

// Service runs the retention sweeps.
type Service struct {
	client *ent.Client
	cfg    *config.RetentionConfig
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a cleanup service.
func NewService(client *ent.Client, cfg *config.RetentionConfig, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Start begins periodic sweeping.
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				result, err := s.SweepOnce(ctx)
				if err != nil {
					s.logger.Error("Retention sweep failed", "error", err)
					continue
				}
				if result.EndedSessions+result.ActivityEntries+result.PurgedProjects > 0 {
					s.logger.Info("Retention sweep completed",
						"ended_sessions", result.EndedSessions,
						"activity_entries", result.ActivityEntries,
						"purged_projects", result.PurgedProjects)
				}
			}
		}
	}()
}

// Stop halts sweeping and waits for an in-flight sweep.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// SweepOnce applies all retention policies once.
func (s *Service) SweepOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	now := time.Now()

	n, err := s.client.Session.Delete().
		Where(
			session.StatusEQ(session.StatusEnded),
			session.EndedAtNotNil(),
			session.EndedAtLT(now.Add(-s.cfg.EndedSessionTTL)),
		).
		Exec(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to prune ended sessions: %w", err)
	}
	result.EndedSessions = n

	n, err = s.client.ActivityLog.Delete().
		Where(activitylog.CreatedAtLT(now.Add(-s.cfg.ActivityTTL))).
		Exec(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to prune activity log: %w", err)
	}
	result.ActivityEntries = n

	n, err = s.client.Project.Delete().
		Where(
			project.DeletedAtNotNil(),
			project.DeletedAtLT(now.Add(-s.cfg.DeletedProjectTTL)),
		).
		Exec(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to purge deleted projects: %w", err)
	}
	result.PurgedProjects = n

	return result, nil
}
