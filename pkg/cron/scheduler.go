// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ahernandezc/bdpr-api/pkg/storage"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron   *cron.Cron
	files  storage.Storage
	maxAge time.Duration
	logger *slog.Logger
}

// NewScheduler creates a new job scheduler over the export artifact store.
func NewScheduler(files storage.Storage, maxAge time.Duration, logger *slog.Logger) *Scheduler {
	// Standard 5-field cron format, no seconds.
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:   c,
		files:  files,
		maxAge: maxAge,
		logger: logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	// Export artifact purge: runs daily at 3:00 AM
	_, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredArtifacts)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the artifact purge (for testing/admin).
func (s *Scheduler) RunNow() {
	s.purgeExpiredArtifacts()
}

// purgeExpiredArtifacts removes export files older than maxAge.
func (s *Scheduler) purgeExpiredArtifacts() {
	files, err := s.files.List()
	if err != nil {
		s.logger.Error("failed to list export artifacts", slog.Any("error", err))
		return
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, f := range files {
		if f.ModTime.After(cutoff) {
			continue
		}
		if err := s.files.Remove(f.Name); err != nil {
			s.logger.Warn("failed to remove export artifact",
				slog.String("artifact", f.Name),
				slog.Any("error", err),
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("purged expired export artifacts", slog.Int("removed", removed))
	}
}
