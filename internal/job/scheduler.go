package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Collector refreshes a set of metrics
type Collector interface {
	Collect(ctx context.Context)
}

// MetricsSnapshotJob refreshes the board, column and task gauges
type MetricsSnapshotJob struct {
	collector Collector
	timeout   time.Duration
	logger    *zap.Logger
}

// NewMetricsSnapshotJob creates a new MetricsSnapshotJob instance
func NewMetricsSnapshotJob(collector Collector, logger *zap.Logger) *MetricsSnapshotJob {
	return &MetricsSnapshotJob{
		collector: collector,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

// Run executes the job once. It satisfies cron.Job.
func (j *MetricsSnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.collector.Collect(ctx)
	j.logger.Debug("Business metrics snapshot completed", zap.Duration("duration", time.Since(start)))
}

// Scheduler runs background jobs on cron schedules
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a scheduler that evaluates schedules in UTC.
// Overlapping runs of the same job are skipped.
func NewScheduler(logger *zap.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		),
	)
	return &Scheduler{cron: c, logger: logger}
}

// Register adds job under a standard cron spec or a descriptor such as
// "@every 1m"
func (s *Scheduler) Register(name, spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", name, spec, err)
	}
	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("schedule", spec))
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx ends
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stopped before running jobs finished")
	}
}

// Len returns the number of registered jobs
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}
