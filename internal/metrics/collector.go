package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the board, column and task gauges from
// the database. It is driven by the job scheduler.
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	timeout time.Duration
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Collect counts boards, columns and tasks and updates the matching gauges.
// A failed count leaves its gauge untouched.
func (c *BusinessMetricsCollector) Collect(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	gauges := []struct {
		table string
		set   func(int64)
	}{
		{"boards", c.metrics.SetBoardsTotal},
		{"columns", c.metrics.SetColumnsTotal},
		{"tasks", c.metrics.SetTasksTotal},
	}

	for _, g := range gauges {
		var count int64
		if err := c.db.WithContext(ctx).Table(g.table).Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows", zap.String("table", g.table), zap.Error(err))
			continue
		}
		g.set(count)
	}
}
