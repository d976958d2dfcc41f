package database

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

type registerFunc func(name string, fn func(*gorm.DB)) error

// RegisterMetricsCallbacks times every select, insert, update and delete
// issued through db and reports it to recorder
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	hooks := []struct {
		operation string
		before    registerFunc
		after     registerFunc
	}{
		{
			operation: "select",
			before:    func(n string, fn func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(n, fn) },
			after:     func(n string, fn func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(n, fn) },
		},
		{
			operation: "insert",
			before:    func(n string, fn func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(n, fn) },
			after:     func(n string, fn func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(n, fn) },
		},
		{
			operation: "update",
			before:    func(n string, fn func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(n, fn) },
			after:     func(n string, fn func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(n, fn) },
		},
		{
			operation: "delete",
			before:    func(n string, fn func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(n, fn) },
			after:     func(n string, fn func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(n, fn) },
		},
	}

	for _, h := range hooks {
		operation := h.operation
		if err := h.before("metrics:"+operation+"_before", markStart); err != nil {
			return fmt.Errorf("failed to register %s metrics callback: %w", operation, err)
		}
		if err := h.after("metrics:"+operation+"_after", func(tx *gorm.DB) {
			observe(tx, operation, recorder)
		}); err != nil {
			return fmt.Errorf("failed to register %s metrics callback: %w", operation, err)
		}
	}
	return nil
}

func markStart(tx *gorm.DB) {
	tx.InstanceSet(startTimeKey, time.Now())
}

func observe(tx *gorm.DB, operation string, recorder MetricsRecorder) {
	start, ok := tx.InstanceGet(startTimeKey)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	recorder.RecordDBQuery(operation, table, time.Since(start.(time.Time)), tx.Error)
}

// StartDBStatsCollector polls connection pool stats every interval until the
// returned channel is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
