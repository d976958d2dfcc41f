package metrics

import (
	"database/sql"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpdateDBStats mirrors a connection pool snapshot into the pool gauges
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.safeExecute("UpdateDBStats", func() {
		pool := []struct {
			gauge prometheus.Gauge
			value float64
		}{
			{m.DBConnectionsOpen, float64(stats.OpenConnections)},
			{m.DBConnectionsInUse, float64(stats.InUse)},
			{m.DBConnectionsIdle, float64(stats.Idle)},
			{m.DBConnectionsMax, float64(stats.MaxOpenConnections)},
			{m.DBConnectionWaitCount, float64(stats.WaitCount)},
			{m.DBConnectionWaitTime, stats.WaitDuration.Seconds()},
		}
		for _, p := range pool {
			p.gauge.Set(p.value)
		}
	})
}

// RecordDBQuery observes one statement. Failed statements also bump the
// error counter for the same operation and table.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		op := strings.ToLower(operation)
		if table == "" {
			table = "unknown"
		}
		m.DBQueryDuration.WithLabelValues(op, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(op, table).Inc()
		}
	})
}
