package metrics

import "time"

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// RecordTaskMove counts a committed task move; kind is MoveWithin or MoveAcross
func (m *Metrics) RecordTaskMove(kind string) {
	m.safeExecute("RecordTaskMove", func() {
		m.TaskMovesTotal.WithLabelValues(kind).Inc()
	})
}

// RecordColumnMove counts a committed column move
func (m *Metrics) RecordColumnMove() {
	m.safeExecute("RecordColumnMove", func() {
		m.ColumnMovesTotal.Inc()
	})
}

// RecordLockWait observes how long a board lock acquisition took.
// timedOut marks acquisitions that failed.
func (m *Metrics) RecordLockWait(d time.Duration, timedOut bool) {
	m.safeExecute("RecordLockWait", func() {
		m.LockWaitDuration.Observe(d.Seconds())
		if timedOut {
			m.LockTimeouts.Inc()
		}
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetColumnsTotal sets total columns gauge
func (m *Metrics) SetColumnsTotal(count int64) {
	m.safeExecute("SetColumnsTotal", func() {
		m.ColumnsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
