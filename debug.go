package animated

import "time"

// debugStats holds per-frame timing metrics.
// Only populated when Manager.debug is true.
type debugStats struct {
	stepTime  time.Duration
	flushTime time.Duration
	stepped   int
	flushed   int
	tracked   int
}

// debugLog logs the frame stats at debug level.
func (m *Manager) debugLog(timestamp float64, stats debugStats) {
	if !m.debug {
		return
	}
	logger().Debug("animated: frame",
		"timestamp", timestamp,
		"step", stats.stepTime,
		"flush", stats.flushTime,
		"total", stats.stepTime+stats.flushTime,
		"stepped", stats.stepped,
		"flushed", stats.flushed,
		"tracked", stats.tracked)
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n Node, count int) {
	if count > debugMaxChildCount {
		logger().Warn("animated: node has too many children",
			"kind", kindOf(n), "children", count, "threshold", debugMaxChildCount)
	}
}
