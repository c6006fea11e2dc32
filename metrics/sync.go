package metrics

import "sync/atomic"

// SyncMetrics — счётчики синхронизации коллекций панели.
type SyncMetrics struct {
	RefreshCount    atomic.Int32
	MutationCount   atomic.Int32
	ErroredRequests atomic.Int32
	StaleDiscarded  atomic.Int32
}
