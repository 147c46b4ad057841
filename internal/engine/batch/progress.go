package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress tracks how many items and batches have been processed.
// All methods are safe for concurrent use.
type Progress struct {
	totalItems       int
	processedItems   int
	totalBatches     int
	processedBatches int
	batchSize        int
	startTime        time.Time
	lastUpdateTime   time.Time

	mu sync.RWMutex
}

// ProgressSnapshot is an immutable copy of a Progress.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	PercentComplete  float64
	ElapsedTime      time.Duration
	ItemsPerSecond   float64
}

// NewProgress creates a new progress tracker.
func NewProgress(totalItems, totalBatches, batchSize int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:     totalItems,
		totalBatches:   totalBatches,
		batchSize:      batchSize,
		startTime:      now,
		lastUpdateTime: now,
	}
}

// AddProcessed records one finished batch of itemsProcessed items.
func (p *Progress) AddProcessed(itemsProcessed int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += itemsProcessed
	p.processedBatches++
	p.lastUpdateTime = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentComplete()
}

// IsComplete reports whether every item has been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processedItems >= p.totalItems
}

// Snapshot returns a consistent copy of the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	elapsed := time.Since(p.startTime)
	var rate float64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(p.processedItems) / secs
	}

	return ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		BatchSize:        p.batchSize,
		PercentComplete:  p.percentComplete(),
		ElapsedTime:      elapsed,
		ItemsPerSecond:   rate,
	}
}

// percentComplete must be called with the lock held.
func (p *Progress) percentComplete() float64 {
	if p.totalItems == 0 {
		return 0
	}
	return float64(p.processedItems) / float64(p.totalItems) * percentMultiplier
}
