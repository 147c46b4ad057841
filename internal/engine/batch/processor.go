package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Default batch processing configuration.
const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 64

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 1000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// BatchCallback processes a single batch of items. offset is the index of
// batch[0] within the full input, so callbacks can write results in place.
//
//nolint:revive // BatchCallback is the canonical name for this exported type.
type BatchCallback[T any] func(ctx context.Context, batch []T, batchIndex, offset int) error

// ProgressCallback is an optional callback invoked after each batch is processed.
type ProgressCallback func(progress *Progress)

// Processor splits a slice into fixed-size batches and hands each one to a
// callback, either sequentially or across a bounded worker group.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback

	// mu serializes progress callbacks from concurrent workers.
	mu sync.Mutex
}

// NewProcessor creates a new batch processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}

	return &Processor[T]{
		batchSize: batchSize,
	}, nil
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// Process processes items in batches using the provided callback.
// Processing is sequential and stops on the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback BatchCallback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	for batchIndex, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := callback(ctx, items[b[0]:b[1]], batchIndex, b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", batchIndex, err)
		}
		p.report(progress, b[1]-b[0])
	}

	return nil
}

// ProcessConcurrent processes batches on at most maxConcurrency goroutines.
// A failing batch does not stop the others; all batch errors are joined.
// Cancelling ctx stops batches that have not started yet.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback BatchCallback[T],
	maxConcurrency int,
) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	var errMu sync.Mutex
	var errs []error

	for batchIndex, b := range bounds {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := callback(gCtx, items[b[0]:b[1]], batchIndex, b[0]); err != nil {
				errMu.Lock()
				errs = append(errs, fmt.Errorf("batch %d failed: %w", batchIndex, err))
				errMu.Unlock()
				return nil
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("batch processing failed: %d errors occurred: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// GetBatchSize returns the configured batch size.
func (p *Processor[T]) GetBatchSize() int {
	return p.batchSize
}

// CalculateBatches returns the [start, end) index pairs for totalItems.
func (p *Processor[T]) CalculateBatches(totalItems int) [][2]int {
	totalBatches := (totalItems + p.batchSize - 1) / p.batchSize
	batches := make([][2]int, totalBatches)

	for i := range totalBatches {
		start := i * p.batchSize
		batches[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}

	return batches
}

func (p *Processor[T]) report(progress *Progress, itemsProcessed int) {
	progress.AddProcessed(itemsProcessed)
	if p.onProgress == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onProgress(progress)
}
