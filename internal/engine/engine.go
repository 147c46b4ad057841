package engine

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/rshade/uconv/internal/engine/batch"
	"github.com/rshade/uconv/internal/logging"
	"github.com/rshade/uconv/internal/units"
)

// Engine wires parsing, storage remapping, conversion and formatting together.
// It holds no conversion state and is safe for concurrent use.
type Engine struct {
	concurrency int
	batchSize   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency bounds the number of goroutines ConvertBatch uses.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithBatchSize sets how many requests each ConvertBatch worker takes at a
// time. Values outside the processor's limits make ConvertBatch fail.
func WithBatchSize(n int) Option {
	return func(e *Engine) {
		e.batchSize = n
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{concurrency: runtime.NumCPU(), batchSize: batch.DefaultBatchSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convert parses both unit expressions, optionally remaps decimal storage
// units to binary ones, converts the value and renders it. Unit errors are
// returned unwrapped so callers can show them verbatim.
func (e *Engine) Convert(ctx context.Context, req Request) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "convert").
		Float64("value", req.Value).
		Str("from", req.From).
		Str("to", req.To).
		Msg("starting conversion")

	result, err := convert(req)
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "convert").
			Err(err).
			Msg("conversion failed")
		return nil, err
	}

	if result.Remapped {
		log.Info().
			Ctx(ctx).
			Str("component", "engine").
			Str("from", result.From).
			Str("to", result.To).
			Msg("decimal storage units read as binary")
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "convert").
		Float64("result", result.Value).
		Int64(logging.FieldDuration, time.Since(start).Milliseconds()).
		Msg("conversion complete")

	return result, nil
}

func convert(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, err := units.Parse(req.From)
	if err != nil {
		return nil, err
	}
	to, err := units.Parse(req.To)
	if err != nil {
		return nil, err
	}

	var remapped bool
	if req.PreferIEC {
		from, to, remapped = units.RemapStorageToIEC(from, to)
	}

	value, err := units.Convert(req.Value, from, to)
	if err != nil {
		return nil, err
	}

	opts := units.FormatOptions{ForceDecimal: req.ForceDecimal, Precision: req.Precision}
	return &Result{
		Input:    req.Value,
		From:     units.FormatUnits(from, req.Value != 1),
		FromText: units.FormatValueWith(from, req.Value, opts),
		Value:    value,
		To:       units.FormatUnits(to, value != 1),
		Text:     units.FormatValueWith(to, value, opts),
		Remapped: remapped,
	}, nil
}

// ConvertBatch converts every request on a bounded worker group. Results keep
// input order and carry a 1-based Line. A failing request does not stop the
// others; the returned error is non-nil only if ctx is cancelled.
func (e *Engine) ConvertBatch(ctx context.Context, reqs []Request) ([]BatchResult, error) {
	log := logging.FromContext(ctx)
	if len(reqs) == 0 {
		return nil, nil
	}

	start := time.Now()
	results := make([]BatchResult, len(reqs))
	processor, err := batch.NewProcessor[Request](e.batchSize)
	if err != nil {
		return nil, err
	}

	var last batch.ProgressSnapshot
	var complete bool
	processor.WithProgressCallback(func(p *batch.Progress) {
		last = p.Snapshot()
		complete = p.IsComplete()
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "convert_batch").
			Int("processed", last.ProcessedItems).
			Int("total", last.TotalItems).
			Float64("percent", last.PercentComplete).
			Msg("batch progress")
	})

	convertItems := func(ctx context.Context, items []Request, _ int, offset int) error {
		for i, req := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			br := BatchResult{Line: offset + i + 1, Request: req}
			if res, convErr := convert(req); convErr != nil {
				br.Error = convErr.Error()
			} else {
				br.Result = res
			}
			results[offset+i] = br
		}
		return nil
	}

	if e.concurrency == 1 {
		err = processor.Process(ctx, reqs, convertItems)
	} else {
		err = processor.ProcessConcurrent(ctx, reqs, convertItems, e.concurrency)
	}
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "convert_batch").
		Int("count", len(reqs)).
		Int("failed", failed).
		Bool("complete", complete).
		Float64("items_per_second", last.ItemsPerSecond).
		Int64(logging.FieldDuration, time.Since(start).Milliseconds()).
		Msg("batch conversion complete")

	return results, nil
}

// Catalog returns every catalog unit in listing order.
func (e *Engine) Catalog(ctx context.Context) []units.CatalogEntry {
	entries := units.ListCatalog()
	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "catalog").
		Int("count", len(entries)).
		Msg("listing catalog")
	return entries
}

// FilterCatalog returns the entries whose name, description or any synonym
// contains query, ignoring case. An empty query matches everything.
func FilterCatalog(entries []units.CatalogEntry, query string) []units.CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	var out []units.CatalogEntry
	for _, entry := range entries {
		if entryMatches(entry, query) {
			out = append(out, entry)
		}
	}
	return out
}

func entryMatches(entry units.CatalogEntry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Name), query) ||
		strings.Contains(strings.ToLower(entry.Description), query) {
		return true
	}
	for _, s := range entry.Synonyms {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}
