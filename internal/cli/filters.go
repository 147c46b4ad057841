package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/logging"
	"github.com/rshade/uconv/internal/units"
)

// ErrInvalidFilter is returned for a keyed filter with an unknown key.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter keys accepted in "key=value" form.
const (
	filterKeyName        = "name"
	filterKeyDescription = "description"
	filterKeySynonym     = "synonym"
)

// ValidateFilter checks a single filter expression. A bare word matches any
// field; "name=", "description=" and "synonym=" restrict the match to one.
func ValidateFilter(f string) error {
	key, value, keyed := strings.Cut(f, "=")
	if !keyed {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(key)) {
	case filterKeyName, filterKeyDescription, filterKeySynonym:
	default:
		return fmt.Errorf("%w: unknown key %q in %q (valid keys: name, description, synonym)",
			ErrInvalidFilter, key, f)
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: empty value in %q", ErrInvalidFilter, f)
	}
	return nil
}

// ApplyFilters validates every filter first, then narrows entries by each in
// turn. Matching ignores case. An empty filter slice returns entries
// unchanged.
func ApplyFilters(
	ctx context.Context,
	entries []units.CatalogEntry,
	filters []string,
) ([]units.CatalogEntry, error) {
	log := logging.FromContext(ctx)

	if len(filters) == 0 {
		return entries, nil
	}

	for _, f := range filters {
		if f == "" {
			continue
		}
		if err := ValidateFilter(f); err != nil {
			log.Warn().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "apply_filters").
				Str("filter", f).
				Err(err).
				Msg("invalid filter expression")
			return nil, err
		}
	}

	result := entries
	for _, f := range filters {
		if f == "" {
			continue
		}
		before := len(result)
		result = filterEntries(result, f)
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Str("filter", f).
			Int("before", before).
			Int("after", len(result)).
			Msg("applied filter")
	}

	if len(result) == 0 && len(entries) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", len(entries)).
			Msg("no units match filter criteria")
	}

	return result, nil
}

func filterEntries(entries []units.CatalogEntry, f string) []units.CatalogEntry {
	key, value, keyed := strings.Cut(f, "=")
	if !keyed {
		return engine.FilterCatalog(entries, f)
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.ToLower(strings.TrimSpace(value))
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), value) }

	var out []units.CatalogEntry
	for _, e := range entries {
		var match bool
		switch key {
		case filterKeyName:
			match = contains(e.Name)
		case filterKeyDescription:
			match = contains(e.Description)
		case filterKeySynonym:
			match = slices.ContainsFunc(e.Synonyms, contains)
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
