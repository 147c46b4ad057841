package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Pagination defaults and sort orders.
const (
	DefaultLimit     = 0
	DefaultOffset    = 0
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortField     = errors.New("invalid sort field")
)

// PaginationParams holds CLI pagination flags. Two modes are supported and
// are mutually exclusive:
//   - Offset-based: --limit and --offset (a zero limit means no limit)
//   - Page-based: --page and --page-size
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int

	// Sort is the raw "field[:order]" flag value.
	Sort string
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Limit:  DefaultLimit,
		Offset: DefaultOffset,
	}
}

// AddFlags registers the pagination and sort flags on cmd.
func (p *PaginationParams) AddFlags(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().IntVar(&p.Limit, "limit", DefaultLimit, "maximum number of results (0 = no limit)")
	cmd.Flags().IntVar(&p.Offset, "offset", DefaultOffset, "number of results to skip")
	cmd.Flags().IntVar(&p.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "results per page (requires --page)")
	cmd.Flags().StringVar(&p.Sort, "sort", "", sortHelp)
}

// Validate checks if the pagination parameters are valid and consistent.
func (p PaginationParams) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 {
		return errors.New("page-size cannot be negative")
	}

	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("page must be specified when using page-size: page must be >= 1")
	}
	if p.PageSize == 0 && p.Page > 0 {
		return errors.New("page-size must be specified when using page: page-size must be > 0")
	}

	if _, _, err := ParseSort(p.Sort); err != nil {
		return err
	}
	return nil
}

const sortPartsMax = 2

// ParseSort splits "field" or "field:order". An empty string selects the
// natural order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// IsPageBased reports whether --page was given.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// CalculateOffsetLimit returns the effective window. A zero limit means the
// rest of the slice.
//
//nolint:nonamedreturns // Named returns document the pair.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the window of items selected by p. A page past the end is
// clamped to the last page; an offset past the end yields an empty slice.
func Apply[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 {
		end = min(offset+limit, len(items))
	}
	return items[offset:end]
}
