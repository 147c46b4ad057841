package pagination

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/uconv/internal/units"
)

// Sorter sorts a slice by a named field.
type Sorter[T any] interface {
	// Sort returns a sorted copy of items; the input is not modified.
	Sort(items []T, field, order string) []T
	// IsValidField reports whether field can be sorted on.
	IsValidField(field string) bool
	// GetValidFields returns the sortable fields in a stable order.
	GetValidFields() []string
}

// CatalogSorter sorts catalog entries. Sorting is stable so entries with the
// same key keep catalog order.
type CatalogSorter struct {
	keys map[string]func(units.CatalogEntry) string
}

// NewCatalogSorter creates a CatalogSorter for the name, description and
// synonyms fields.
func NewCatalogSorter() *CatalogSorter {
	return &CatalogSorter{
		keys: map[string]func(units.CatalogEntry) string{
			"name":        func(e units.CatalogEntry) string { return strings.ToLower(e.Name) },
			"description": func(e units.CatalogEntry) string { return strings.ToLower(e.Description) },
			"synonyms":    func(e units.CatalogEntry) string { return fmt.Sprintf("%04d", len(e.Synonyms)) },
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *CatalogSorter) IsValidField(field string) bool {
	_, ok := s.keys[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *CatalogSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.keys))
	for field := range s.keys {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Sort sorts entries by field. An invalid field returns the input unchanged.
func (s *CatalogSorter) Sort(entries []units.CatalogEntry, field, order string) []units.CatalogEntry {
	key, ok := s.keys[field]
	if !ok {
		return entries
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b units.CatalogEntry) int {
		c := strings.Compare(key(a), key(b))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted
}

// SortWith validates sortExpr against sorter and sorts items. An empty
// expression keeps the natural order.
func SortWith[T any](sorter Sorter[T], items []T, sortExpr string) ([]T, error) {
	field, order, err := ParseSort(sortExpr)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return items, nil
	}
	if !sorter.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid fields: %s)",
			ErrInvalidSortField, field, strings.Join(sorter.GetValidFields(), ", "))
	}
	return sorter.Sort(items, field, order), nil
}
