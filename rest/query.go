package rest

import (
	"fmt"
	"sort"
	"strconv"
)

// Filter maps field names to scalar values. The client does not interpret
// it; the backend defines which fields and values mean what.
type Filter map[string]any

// SortOrder is a sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sorting maps field names to sort directions.
type Sorting map[string]SortOrder

// Navigation describes the requested page of a collection.
type Navigation struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ListQuery bundles the optional list modifiers.
type ListQuery struct {
	Filter     Filter
	Navigation *Navigation
	Sorting    Sorting
}

// ListOption configures a single List call.
type ListOption func(*ListQuery)

// WithFilter sets the filter modifier.
func WithFilter(f Filter) ListOption {
	return func(q *ListQuery) { q.Filter = f }
}

// WithNavigation sets the navigation modifier.
func WithNavigation(page, pageSize int) ListOption {
	return func(q *ListQuery) { q.Navigation = &Navigation{Page: page, PageSize: pageSize} }
}

// WithSorting sets the sorting modifier.
func WithSorting(s Sorting) ListOption {
	return func(q *ListQuery) { q.Sorting = s }
}

// encode serializes the modifiers as bracket-style query parameters:
// filter[field], navigation[page], navigation[pageSize], sorting[field].
// Keys are emitted in sorted order so request URLs are deterministic.
func (q ListQuery) encode() map[string]string {
	params := make(map[string]string)

	for _, k := range sortedKeys(q.Filter) {
		params["filter["+k+"]"] = fmt.Sprint(q.Filter[k])
	}
	if q.Navigation != nil {
		params["navigation[page]"] = strconv.Itoa(q.Navigation.Page)
		params["navigation[pageSize]"] = strconv.Itoa(q.Navigation.PageSize)
	}
	for _, k := range sortedKeys(q.Sorting) {
		params["sorting["+k+"]"] = string(q.Sorting[k])
	}

	if len(params) == 0 {
		return nil
	}
	return params
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
