package rest

import (
	"testing"
)

func TestListQuery_Encode(t *testing.T) {
	q := ListQuery{
		Filter:     Filter{"active": true, "role": "admin"},
		Navigation: &Navigation{Page: 3, PageSize: 50},
		Sorting:    Sorting{"created_at": SortDesc},
	}

	params := q.encode()
	want := map[string]string{
		"filter[active]":       "true",
		"filter[role]":         "admin",
		"navigation[page]":     "3",
		"navigation[pageSize]": "50",
		"sorting[created_at]":  "desc",
	}
	if len(params) != len(want) {
		t.Fatalf("expected %d params, got %d: %v", len(want), len(params), params)
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("expected %s=%s, got %q", k, v, params[k])
		}
	}
}

func TestListQuery_EncodeEmpty(t *testing.T) {
	if params := (ListQuery{}).encode(); params != nil {
		t.Errorf("expected nil for empty query, got %v", params)
	}
}

func TestListQuery_NumericFilterValues(t *testing.T) {
	q := ListQuery{Filter: Filter{"age": 42}}
	params := q.encode()
	if params["filter[age]"] != "42" {
		t.Errorf("expected filter[age]=42, got %q", params["filter[age]"])
	}
}
