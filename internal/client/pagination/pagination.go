// Package pagination presents one uniform page envelope to callers
// regardless of backend response shape. Shop backend list endpoints return
// either {count, next, previous, results} or a bare array depending on the
// endpoint and applied filters; everything funnels through Normalize before
// use or caching so cached list values have a single shape.
package pagination

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DefaultPageSize is the page size used when the caller does not choose one.
const DefaultPageSize = 20

// Page is the normalized pagination envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// emptyPage is the defensive default for malformed input: an empty result
// set, never an error.
func emptyPage[T any]() Page[T] {
	return Page[T]{Results: []T{}}
}

// IsPaginated reports whether raw is a JSON object exposing both a "count"
// and a "results" field.
func IsPaginated(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return false
	}
	_, hasCount := obj["count"]
	_, hasResults := obj["results"]
	return hasCount && hasResults
}

// ExtractResults returns the current page's items: the envelope's results if
// raw is paginated, the array itself if raw is a bare array, and an empty
// slice for anything else.
func ExtractResults[T any](raw json.RawMessage) []T {
	return Normalize[T](raw).Results
}

// Normalize converts any backend list response into a Page. An envelope
// passes through unchanged; a bare array is wrapped with Count = len and nil
// cursors; malformed input becomes the empty envelope. Normalize is
// idempotent: re-normalizing a marshalled Page yields the same Page.
func Normalize[T any](raw json.RawMessage) Page[T] {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return emptyPage[T]()
	}

	switch trimmed[0] {
	case '{':
		if !IsPaginated(trimmed) {
			return emptyPage[T]()
		}
		var p Page[T]
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return emptyPage[T]()
		}
		if p.Results == nil {
			p.Results = []T{}
		}
		return p

	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return emptyPage[T]()
		}
		if items == nil {
			items = []T{}
		}
		return Page[T]{Count: len(items), Results: items}

	default:
		return emptyPage[T]()
	}
}

// TotalPages derives the page count for a result total. pageSize must be
// positive; that is the caller's contract.
func TotalPages(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}

// BuildParams constructs the outgoing query parameters for one page.
func BuildParams(page, pageSize int) map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	}
}
