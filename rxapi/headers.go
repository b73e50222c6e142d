package rxapi

import (
	"maps"
	"net/http"
	"slices"
)

// Headers is an insertion-ordered set of HTTP headers. Keys are stored in
// canonical MIME form, so "content-type" and "Content-Type" are the same key.
// The zero value is ready to use.
type Headers struct {
	keys   []string
	values map[string]string
}

// NewHeaders returns Headers populated from m via Merge.
func NewHeaders(m map[string]string) Headers {
	var h Headers
	h.Merge(m)
	return h
}

// Set stores value under the canonical form of key. An existing key keeps
// its position.
func (h *Headers) Set(key, value string) {
	key = http.CanonicalHeaderKey(key)
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Merge sets every entry of m. Same keys are overwritten, others are kept.
// New keys are appended in lexical order so iteration stays deterministic.
func (h *Headers) Merge(m map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		h.Set(k, m[k])
	}
}

// Get returns the value stored for key, or "" if none.
func (h Headers) Get(key string) string {
	return h.values[http.CanonicalHeaderKey(key)]
}

// Has reports whether key is present.
func (h Headers) Has(key string) bool {
	_, ok := h.values[http.CanonicalHeaderKey(key)]
	return ok
}

// Keys returns the header names in insertion order.
func (h Headers) Keys() []string {
	return slices.Clone(h.keys)
}

// Len returns the number of headers.
func (h Headers) Len() int {
	return len(h.keys)
}

// Map returns a copy of the headers as a plain map.
func (h Headers) Map() map[string]string {
	return maps.Clone(h.values)
}

// Clone returns a deep copy of h.
func (h Headers) Clone() Headers {
	return Headers{keys: slices.Clone(h.keys), values: maps.Clone(h.values)}
}
