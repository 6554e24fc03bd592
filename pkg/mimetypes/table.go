package mimetypes

import (
	"slices"
	"strings"
)

// Table is an immutable bidirectional index between suffixes and MIME types.
// It is never mutated after BuildTable returns, so it can be shared between
// any number of readers without locking.
type Table struct {
	suffixToTypes  map[string][]string
	typeToSuffixes map[string][]string
	allTypes       []string
}

// BuildTable derives the bidirectional index from a raw table. It is a pure
// in-memory transformation: no I/O, deterministic for a given input.
func BuildTable(raw *RawTable) *Table {
	t := &Table{
		suffixToTypes:  make(map[string][]string, raw.Len()),
		typeToSuffixes: map[string][]string{},
	}
	for _, suffix := range raw.Suffixes() {
		types := raw.TypesFor(suffix)
		t.suffixToTypes[suffix] = slices.Clone(types)
		for _, typ := range types {
			key := strings.ToLower(typ)
			t.typeToSuffixes[key] = append(t.typeToSuffixes[key], suffix)
		}
	}
	t.allTypes = slices.Clone(raw.Types())
	return t
}

// TypesForSuffix returns the ordered, duplicate-free MIME types registered
// for a suffix. ok is false when the suffix is unknown.
func (t *Table) TypesForSuffix(suffix string) ([]string, bool) {
	types, ok := t.suffixToTypes[strings.ToLower(suffix)]
	if !ok {
		return nil, false
	}
	return slices.Clone(types), true
}

// SuffixesForType returns the suffixes registered under a MIME type, in
// first-seen order. Unknown types yield an empty slice.
func (t *Table) SuffixesForType(mimeType string) []string {
	return slices.Clone(t.typeToSuffixes[strings.ToLower(mimeType)])
}

// AllTypes returns every distinct MIME type in the table, in first-seen order.
func (t *Table) AllTypes() []string {
	return slices.Clone(t.allTypes)
}

// Len returns the number of distinct suffixes in the table.
func (t *Table) Len() int {
	return len(t.suffixToTypes)
}
