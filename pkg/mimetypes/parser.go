// Package mimetypes provides bidirectional lookup between MIME media types
// and file name suffixes, built from mime.types-style configuration text.
package mimetypes

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	"github.com/mimetab/mimetab/pkg/errors"
)

// RawTable is the parser's direct output: each suffix mapped to the ordered,
// duplicate-free list of MIME types registered for it. Keys are lowercased;
// enumeration order is first-seen, so rebuilding an index from the same
// source is deterministic.
type RawTable struct {
	suffixes []string
	bySuffix map[string][]string
	typeSeen map[string]bool
	types    []string
}

func NewRawTable() *RawTable {
	return &RawTable{
		bySuffix: map[string][]string{},
		typeSeen: map[string]bool{},
	}
}

// Add registers a (mimeType, suffix) association. Duplicate pairs are
// suppressed; the first spelling of a MIME type wins for enumeration.
func (t *RawTable) Add(mimeType, suffix string) {
	if mimeType == "" || suffix == "" {
		return
	}
	sfx := strings.ToLower(suffix)
	if _, ok := t.bySuffix[sfx]; !ok {
		t.suffixes = append(t.suffixes, sfx)
	}
	for _, existing := range t.bySuffix[sfx] {
		if strings.EqualFold(existing, mimeType) {
			return
		}
	}
	t.bySuffix[sfx] = append(t.bySuffix[sfx], mimeType)

	typ := strings.ToLower(mimeType)
	if !t.typeSeen[typ] {
		t.typeSeen[typ] = true
		t.types = append(t.types, mimeType)
	}
}

// Suffixes returns the suffix keys in first-seen order.
func (t *RawTable) Suffixes() []string {
	return t.suffixes
}

// TypesFor returns the MIME types registered for a suffix, in first-seen order.
func (t *RawTable) TypesFor(suffix string) []string {
	return t.bySuffix[strings.ToLower(suffix)]
}

// Types returns every distinct MIME type in the table, in first-seen order.
func (t *RawTable) Types() []string {
	return t.types
}

// Len returns the number of distinct suffixes in the table.
func (t *RawTable) Len() int {
	return len(t.suffixes)
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == ';'
}

// ParseTable reads a mime.types database from r, which may be either plain
// text or a gzip stream, and returns the accumulated raw table.
//
// The source is buffered in full before decoding so that a stream which looks
// like gzip but fails mid-way can be replayed from the start as plain text.
// Per line: everything from the first '#' on is a comment, tokens are split
// on runs of space, tab, ',' and ';', the first token is the MIME type and
// the remaining tokens are its suffixes. Lines with fewer than two tokens
// contribute nothing.
func ParseTable(r io.Reader) (*RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.SourceUnreadable("failed to read mime.types source", err)
	}
	data = inflate(data)

	table := NewRawTable()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A line can never be longer than the already-buffered source, so lift
	// the scanner's default 64KiB token ceiling to match.
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, isDelimiter)
		if len(fields) < 2 {
			continue
		}
		for _, suffix := range fields[1:] {
			table.Add(fields[0], suffix)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.SourceUnreadable("failed to scan mime.types source", err)
	}
	return table, nil
}

// inflate gunzips data if it is a complete, valid gzip stream, and otherwise
// returns it unchanged. Not-gzip is an expected branch, never an error.
func inflate(data []byte) []byte {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	plain, err := io.ReadAll(zr)
	if err != nil {
		return data
	}
	return plain
}
