package mimetypes

import (
	"bytes"
	"io"
	"strings"
	"sync/atomic"

	"github.com/mimetab/mimetab/pkg/errors"
)

// Registry owns the currently active table and serves all lookups against
// it. Published tables are immutable; a reload builds the replacement
// completely off to the side and swaps a single pointer, so concurrent
// readers always observe either the entirely-old or entirely-new table and
// never block. Concurrent reloads are last-writer-wins.
type Registry struct {
	table    atomic.Pointer[Table]
	fallback atomic.Pointer[string]
}

// NewEmpty returns a Registry with no associations. Every file name resolves
// to the fallback type until ReloadFrom populates the table.
func NewEmpty() *Registry {
	r := &Registry{}
	r.table.Store(BuildTable(NewRawTable()))
	r.SetFallbackMimeType(DefaultFallbackMimeType)
	return r
}

// New returns a Registry loaded with the bundled mime.types snapshot.
func New() *Registry {
	r := NewEmpty()
	// The embedded database is compiled in and always parses.
	_ = r.ReloadFrom(bytes.NewReader(defaultDatabase))
	return r
}

// ReloadFrom replaces the whole active table with one parsed from src, which
// may be gzip-compressed or plain text. On error the previous table stays
// authoritative; a reload is never partially applied.
func (r *Registry) ReloadFrom(src io.Reader) error {
	raw, err := ParseTable(src)
	if err != nil {
		return err
	}
	r.table.Store(BuildTable(raw))
	return nil
}

// Table returns the current active table snapshot. The snapshot stays valid
// and self-consistent even if the Registry is reloaded afterwards.
func (r *Registry) Table() *Table {
	return r.table.Load()
}

// FallbackMimeType returns the type used when no suffix match exists.
func (r *Registry) FallbackMimeType() string {
	return *r.fallback.Load()
}

// SetFallbackMimeType overrides the fallback type. An empty value restores
// the default.
func (r *Registry) SetFallbackMimeType(mimeType string) {
	if mimeType == "" {
		mimeType = DefaultFallbackMimeType
	}
	r.fallback.Store(&mimeType)
}

// MimeTypesForFileName resolves the MIME types for a file name by its suffix.
// File names without a suffix, or with an unregistered one, resolve to a
// single-element slice holding the fallback type. An empty fileName is a
// caller error.
func (r *Registry) MimeTypesForFileName(fileName string) ([]string, error) {
	if fileName == "" {
		return nil, errors.MissingArgument("fileName")
	}
	types, _ := r.TryMimeTypesForFileName(fileName)
	return types, nil
}

// TryMimeTypesForFileName is the found-flag variant of MimeTypesForFileName:
// found reports whether the suffix had registered types. On a miss the
// returned slice still holds the fallback type so callers always get a
// usable value.
func (r *Registry) TryMimeTypesForFileName(fileName string) ([]string, bool) {
	suffix, ok := suffixOf(fileName)
	if ok {
		if types, found := r.Table().TypesForSuffix(suffix); found {
			return types, true
		}
	}
	return []string{r.FallbackMimeType()}, false
}

// Extensions returns the suffixes registered under a MIME type. Unknown
// types yield an empty slice; an empty mimeType is a caller error.
func (r *Registry) Extensions(mimeType string) ([]string, error) {
	if mimeType == "" {
		return nil, errors.MissingArgument("mimeType")
	}
	return r.Table().SuffixesForType(mimeType), nil
}

// AllMimeTypes returns every known MIME type, without duplicates.
func (r *Registry) AllMimeTypes() []string {
	return r.Table().AllTypes()
}

// IsVideo reports whether any resolved type for the file name is video/*.
func (r *Registry) IsVideo(fileName string) bool {
	return r.hasCategory(fileName, prefixVideo)
}

// IsAudio reports whether any resolved type for the file name is audio/*.
func (r *Registry) IsAudio(fileName string) bool {
	return r.hasCategory(fileName, prefixAudio)
}

// IsImage reports whether any resolved type for the file name is image/*.
func (r *Registry) IsImage(fileName string) bool {
	return r.hasCategory(fileName, prefixImage)
}

// IsText reports whether any resolved type for the file name is text/*.
func (r *Registry) IsText(fileName string) bool {
	return r.hasCategory(fileName, prefixText)
}

// IsMedia reports whether the file name resolves to video, audio or image.
func (r *Registry) IsMedia(fileName string) bool {
	return r.IsVideo(fileName) || r.IsAudio(fileName) || r.IsImage(fileName)
}

func (r *Registry) hasCategory(fileName, prefix string) bool {
	types, _ := r.TryMimeTypesForFileName(fileName)
	for _, typ := range types {
		if len(typ) >= len(prefix) && strings.EqualFold(typ[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// suffixOf extracts the suffix strictly after the last '.' of a file name,
// lowercased. ok is false when there is no dot or the dot is last.
func suffixOf(fileName string) (string, bool) {
	i := strings.LastIndexByte(fileName, '.')
	if i < 0 || i == len(fileName)-1 {
		return "", false
	}
	return strings.ToLower(fileName[i+1:]), true
}
