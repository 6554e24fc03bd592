package mimetypes

import (
	_ "embed"
)

// Bundled snapshot of a standard system mime.types database so lookups work
// without any host configuration.
//
//go:embed mime.types
var defaultDatabase []byte

// DefaultRegistry is the process-wide registry, loaded with the bundled
// database. Hosts that need isolated tables construct their own Registry.
var DefaultRegistry = New()

// MimeTypesForFileName resolves a file name against the default registry.
func MimeTypesForFileName(fileName string) ([]string, error) {
	return DefaultRegistry.MimeTypesForFileName(fileName)
}

// TryMimeTypesForFileName resolves a file name against the default registry,
// with a found flag.
func TryMimeTypesForFileName(fileName string) ([]string, bool) {
	return DefaultRegistry.TryMimeTypesForFileName(fileName)
}

// Extensions returns the suffixes the default registry has for a MIME type.
func Extensions(mimeType string) ([]string, error) {
	return DefaultRegistry.Extensions(mimeType)
}

// AllMimeTypes returns every MIME type known to the default registry.
func AllMimeTypes() []string {
	return DefaultRegistry.AllMimeTypes()
}
