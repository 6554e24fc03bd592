package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/mimetab/mimetab/pkg/global"
)

// Settings is the optional per-directory mimetab.yaml configuration.
type Settings struct {
	// FallbackMimeType overrides application/octet-stream as the type
	// returned for unmatched file names.
	FallbackMimeType string `yaml:"fallback_mime_type"`
	// MimeTypes is the path of a mime.types database (gzip or plain text)
	// that replaces the bundled one.
	MimeTypes string `yaml:"mime_types"`
}

func Default() *Settings {
	return &Settings{}
}

// FromYAML parses settings from yaml contents.
func FromYAML(contents []byte) (*Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(contents, settings); err != nil {
		return nil, fmt.Errorf("Failed to parse settings yaml: %w", err)
	}
	return settings, nil
}

// Load reads mimetab.yaml from dir, returning defaults when the file does
// not exist.
func Load(dir string) (*Settings, error) {
	contents, err := os.ReadFile(filepath.Join(dir, global.SettingsFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(contents)
}
