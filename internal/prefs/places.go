package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jask/placelist/internal/place"
)

type seedFile struct {
	Place []place.Place `toml:"place"`
}

// LoadPlaces reads a TOML seed file of [[place]] tables. An empty path or
// a missing file yields the built-in seed.
func LoadPlaces(path string) ([]place.Place, error) {
	if path == "" {
		return place.DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return place.DefaultSeed(), nil
		}
		return nil, err
	}
	var f seedFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, p := range f.Place {
		if p.Title == "" {
			return nil, fmt.Errorf("parse %s: place %d has no title", path, i+1)
		}
	}
	return f.Place, nil
}

// SavePlaces writes places as a seed file, replacing path atomically.
func SavePlaces(path string, places []place.Place) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(seedFile{Place: places}); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
