package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a deck from a .toml, .yaml or .yml file, resolves relative
// media paths against the file's directory and validates the result.
func Load(path string) (*Deck, error) {
	var (
		d   *Deck
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		d, err = loadTOML(path)
	case ".yaml", ".yml":
		d, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("load deck %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", path, err)
	}

	d.resolve(filepath.Dir(path))
	if d.Brand == "" {
		d.Brand = DefaultBrand
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	return d, nil
}

func loadTOML(path string) (*Deck, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}
	d := &Deck{}
	if err := k.Unmarshal("", d); err != nil {
		return nil, err
	}
	return d, nil
}

func loadYAML(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &Deck{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deck) resolve(dir string) {
	for i := range d.Slides {
		s := &d.Slides[i]
		s.MediaSrc = resolvePath(dir, s.MediaSrc)
		s.AccentSrc = resolvePath(dir, s.AccentSrc)
		s.Ambience = resolvePath(dir, s.Ambience)
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(dir, p)
}
