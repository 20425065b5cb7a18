// Package config loads layout description files for the ndarray tool.
//
// A file lists named array layouts. TOML:
//
//	[[layout]]
//	name  = "volume"
//	shape = [2, 3, 4]
//	fill  = 1.5
//
// YAML uses the same keys under a top-level "layout" list.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/libmisc/internal/ndarray"
)

// Format is the encoding of a layout file.
type Format int

// Supported formats.
const (
	TOML Format = iota
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Validation errors.
var (
	ErrUnknownFormat = errors.New("unknown layout file format")
	ErrNoLayouts     = errors.New("no layouts defined")
	ErrInvalidLayout = errors.New("invalid layout")
)

// Layout is one named array shape.
type Layout struct {
	Name  string   `toml:"name" yaml:"name"`
	Shape []int    `toml:"shape" yaml:"shape"`
	Fill  *float64 `toml:"fill" yaml:"fill"`
}

// File is the decoded content of a layout file.
type File struct {
	Layouts []Layout `toml:"layout" yaml:"layout"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads, decodes and validates the layout file at path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load layouts: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates layout file content. Unknown keys are rejected.
func Parse(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case TOML:
		meta, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks that every layout has a unique name and a supported shape.
func (f File) Validate() error {
	if len(f.Layouts) == 0 {
		return ErrNoLayouts
	}
	seen := make(map[string]bool, len(f.Layouts))
	for i, l := range f.Layouts {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			return fmt.Errorf("%w: layout %d has no name", ErrInvalidLayout, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidLayout, name)
		}
		seen[name] = true

		if len(l.Shape) < 1 || len(l.Shape) > ndarray.MaxRank {
			return fmt.Errorf("%w: %q has rank %d (want 1..%d)",
				ErrInvalidLayout, name, len(l.Shape), ndarray.MaxRank)
		}
		for d, n := range l.Shape {
			if n < 0 {
				return fmt.Errorf("%w: %q axis %d has extent %d", ErrInvalidLayout, name, d, n)
			}
		}
	}
	return nil
}
