package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlLayouts = `
[[layout]]
name = "line"
shape = [10]

[[layout]]
name = "volume"
shape = [2, 3, 4]
fill = 1.5
`

const yamlLayouts = `
layout:
  - name: line
    shape: [10]
  - name: volume
    shape: [2, 3, 4]
    fill: 1.5
`

func checkLayouts(t *testing.T, f File) {
	t.Helper()
	require.Len(t, f.Layouts, 2)

	assert.Equal(t, "line", f.Layouts[0].Name)
	assert.Equal(t, []int{10}, f.Layouts[0].Shape)
	assert.Nil(t, f.Layouts[0].Fill)

	assert.Equal(t, "volume", f.Layouts[1].Name)
	assert.Equal(t, []int{2, 3, 4}, f.Layouts[1].Shape)
	require.NotNil(t, f.Layouts[1].Fill)
	assert.Equal(t, 1.5, *f.Layouts[1].Fill)
}

func TestParseTOML(t *testing.T) {
	f, err := Parse([]byte(tomlLayouts), TOML)
	require.NoError(t, err)
	checkLayouts(t, f)
}

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte(yamlLayouts), YAML)
	require.NoError(t, err)
	checkLayouts(t, f)
}

func TestParseUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[[layout]]\nname = \"a\"\nshape = [1]\nstrides = [1]\n"), TOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strides")

	_, err = Parse([]byte("layout:\n  - name: a\n    shape: [1]\n    order: C\n"), YAML)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file File
		want error
	}{
		{"empty", File{}, ErrNoLayouts},
		{"no name", File{Layouts: []Layout{{Shape: []int{1}}}}, ErrInvalidLayout},
		{"duplicate", File{Layouts: []Layout{
			{Name: "a", Shape: []int{1}},
			{Name: "a", Shape: []int{2}},
		}}, ErrInvalidLayout},
		{"rank zero", File{Layouts: []Layout{{Name: "a"}}}, ErrInvalidLayout},
		{"rank nine", File{Layouts: []Layout{{Name: "a", Shape: []int{1, 1, 1, 1, 1, 1, 1, 1, 1}}}}, ErrInvalidLayout},
		{"negative", File{Layouts: []Layout{{Name: "a", Shape: []int{2, -1}}}}, ErrInvalidLayout},
		{"ok", File{Layouts: []Layout{{Name: "a", Shape: []int{2, 0}}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("layouts.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	f, err = FormatOf("dir/layouts.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	assert.Equal(t, "yaml", f.String())

	_, err = FormatOf("layouts.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "layouts.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlLayouts), 0o600))
	f, err := Load(tomlPath)
	require.NoError(t, err)
	checkLayouts(t, f)

	yamlPath := filepath.Join(dir, "layouts.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlLayouts), 0o600))
	f, err = Load(yamlPath)
	require.NoError(t, err)
	checkLayouts(t, f)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load layouts")
}
