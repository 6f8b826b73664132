package wordbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	doc := `
units:
  - id: 1
    words: [cat, dog, sun]
  - id: 2
    label: Colors
    words:
      - red
      - blue
`
	b, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, b.IDs())
	assert.Equal(t, []string{"cat", "dog", "sun"}, b.Words(1))
	assert.Equal(t, "Colors", b.Label(2))
}

func TestParse_JSON(t *testing.T) {
	doc := `{"units": [{"id": 7, "words": ["one", "two"]}]}`
	b, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, b.Words(7))
	assert.Equal(t, "Unit 7", b.Label(7))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("units:\n  - id: 1\n    wrods: [a]\n"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoUnits))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units:\n  - id: 4\n    words: [a, b]\n"), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.True(t, b.Has(4))
}

func TestLoadOrDefault(t *testing.T) {
	b, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len())

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
