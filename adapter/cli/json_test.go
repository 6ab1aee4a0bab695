package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONArgInline(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	err := ReadJSONArg(`{"name":"Kopje Heights"}`, &v)
	require.NoError(t, err)
	assert.Equal(t, "Kopje Heights", v.Name)
}

func TestReadJSONArgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"number":1},{"number":2}]`), 0o600))

	var sections []struct {
		Number int `json:"number"`
	}
	err := ReadJSONArg("@"+path, &sections)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, 2, sections[1].Number)
}

func TestReadJSONArgMissingFile(t *testing.T) {
	var v any
	err := ReadJSONArg("@/nonexistent/sections.json", &v)
	assert.Error(t, err)
}

func TestReadJSONArgInvalidJSON(t *testing.T) {
	var v any
	err := ReadJSONArg(`{"name":`, &v)
	assert.ErrorContains(t, err, "parse JSON input")
}
