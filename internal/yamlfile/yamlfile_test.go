package yamlfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/battlecalc/internal/yamlfile"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestList_MatchesBothExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", "id: b\n")
	writeFile(t, dir, "a.yaml", "id: a\n")
	writeFile(t, dir, "C.YAML", "id: c\n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	paths, err := yamlfile.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "C.YAML"),
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yml"),
	}, paths)
}

func TestList_MissingDir(t *testing.T) {
	_, err := yamlfile.List(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestDecode_StrictRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.yaml", "id: x\nextra: 1\n")
	path := filepath.Join(dir, "x.yaml")

	var v struct {
		ID string `yaml:"id"`
	}
	require.NoError(t, yamlfile.Decode(path, &v))
	assert.Equal(t, "x", v.ID)

	err := yamlfile.DecodeStrict(path, &v)
	assert.ErrorContains(t, err, "x.yaml")
}

func TestDecode_MissingFile(t *testing.T) {
	var v map[string]any
	assert.Error(t, yamlfile.Decode(filepath.Join(t.TempDir(), "none.yaml"), &v))
}
