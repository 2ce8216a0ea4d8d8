package export

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyword_list.txt")
	keywords := []string{"barber in Paarl", "spa in Durban", "spa near me"}

	n, err := WriteFile(path, keywords)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "barber in Paarl\nspa in Durban\nspa near me\n", string(data))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyword_list.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale line\n", 100)), 0o644))

	_, err := WriteFile(path, []string{"fresh"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestWriteFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	n, err := WriteFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteFile_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "keyword_list.txt")

	_, err := WriteFile(path, []string{"spa"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	keywords := []string{"a", "b", "Ölfarbe", "ß"}

	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	_, err := WriteFile(first, keywords)
	require.NoError(t, err)
	_, err = WriteFile(second, keywords)
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesErrors(t *testing.T) {
	_, err := Write(failingWriter{}, slices.Values([]string{"spa"}))
	assert.EqualError(t, err, "disk full")
}

func TestWrite_Sequence(t *testing.T) {
	var sb strings.Builder
	n, err := Write(&sb, slices.Values([]string{"one", "two"}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "one\ntwo\n", sb.String())
}
