package prefstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDark_MissingFileIsLight(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), FileName))

	dark, err := s.Dark()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestSetDark_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	s := New(path)

	require.NoError(t, s.SetDark(true))
	dark, err := s.Dark()
	require.NoError(t, err)
	assert.True(t, dark)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dark = true\n", string(b))

	require.NoError(t, s.SetDark(false))
	dark, err = s.Dark()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestDark_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("dark = maybe"), 0o644))

	_, err := New(path).Dark()
	assert.Error(t, err)
}
