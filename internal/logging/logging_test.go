package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" error ", log.ErrorLevel},
		{"warn", log.WarnLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "warn", Format: "logfmt"})

	l.Info("hidden")
	l.Error("failed to fetch todos", "filter", "all")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "failed to fetch todos")
	assert.Contains(t, out, "filter=all")
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tada.log")

	l, c, err := OpenFile(path, Options{Level: "info"})
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, c.Close())

	l, c, err = OpenFile(path, Options{Level: "info"})
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "first")
	assert.Contains(t, string(b), "second")
}

func TestOpenFile_EmptyPath(t *testing.T) {
	_, _, err := OpenFile("", Options{})
	assert.Error(t, err)
}
