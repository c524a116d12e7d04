package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnowlabs/winnow/internal/contract"
)

// tempOutputPath returns a path for a throwaway output artifact.
func tempOutputPath(t *testing.T, ext string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "schedule."+ext)
}

// readFileString reads a written artifact back as a string.
func readFileString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGetTableWidthOverride(t *testing.T) {
	cfg := &contract.Config{Width: 132}
	assert.Equal(t, 132, GetTableWidth(cfg))
}

func TestGetTableWidthFallback(t *testing.T) {
	// No override; under 'go test' stdout is typically not a terminal,
	// so the conservative default applies.
	cfg := &contract.Config{}
	width := GetTableWidth(cfg)
	assert.GreaterOrEqual(t, width, 1)
}

func TestShowDetailColumns(t *testing.T) {
	assert.True(t, showDetailColumns(&contract.Config{Width: minDetailWidth}))
	assert.False(t, showDetailColumns(&contract.Config{Width: minDetailWidth - 1}))
}
