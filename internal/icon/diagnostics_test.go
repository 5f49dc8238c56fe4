package icon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlauncher/internal/models"
)

func TestDiagnoseMissingFile(t *testing.T) {
	e := NewExtractor(nil, models.MinIconCacheSize, models.QualityHigh)

	d := e.Diagnose("/no/such/dir/app.exe")
	assert.False(t, d.Exists)
	assert.Equal(t, "exe", d.FileType)
	assert.Empty(t, d.Methods)
	assert.NotEmpty(t, d.Errors)
}

func TestDiagnoseRasterFile(t *testing.T) {
	e := NewExtractor(nil, models.MinIconCacheSize, models.QualityHigh)
	path := writeTestPNG(t, t.TempDir(), 64)

	d := e.Diagnose(path)
	assert.True(t, d.Exists)
	assert.Equal(t, "png", d.FileType)
	assert.Contains(t, d.Methods, "image-decode")
	assert.Empty(t, d.Errors)
}

func TestDiagnosePlaceholderOnly(t *testing.T) {
	e := NewExtractor(nil, models.MinIconCacheSize, models.QualityHigh)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	d := e.Diagnose(path)
	assert.True(t, d.Exists)
	assert.Equal(t, []string{"placeholder"}, d.Methods)
}
