package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"superlauncher/internal/models"
)

func TestScaleToTargetDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))

	for _, q := range []models.IconQuality{models.QualityHigh, models.QualityMedium, models.QualityLow} {
		out := scaleTo(src, 48, q)
		b := out.Bounds()
		assert.Equal(t, 48, b.Dx(), "quality %s", q)
		assert.Equal(t, 48, b.Dy(), "quality %s", q)
	}
}

func TestScaleToNoOpAtTargetSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 48, 48))
	assert.Same(t, image.Image(src), scaleTo(src, 48, models.QualityHigh))
}

func TestBestSourceSize(t *testing.T) {
	sizes := []int{16, 24, 32, 48, 64, 128}

	// Smallest candidate at or above the request.
	assert.Equal(t, 48, bestSourceSize(48, sizes))
	assert.Equal(t, 32, bestSourceSize(25, sizes))
	assert.Equal(t, 16, bestSourceSize(10, sizes))

	// Nothing large enough: fall back to the largest available.
	assert.Equal(t, 128, bestSourceSize(256, sizes))
	assert.Equal(t, 48, bestSourceSize(256, []int{32, 48}))
}
