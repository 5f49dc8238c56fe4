package icon

import (
	"image"

	"github.com/nfnt/resize"

	"superlauncher/internal/models"
)

// scaleTo resizes img to size x size with a single smooth-resize call.
// High quality uses Lanczos resampling; medium bilinear; low nearest
// neighbour, matching the configured icon quality.
func scaleTo(img image.Image, size int, quality models.IconQuality) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}

	var interp resize.InterpolationFunction
	switch quality {
	case models.QualityLow:
		interp = resize.NearestNeighbor
	case models.QualityMedium:
		interp = resize.Bilinear
	default:
		interp = resize.Lanczos3
	}

	return resize.Resize(uint(size), uint(size), img, interp)
}

// bestSourceSize picks the candidate resolution to extract from for a
// requested display size: the smallest candidate at or above the
// request, else the largest available.
func bestSourceSize(requested int, candidates []int) int {
	best := 0
	for _, c := range candidates {
		if c >= requested && (best == 0 || c < best) {
			best = c
		}
	}
	if best == 0 {
		for _, c := range candidates {
			if c > best {
				best = c
			}
		}
	}
	return best
}
