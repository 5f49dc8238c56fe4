//go:build !windows && !linux

package icon

import (
	"fmt"
	"image"
)

// No OS icon lookup on this platform; the chain ends at the
// extension-class placeholder.
func platformExtract(path string, size int) (image.Image, error) {
	return nil, fmt.Errorf("no platform icon extraction for %s", path)
}
