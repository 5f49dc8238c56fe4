package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	_ "github.com/jsummers/gobmp"

	"fyne.io/fyne/v2"
	"github.com/fyne-io/image/ico"

	"superlauncher/internal/logger"
	"superlauncher/internal/models"
)

// candidateSizes are the resolutions the extractor will try to source
// an icon at, before the final scale to the requested display size.
var candidateSizes = []int{16, 24, 32, 48, 64, 128}

// Extractor resolves a bitmap icon for a file path, best effort. The
// chain is: raster image decode, .ico decode, platform lookup, then a
// generic placeholder. Results are cached per path and display size.
//
// Extraction is synchronous and may block on filesystem or registry
// access; callers on the GUI thread accept that.
type Extractor struct {
	cache   *Cache
	quality models.IconQuality
	log     logger.Logger
}

func NewExtractor(log logger.Logger, cacheSize int, quality models.IconQuality) *Extractor {
	if log == nil {
		log = logger.Nop{}
	}
	return &Extractor{
		cache:   NewCache(cacheSize),
		quality: quality,
		log:     log,
	}
}

// Icon returns a rendered icon for path at the given pixel size. It
// never fails: total extraction failure yields the placeholder for the
// path's extension class.
func (e *Extractor) Icon(path string, size int) fyne.Resource {
	key := fmt.Sprintf("%s|%d", path, size)
	if res, ok := e.cache.Get(key); ok {
		return res
	}

	img, err := e.extract(path, bestSourceSize(size, e.preferredSizes()))
	if err != nil {
		// One diagnostic pass per miss; the placeholder is cached below
		// so this does not repeat for the same path and size.
		d := e.Diagnose(path)
		e.log.Debug("IconExtractor", "falling back to placeholder", map[string]interface{}{
			"path":      path,
			"file_type": d.FileType,
			"exists":    d.Exists,
			"methods":   d.Methods,
			"errors":    d.Errors,
		})
		res := Placeholder(path)
		e.cache.Add(key, res)
		return res
	}

	res := toResource(path, scaleTo(img, size, e.quality))
	e.cache.Add(key, res)
	return res
}

// extract walks the fallback chain and returns the first decoded image.
func (e *Extractor) extract(path string, sourceSize int) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	var attempts []error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		img, err := decodeImageFile(path)
		if err == nil {
			return img, nil
		}
		attempts = append(attempts, fmt.Errorf("image decode: %w", err))
	case ".ico":
		img, err := decodeICOFile(path)
		if err == nil {
			return img, nil
		}
		attempts = append(attempts, fmt.Errorf("ico decode: %w", err))
	}

	img, err := platformExtract(path, sourceSize)
	if err == nil {
		return img, nil
	}
	attempts = append(attempts, fmt.Errorf("platform lookup: %w", err))

	return nil, errors.Join(attempts...)
}

// preferredSizes narrows the candidate resolutions by quality; lower
// quality skips the expensive large extractions.
func (e *Extractor) preferredSizes() []int {
	switch e.quality {
	case models.QualityHigh:
		return candidateSizes
	case models.QualityMedium:
		return []int{32, 48, 64}
	default:
		return []int{32, 48}
	}
}

// SetQuality changes the scaling/extraction quality. The cache is
// purged because cached bitmaps were rendered under the old setting.
func (e *Extractor) SetQuality(q models.IconQuality) {
	if q == e.quality {
		return
	}
	e.quality = q
	e.cache.Purge()
}

// SetCacheSize rebounds the cache without discarding entries that still
// fit. Config reloads use this when the persisted capacity changes.
func (e *Extractor) SetCacheSize(capacity int) {
	e.cache.Resize(capacity)
}

func (e *Extractor) ClearCache() {
	e.cache.Purge()
}

func (e *Extractor) CacheLen() int {
	return e.cache.Len()
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func decodeICOFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ico.Decode(f)
}

func toResource(path string, img image.Image) fyne.Resource {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Placeholder(path)
	}
	return fyne.NewStaticResource(resourceName(path), buf.Bytes())
}

func resourceName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, stem)
	if clean == "" {
		clean = "icon"
	}
	return clean + ".png"
}
