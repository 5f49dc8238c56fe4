package icon

import (
	"os"
	"path/filepath"
	"strings"
)

// Diagnostics describes what the extractor can and cannot do for a
// path. It re-runs the chain observationally and is meant for debug
// output, not for the hot path.
type Diagnostics struct {
	Path           string
	Exists         bool
	FileType       string
	Methods        []string
	AvailableSizes []int
	Errors         []string
}

func (e *Extractor) Diagnose(path string) Diagnostics {
	d := Diagnostics{
		Path:     path,
		FileType: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
	if d.FileType == "" {
		d.FileType = "none"
	}

	if _, err := os.Stat(path); err != nil {
		d.Errors = append(d.Errors, err.Error())
		return d
	}
	d.Exists = true

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		if _, err := decodeImageFile(path); err == nil {
			d.Methods = append(d.Methods, "image-decode")
		} else {
			d.Errors = append(d.Errors, err.Error())
		}
	case ".ico":
		if _, err := decodeICOFile(path); err == nil {
			d.Methods = append(d.Methods, "ico-decode")
		} else {
			d.Errors = append(d.Errors, err.Error())
		}
	}

	for _, size := range e.preferredSizes() {
		if _, err := platformExtract(path, size); err == nil {
			d.AvailableSizes = append(d.AvailableSizes, size)
		}
	}
	if len(d.AvailableSizes) > 0 {
		d.Methods = append(d.Methods, "platform-lookup")
	}

	if len(d.Methods) == 0 {
		d.Methods = append(d.Methods, "placeholder")
	}
	return d
}
