//go:build linux

package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// platformExtract handles the Linux conventions: .desktop entries name
// an icon that is resolved through the hicolor theme directories and
// /usr/share/pixmaps. Plain files have no OS icon association here, so
// the chain falls through to the placeholder.
func platformExtract(path string, size int) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".desktop") {
		name, err := desktopEntryIcon(path)
		if err != nil {
			return nil, err
		}
		return resolveThemeIcon(name, size)
	}
	return nil, fmt.Errorf("no platform icon source for %s", path)
}

// desktopEntryIcon returns the Icon= value of the [Desktop Entry]
// section.
func desktopEntryIcon(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	inEntry := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '[' {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		if k, v, ok := strings.Cut(line, "="); ok && strings.TrimSpace(k) == "Icon" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", fmt.Errorf("no Icon key in %s", path)
}

// resolveThemeIcon maps an icon name to a raster file. Absolute paths
// are used directly; bare names are searched in the usual directories
// at the candidate resolutions, nearest to the requested size first.
func resolveThemeIcon(name string, size int) (image.Image, error) {
	if filepath.IsAbs(name) {
		return decodeImageFile(name)
	}

	home, _ := os.UserHomeDir()
	ordered := orderedBySizeDistance(candidateSizes, size)

	var roots []string
	if home != "" {
		roots = append(roots, filepath.Join(home, ".local", "share", "icons"))
	}
	roots = append(roots, "/usr/share/icons")

	for _, root := range roots {
		for _, s := range ordered {
			dir := filepath.Join(root, "hicolor", fmt.Sprintf("%dx%d", s, s), "apps")
			if img, err := decodeImageFile(filepath.Join(dir, name+".png")); err == nil {
				return img, nil
			}
		}
	}

	if img, err := decodeImageFile(filepath.Join("/usr/share/pixmaps", name+".png")); err == nil {
		return img, nil
	}

	return nil, fmt.Errorf("icon %q not found in theme directories", name)
}

func orderedBySizeDistance(sizes []int, want int) []int {
	out := append([]int(nil), sizes...)
	// Insertion sort by distance to the wanted size; the list is tiny.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && dist(out[j], want) < dist(out[j-1], want); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func dist(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
