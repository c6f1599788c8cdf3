// Package intake turns image files on disk into engine photos. Only the
// image header is parsed to get pixel dimensions; full pixel data is never
// decoded.
package intake

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	// Register decoders for the supported formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kozaktomas/photo-collage/internal/engine"
)

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// Supported reports whether the file name carries a recognized image
// extension.
func Supported(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Read parses the image header of the file and returns a photo with a fresh
// ID and the image's pixel dimensions.
func Read(path string) (engine.Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Photo{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return engine.Photo{}, fmt.Errorf("could not read image header of %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return engine.Photo{}, fmt.Errorf("%s: %s image has degenerate dimensions %dx%d", path, format, cfg.Width, cfg.Height)
	}

	return engine.Photo{
		ID:     uuid.NewString(),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// ScanDir lists the supported image files directly inside dir, sorted by
// name. Subdirectories are not descended into.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
