// Package media provides image processing for uploaded photos
package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Thumbnailer produces fixed-width JPEG thumbnails next to the originals
type Thumbnailer struct {
	width int
}

// NewThumbnailer creates a thumbnailer producing images of the given width
func NewThumbnailer(width int) *Thumbnailer {
	return &Thumbnailer{width: width}
}

// IsImage reports whether the filename looks like a decodable raster image
func IsImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// CreateThumbnail writes a resized copy of the image at srcPath into the
// same directory and returns the thumbnail path. Aspect ratio is preserved.
func (t *Thumbnailer) CreateThumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", srcPath, err)
	}

	resized := imaging.Resize(img, t.width, 0, imaging.Lanczos)

	ext := filepath.Ext(srcPath)
	base := strings.TrimSuffix(filepath.Base(srcPath), ext)
	thumbPath := filepath.Join(filepath.Dir(srcPath), fmt.Sprintf("%s_%dpx.jpg", base, t.width))

	if err := imaging.Save(resized, thumbPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail %s: %w", thumbPath, err)
	}

	return thumbPath, nil
}
