// Package background provisions the still image that convert loops under
// each audio track. A missing image is synthesized once as a solid black
// frame; an existing one is used as-is whatever its size.
package background

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"

	"github.com/backmassage/audiobatch/internal/layout"
)

// JPEGQuality matches the quality the default image was always saved at.
const JPEGQuality = 95

// Ensure makes sure an image exists at path. When it is absent, a
// width×height solid black image is written (format from the extension)
// and created is true. An existing file is never touched or inspected.
func Ensure(path string, width, height int) (created bool, err error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		if fi.IsDir() {
			return false, fmt.Errorf("background %s is a directory", path)
		}
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat background: %w", err)
	}

	if width <= 0 || height <= 0 {
		return false, fmt.Errorf("invalid background size %dx%d", width, height)
	}
	if err := layout.EnsureParent(path); err != nil {
		return false, err
	}

	img := imaging.New(width, height, color.Black)
	if err := imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return false, fmt.Errorf("write background: %w", err)
	}
	return true, nil
}
