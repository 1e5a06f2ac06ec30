package terminal

import (
	"github.com/matzehuels/fractals/pkg/errors"
	"github.com/matzehuels/fractals/pkg/fractal"
)

// DefaultGlyphAspect is the assumed ratio between the width a raster needs
// and its height for the picture to look square on a typical terminal font.
const DefaultGlyphAspect = 3.0

// Fit returns the largest raster with the given aspect ratio that fits in a
// width × height terminal. The dimension that does not limit the fit keeps
// the terminal's value, the other is scaled and truncated. The height is
// then forced odd (h - 1 + h%2).
func Fit(width, height int, aspect float64) (fractal.Size, error) {
	if width < 1 || height < 1 {
		return fractal.Size{}, errors.New(errors.ErrCodeInvalidSize, "terminal size %dx%d is not positive", width, height)
	}
	if aspect <= 0 {
		return fractal.Size{}, errors.New(errors.ErrCodeInvalidSize, "glyph aspect must be positive, got %g", aspect)
	}

	w, h := float64(width), float64(height)
	if w <= aspect*h {
		h = w / aspect
	} else {
		w = h * aspect
	}

	cols, rows := int(w), int(h)
	rows = rows - 1 + rows%2

	size, err := fractal.NewSize(cols, rows)
	if err != nil {
		return fractal.Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "terminal %dx%d is too small", width, height)
	}
	return size, nil
}
