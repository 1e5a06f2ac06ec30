package fractal

import (
	"math"

	"github.com/matzehuels/fractals/pkg/errors"
)

// Size is the dimension of an output raster in character cells.
type Size struct {
	width  int
	height int
}

// NewSize returns a raster size of width columns and height rows.
// Both dimensions must be positive and their product must fit in an int,
// since pixels are addressed by a single linear index.
func NewSize(width, height int) (Size, error) {
	if width < 1 {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "width must be positive, got %d", width)
	}
	if height < 1 {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "height must be positive, got %d", height)
	}
	if height > math.MaxInt/width {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "raster %dx%d overflows pixel index", width, height)
	}
	return Size{width: width, height: height}, nil
}

// Width returns the number of columns.
func (s Size) Width() int { return s.width }

// Height returns the number of rows.
func (s Size) Height() int { return s.height }

// Pixels returns width × height.
func (s Size) Pixels() int { return s.width * s.height }

// Bounds is a rectangle of the complex plane: real axis [XMin, XMax],
// imaginary axis [YMin, YMax].
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewBounds validates and returns a Bounds.
func NewBounds(xMin, xMax, yMin, yMax float64) (Bounds, error) {
	b := Bounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate checks that all four values are finite and ordered.
func (b Bounds) Validate() error {
	for _, v := range []float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidBounds, "bounds must be finite, got %v", b)
		}
	}
	if b.XMin > b.XMax {
		return errors.New(errors.ErrCodeInvalidBounds, "x_min %g exceeds x_max %g", b.XMin, b.XMax)
	}
	if b.YMin > b.YMax {
		return errors.New(errors.ErrCodeInvalidBounds, "y_min %g exceeds y_max %g", b.YMin, b.YMax)
	}
	return nil
}

// Transform maps the raster index pos to the complex-plane coordinate at the
// center of its cell. pos must be in [0, size.Pixels()).
func Transform(size Size, bounds Bounds, pos int) (x, y float64) {
	col, row := pos%size.width, pos/size.width
	fx := (float64(col) + 0.5) / float64(size.width)
	fy := (float64(row) + 0.5) / float64(size.height)
	return bounds.XMin + fx*(bounds.XMax-bounds.XMin),
		bounds.YMin + fy*(bounds.YMax-bounds.YMin)
}
