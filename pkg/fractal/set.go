package fractal

import (
	"io"
	"strings"

	"github.com/matzehuels/fractals/pkg/errors"
)

// Kind identifies a fractal family.
type Kind int

const (
	KindMandelbrot Kind = iota
	KindJulia
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "mandelbrot"
	case KindJulia:
		return "julia"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "mandelbrot":
		return KindMandelbrot, nil
	case "julia":
		return KindJulia, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPreset, "unknown fractal kind %q", s)
}

// Set is a fractal ready to be rendered onto a raster. It is immutable once
// constructed.
type Set struct {
	kind          Kind
	size          Size
	bounds        Bounds
	maxIterations int
	c             complex128
}

// NewMandelbrot returns the Mandelbrot set over bounds.
func NewMandelbrot(size Size, bounds Bounds, maxIterations int) (*Set, error) {
	return newSet(KindMandelbrot, size, bounds, maxIterations, 0)
}

// NewJulia returns the filled Julia set of z² + c over bounds.
func NewJulia(size Size, bounds Bounds, maxIterations int, c complex128) (*Set, error) {
	return newSet(KindJulia, size, bounds, maxIterations, c)
}

func newSet(kind Kind, size Size, bounds Bounds, maxIterations int, c complex128) (*Set, error) {
	if size.width < 1 || size.height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size must be built with NewSize")
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if maxIterations < 1 {
		return nil, errors.New(errors.ErrCodeInvalidIterations, "max iterations must be positive, got %d", maxIterations)
	}
	return &Set{
		kind:          kind,
		size:          size,
		bounds:        bounds,
		maxIterations: maxIterations,
		c:             c,
	}, nil
}

// Kind returns the fractal family of s.
func (s *Set) Kind() Kind { return s.kind }

// Size returns the raster s renders onto.
func (s *Set) Size() Size { return s.size }

// Bounds returns the region of the complex plane covered by the raster.
func (s *Set) Bounds() Bounds { return s.bounds }

// MaxIterations returns the escape-time cap.
func (s *Set) MaxIterations() int { return s.maxIterations }

// Parameter returns the constant c of a Julia set. It is zero for the
// Mandelbrot set.
func (s *Set) Parameter() complex128 { return s.c }

// seed returns the starting value and the constant of the orbit for the
// point (x, y).
func (s *Set) seed(x, y float64) (z0, c complex128) {
	if s.kind == KindJulia {
		return complex(x, y), s.c
	}
	return 0, complex(x, y)
}

// At returns the escape time of the raster cell at pos.
func (s *Set) At(pos int) int {
	z0, c := s.seed(Transform(s.size, s.bounds, pos))
	return Iterations(z0, c, s.maxIterations)
}

// String renders the set row by row, top to bottom, each row terminated by
// a newline.
func (s *Set) String() string {
	var b strings.Builder
	// Hint only: Symbol may return multi-byte runes.
	b.Grow(s.size.Pixels() + s.size.height)

	for row := 0; row < s.size.height; row++ {
		base := row * s.size.width
		for col := 0; col < s.size.width; col++ {
			b.WriteRune(Symbol(s.At(base + col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendering to w.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
