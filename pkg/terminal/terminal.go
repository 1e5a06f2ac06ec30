// Package terminal finds the text-display size of the controlling terminal
// and derives a raster that fills it without distorting the picture.
//
// Terminal cells are much taller than they are wide, so a raster that simply
// copied the terminal dimensions would look stretched. [Fit] trades columns
// for rows using an assumed glyph aspect ratio (see [DefaultGlyphAspect]).
package terminal

import (
	"os"

	"golang.org/x/term"

	"github.com/matzehuels/fractals/pkg/errors"
)

// Sizer reports the current size of a text display in character cells.
type Sizer interface {
	Size() (width, height int, err error)
}

// Fixed is a Sizer that always reports the same dimensions.
type Fixed struct {
	Width, Height int
}

// Size implements Sizer.
func (f Fixed) Size() (int, int, error) {
	return f.Width, f.Height, nil
}

// fdSizer queries the terminal attached to one of a list of files.
type fdSizer struct {
	files []*os.File
}

// NewSizer returns a Sizer for the controlling terminal. Standard output is
// consulted first, then standard error and standard input, so the size is
// still found when one of them is redirected.
func NewSizer() Sizer {
	return fdSizer{files: []*os.File{os.Stdout, os.Stderr, os.Stdin}}
}

// Size implements Sizer.
func (s fdSizer) Size() (int, int, error) {
	var lastErr error
	for _, f := range s.files {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		w, h, err := term.GetSize(fd)
		if err != nil {
			lastErr = err
			continue
		}
		if w > 0 && h > 0 {
			return w, h, nil
		}
	}
	if lastErr != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeTerminalSize, lastErr, "unable to get terminal size")
	}
	return 0, 0, errors.New(errors.ErrCodeTerminalSize, "unable to get terminal size: not attached to a terminal")
}
