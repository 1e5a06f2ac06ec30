// Package pipeline wires the terminal, preset and fractal packages into the
// single operation both executables perform.
//
// # Architecture
//
// A render runs four stages:
//
//  1. Size: ask the [terminal.Sizer] for the display size
//  2. Fit: derive a raster that keeps the picture square ([terminal.Fit])
//  3. Build: construct the preset's [fractal.Set] on that raster
//  4. Render: write the text rendering to the output
//
// Only the first stage can fail at run time. There is no retry and no
// fallback size: without a terminal nothing is written.
//
// # Usage
//
//	runner := pipeline.NewRunner(terminal.NewSizer(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Preset: preset.Julia}, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fractals/pkg/errors"
	"github.com/matzehuels/fractals/pkg/fractal"
	"github.com/matzehuels/fractals/pkg/preset"
	"github.com/matzehuels/fractals/pkg/terminal"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPreset is rendered when Options.Preset is empty.
	DefaultPreset = preset.Mandelbrot

	// DefaultGlyphAspect is used when Options.GlyphAspect is zero.
	DefaultGlyphAspect = terminal.DefaultGlyphAspect
)

// =============================================================================
// Options
// =============================================================================

// Options selects what to render.
type Options struct {
	Preset      string      // bundled preset name
	GlyphAspect float64     // raster width per row, see terminal.Fit
	Logger      *log.Logger // overrides the runner's logger when set
}

// ValidateAndSetDefaults fills in defaults and checks the result.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Preset == "" {
		o.Preset = DefaultPreset
	}
	if o.GlyphAspect == 0 {
		o.GlyphAspect = DefaultGlyphAspect
	}
	if o.GlyphAspect < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "glyph aspect must be positive, got %g", o.GlyphAspect)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result describes a finished render.
type Result struct {
	Terminal [2]int       // detected terminal width and height
	Size     fractal.Size // raster that was rendered
	Kind     fractal.Kind
	Bytes    int64 // bytes written to the output
	Stats    Stats
}

// Stats holds timing information.
type Stats struct {
	RenderTime time.Duration
}
