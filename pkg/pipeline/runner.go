package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fractals/pkg/observability"
	"github.com/matzehuels/fractals/pkg/preset"
	"github.com/matzehuels/fractals/pkg/terminal"
)

// Runner renders presets onto the display reported by its Sizer.
type Runner struct {
	Sizer  terminal.Sizer
	Logger *log.Logger
}

// NewRunner creates a runner.
// If sizer is nil, the controlling terminal is used.
// If logger is nil, log.Default() is used.
func NewRunner(sizer terminal.Sizer, logger *log.Logger) *Runner {
	if sizer == nil {
		sizer = terminal.NewSizer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Sizer:  sizer,
		Logger: logger,
	}
}

// Execute renders opts.Preset to fit the display and writes it to w.
// Nothing is written unless every earlier stage succeeded.
func (r *Runner) Execute(ctx context.Context, opts Options, w io.Writer) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := preset.Get(opts.Preset)
	if err != nil {
		return nil, err
	}

	// Stage 1: Size
	tw, th, err := r.Sizer.Size()
	observability.Render().OnSize(ctx, tw, th, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("detected terminal", "width", tw, "height", th)

	// Stage 2: Fit
	size, err := terminal.Fit(tw, th, opts.GlyphAspect)
	if err != nil {
		return nil, err
	}
	logger.Debug("fitted raster", "width", size.Width(), "height", size.Height(), "aspect", opts.GlyphAspect)

	// Stage 3: Build
	set, err := p.Build(size)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", p.Name, err)
	}
	b := set.Bounds()
	logger.Debug("built set", "preset", p.Name, "iterations", set.MaxIterations(),
		"x", fmt.Sprintf("[%g, %g]", b.XMin, b.XMax), "y", fmt.Sprintf("[%g, %g]", b.YMin, b.YMax))

	// Stage 4: Render
	kind := set.Kind().String()
	observability.Render().OnRenderStart(ctx, kind, size.Width(), size.Height())
	start := time.Now()
	out := set.String()
	elapsed := time.Since(start)

	n, err := io.WriteString(w, out)
	observability.Render().OnRenderComplete(ctx, kind, size.Pixels(), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", kind, err)
	}

	return &Result{
		Terminal: [2]int{tw, th},
		Size:     size,
		Kind:     set.Kind(),
		Bytes:    int64(n),
		Stats:    Stats{RenderTime: elapsed},
	}, nil
}
