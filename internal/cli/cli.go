// Package cli implements the command-line front end shared by the mandelbrot
// and julia executables.
//
// Each executable is a single cobra command bound to one bundled preset. It
// takes no arguments and no render flags: the picture is sized from the
// terminal and everything else comes from the preset.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log so they never mix with the
// picture on stdout. The default level is info; --verbose (-v) enables debug
// output describing the detected terminal, the fitted raster and timings.
// Loggers are passed through context.Context.
//
// # Example
//
//	func main() {
//	    if err := cli.Execute(ctx, preset.Mandelbrot); err != nil {
//	        cli.PrintError(os.Stderr, err)
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fractals/pkg/buildinfo"
	"github.com/matzehuels/fractals/pkg/observability"
	"github.com/matzehuels/fractals/pkg/pipeline"
	"github.com/matzehuels/fractals/pkg/preset"
	"github.com/matzehuels/fractals/pkg/terminal"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// descriptions holds the help text of each bundled preset.
var descriptions = map[string]struct{ short, long string }{
	preset.Mandelbrot: {
		short: "Draw the Mandelbrot set in the terminal",
		long: `Draw the Mandelbrot set as ASCII art, sized to fit the current terminal.

The region [-2, 1] × [-1, 1] of the complex plane is sampled at the center
of every character cell and each cell is shaded by how quickly its orbit
escapes, using up to 1000 iterations.`,
	},
	preset.Julia: {
		short: "Draw the Julia set for c = 0.7i in the terminal",
		long: `Draw the filled Julia set of z² + 0.7i as ASCII art, sized to fit the
current terminal.

The region [-1.5, 1.5] × [-1.5, 1.5] of the complex plane is sampled at the
center of every character cell and each cell is shaded by how quickly its
orbit escapes, using up to 1000 iterations.`,
	},
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Sizer  terminal.Sizer
}

// New creates a new CLI instance that logs to w and reads the size of the
// controlling terminal.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Sizer:  terminal.NewSizer(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the cobra command rendering the named preset.
func (c *CLI) RootCommand(name string) *cobra.Command {
	desc := descriptions[name]

	root := &cobra.Command{
		Use:           name,
		Short:         desc.short,
		Long:          desc.long,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetRenderHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), name, cmd.OutOrStdout())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	return root
}

// runRender renders the preset onto the terminal and writes it to w.
func (c *CLI) runRender(ctx context.Context, name string, w io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(c.Sizer, logger)
	result, err := runner.Execute(ctx, pipeline.Options{Preset: name}, w)
	if err != nil {
		return err
	}

	prog.donef("Rendered %s on %dx%d raster, drawing took %s",
		result.Kind, result.Size.Width(), result.Size.Height(), result.Stats.RenderTime.Round(time.Microsecond))
	return nil
}

// Execute runs the command for the named preset with os.Args.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context, name string) error {
	return New(os.Stderr, LogInfo).Command(name).ExecuteContext(ctx)
}

// Command returns RootCommand(name) with the --verbose flag, which raises
// the logger to debug level before the render starts.
func (c *CLI) Command(name string) *cobra.Command {
	var verbose bool

	root := c.RootCommand(name)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		return originalPreRun(cmd, args)
	}
	return root
}
