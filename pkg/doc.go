// Package pkg provides the libraries behind the mandelbrot and julia
// commands, which draw escape-time fractals as ASCII art sized to the
// terminal.
//
// # Overview
//
//  1. [fractal] - Raster geometry, escape-time evaluation, symbol mapping, rendering
//  2. [terminal] - Terminal size query and aspect-preserving raster fit
//  3. [preset] - Bundled regions and iteration caps (embedded TOML)
//  4. [pipeline] - Orchestration (size → fit → build → render)
//
// Supporting packages:
//
//   - [errors] - Structured error codes
//   - [observability] - Render hooks
//   - [buildinfo] - Version information
//
// # Architecture
//
//	terminal.Sizer (columns × rows)
//	         ↓
//	    terminal.Fit (raster with odd height)
//	         ↓
//	    preset.Build (fractal.Set)
//	         ↓
//	    fractal.Set.String (one line per raster row)
//	         ↓
//	      stdout
//
// # Quick Start
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/fractals/pkg/fractal"
//	    "github.com/matzehuels/fractals/pkg/terminal"
//	)
//
//	size, _ := terminal.Fit(120, 30, terminal.DefaultGlyphAspect) // 90x29
//	bounds, _ := fractal.NewBounds(-1.5, 1.5, -1.5, 1.5)
//	set, _ := fractal.NewJulia(size, bounds, 1000, complex(0, 0.7))
//	fmt.Print(set)
package pkg
