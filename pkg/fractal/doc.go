// Package fractal renders escape-time fractals as text.
//
// A [Set] owns everything needed to draw one picture: the raster [Size], the
// region of the complex plane it covers ([Bounds]), the iteration cap and, for
// Julia sets, the constant c. Rendering walks the raster in row-major order:
//
//  1. [Transform] maps each cell to the complex coordinate at its center
//  2. [Iterations] counts steps of z ← z² + c until |z| exceeds 2
//  3. [Symbol] picks the character for that count
//
// Mandelbrot and Julia sets share the same loop and differ only in how the
// orbit is seeded: the Mandelbrot set starts at z = 0 with c taken from the
// cell, a Julia set starts at the cell with a fixed c.
//
// # Usage
//
//	size, _ := fractal.NewSize(90, 29)
//	bounds, _ := fractal.NewBounds(-2, 1, -1, 1)
//	set, _ := fractal.NewMandelbrot(size, bounds, 1000)
//	fmt.Print(set)
package fractal
