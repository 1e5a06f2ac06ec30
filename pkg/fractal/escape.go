package fractal

import "math/cmplx"

// EscapeRadius is the orbit magnitude beyond which a point is considered
// divergent.
const EscapeRadius = 2.0

// Iterations returns the escape time of the orbit z ← z² + c starting at z.
//
// The result is the first i in [0, maxIters] for which |z| > EscapeRadius
// after i steps, or maxIters when the orbit stays bounded for the whole run.
func Iterations(z, c complex128, maxIters int) int {
	for i := 0; i <= maxIters; i++ {
		if cmplx.Abs(z) > EscapeRadius {
			return i
		}
		z = z*z + c
	}
	return maxIters
}
