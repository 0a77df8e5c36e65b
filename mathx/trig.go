// Package mathx provides small numeric helpers for positional calculations.
package mathx

import "math"

// SinCos computes the sine and cosine of value in a single call.
//
// The ok flag is a best-effort numerical validity signal: it is false when
// the input or either result is NaN or infinite. The sin and cos values are
// written regardless of the flag. Platforms with floating-point exception
// introspection can detect invalid/overflow/underflow conditions directly;
// Go exposes no such flags, so this check is advisory only and cannot flag
// gradual underflow on an otherwise finite result.
func SinCos(value float64) (sin, cos float64, ok bool) {
	sin, cos = math.Sincos(value)

	ok = !math.IsNaN(sin) && !math.IsInf(sin, 0) &&
		!math.IsNaN(cos) && !math.IsInf(cos, 0)

	return sin, cos, ok
}
