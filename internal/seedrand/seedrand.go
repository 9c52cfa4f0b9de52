// Package seedrand provides the deterministic value source the supplier
// corpus is derived from. It is intentionally not a PRNG: every value is a
// pure function of its seed, so any record field can be recomputed in
// isolation and the corpus is identical on every run.
package seedrand

import "math"

// Value maps an integer seed to a value in [0, 1). The transform is the
// fractional part of sin(seed)*10000 in IEEE 754 double precision; changing
// it changes every generated record, so it must stay bit-exact.
func Value(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}
