// SPDX-License-Identifier: MIT

package cuts

import "math"

// Weights returns exp(-normalize(cost)) for every cut in sorted order, where
// normalize is min-max scaling to [0,1]. Cheaper cuts weigh more; the
// cheapest cut weighs 1 and the most expensive exp(-1). When all costs are
// equal every weight is 1.
func (c *Cuts) Weights() []float64 {
	return ExpNegNormalized(c.costs)
}

// ExpNegNormalized applies exp(-minmax(x)) element-wise. Infinite inputs
// are clamped so the result stays finite.
func ExpNegNormalized(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsInf(x, 0) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	span := hi - lo
	var i int
	var n float64
	for i = range xs {
		switch {
		case math.IsInf(xs[i], 1):
			n = 1
		case math.IsInf(xs[i], -1) || span <= 0 || math.IsInf(span, 0):
			n = 0
		default:
			n = (xs[i] - lo) / span
		}
		out[i] = math.Exp(-n)
	}

	return out
}
