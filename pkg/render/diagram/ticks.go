package diagram

import "math"

// niceStep rounds span/target to 1, 2 or 5 times a power of ten.
func niceStep(span float64, target int) float64 {
	if span <= 0 || target <= 0 {
		return 1
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f < 1.5:
		return mag
	case f < 3:
		return 2 * mag
	case f < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// axisTicks returns the multiples of a nice step inside [lo, hi].
func axisTicks(lo, hi float64, target int) []float64 {
	step := niceStep(hi-lo, target)
	// Rounding to the step's precision drops float noise like 0.30000000000000004.
	scale := math.Pow(10, math.Max(0, -math.Floor(math.Log10(step))))
	first := math.Ceil(lo / step)
	var ticks []float64
	for i := first; i*step <= hi+step*1e-9; i++ {
		v := math.Round(i*step*scale) / scale
		ticks = append(ticks, v+0) // +0 turns -0 into 0
	}
	return ticks
}
