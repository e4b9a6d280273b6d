package colormap

import "github.com/peterbaudains/vizue/editor/math"

// Normalize maps raw values onto the unit interval. The zero value is not
// usable; callers must always choose bounds explicitly, a default is never
// assumed.
type Normalize struct {
	VMin float64
	VMax float64
}

// Norm returns v scaled into [0, 1], clamped at both ends. A degenerate
// range maps everything to 0.
func (n Normalize) Norm(v float64) float64 {
	if n.VMax == n.VMin {
		return 0
	}
	return math.Clamp((v-n.VMin)/(n.VMax-n.VMin), 0.0, 1.0)
}

// FromValues builds a Normalize spanning the observed minimum and maximum
// of the given category values.
func FromValues(values []int) Normalize {
	if len(values) == 0 {
		return Normalize{}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Normalize{VMin: float64(min), VMax: float64(max)}
}
