// SPDX-License-Identifier: MIT

package point

// NoDuration marks a Point whose duration is not defined.
const NoDuration = -1.0

// Point is a single scan set-point.
type Point struct {
	// Positions maps axis name to demand position.
	Positions map[string]float64
	// Lower maps axis name to the lower bound of the integration window.
	Lower map[string]float64
	// Upper maps axis name to the upper bound of the integration window.
	Upper map[string]float64
	// Indexes holds one index per dimension (or a single flat index).
	Indexes []int
	// Duration is the exposure time, or NoDuration.
	Duration float64
	// DelayAfter is the settle time requested after this point.
	DelayAfter float64
}

// New returns an empty Point with allocated maps and no duration.
func New() Point {
	return Point{
		Positions: make(map[string]float64),
		Lower:     make(map[string]float64),
		Upper:     make(map[string]float64),
		Duration:  NoDuration,
	}
}

// Clone returns a deep copy of p. Mutators use it so the caller's Point is
// never modified in place.
func (p Point) Clone() Point {
	out := Point{
		Positions:  copyMap(p.Positions),
		Lower:      copyMap(p.Lower),
		Upper:      copyMap(p.Upper),
		Duration:   p.Duration,
		DelayAfter: p.DelayAfter,
	}
	if p.Indexes != nil {
		out.Indexes = append([]int(nil), p.Indexes...)
	}

	return out
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
