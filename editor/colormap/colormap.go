// Package colormap maps values in the unit interval onto colors. Maps are
// looked up by name from a registry so run configurations can select one
// without touching code.
package colormap

import (
	"fmt"
	"sort"

	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/math"
)

// Map is a color map defined by a list of evenly spaced color stops.
type Map struct {
	Name  string
	Stops []math.LinearColor
}

// At returns the color for a value in [0, 1], linearly interpolated between
// the two surrounding stops. Values outside the unit interval are clamped.
func (m *Map) At(v float64) math.LinearColor {
	v = math.Clamp(v, 0.0, 1.0)
	if len(m.Stops) == 1 {
		return m.Stops[0]
	}
	scaled := v * float64(len(m.Stops)-1)
	idx := int(scaled)
	if idx >= len(m.Stops)-1 {
		return m.Stops[len(m.Stops)-1]
	}
	t := scaled - float64(idx)
	lo, hi := m.Stops[idx], m.Stops[idx+1]
	return math.LinearColor{
		R: math.Lerp(lo.R, hi.R, t),
		G: math.Lerp(lo.G, hi.G, t),
		B: math.Lerp(lo.B, hi.B, t),
		A: math.Lerp(lo.A, hi.A, t),
	}
}

// AvailableMaps is the registry of color maps, keyed by name.
var AvailableMaps = map[string]*Map{}

func register(m *Map) {
	AvailableMaps[m.Name] = m
}

// MapByName returns the registered map with the given name.
func MapByName(name string) (*Map, error) {
	m, ok := AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, core.ErrUnknownColorMap)
	}
	return m, nil
}

// AvailableMapNames returns the registered map names, sorted.
func AvailableMapNames() []string {
	names := make([]string, 0, len(AvailableMaps))
	for name := range AvailableMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rgb(r, g, b float64) math.LinearColor {
	return math.LinearColor{R: r, G: g, B: b, A: 1}
}

func init() {
	register(&Map{Name: "autumn", Stops: []math.LinearColor{
		rgb(1, 0, 0), rgb(1, 1, 0),
	}})
	register(&Map{Name: "spring", Stops: []math.LinearColor{
		rgb(1, 0, 1), rgb(1, 1, 0),
	}})
	register(&Map{Name: "cool", Stops: []math.LinearColor{
		rgb(0, 1, 1), rgb(1, 0, 1),
	}})
	register(&Map{Name: "winter", Stops: []math.LinearColor{
		rgb(0, 0, 1), rgb(0, 1, 0.5),
	}})
	register(&Map{Name: "gray", Stops: []math.LinearColor{
		rgb(0, 0, 0), rgb(1, 1, 1),
	}})
	register(&Map{Name: "viridis", Stops: []math.LinearColor{
		rgb(0.267, 0.005, 0.329),
		rgb(0.283, 0.141, 0.458),
		rgb(0.254, 0.265, 0.530),
		rgb(0.207, 0.372, 0.553),
		rgb(0.164, 0.471, 0.558),
		rgb(0.128, 0.567, 0.551),
		rgb(0.135, 0.659, 0.518),
		rgb(0.267, 0.749, 0.441),
		rgb(0.478, 0.821, 0.318),
		rgb(0.741, 0.873, 0.150),
		rgb(0.993, 0.906, 0.144),
	}})
}
