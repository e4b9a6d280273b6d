// Package geo converts between projected geographic coordinates and the
// scene's local coordinate frame.
package geo

import "github.com/peterbaudains/vizue/editor/math"

// DefaultUnitsPerMeter is the scene unit scale: engine coordinates are
// measured in centimeters.
const DefaultUnitsPerMeter = 100.0

// WorldTransform places the scene origin at a point in a planar coordinate
// reference system and converts projected coordinates into scene-local
// units. The second axis is negated because the scene's y-axis runs
// opposite to northing.
type WorldTransform struct {
	OriginEasting  float64
	OriginNorthing float64
	UnitsPerMeter  float64
}

// NewWorldTransform returns a transform with the scene origin at the given
// easting/northing and the default centimeter unit scale.
func NewWorldTransform(originEasting, originNorthing float64) WorldTransform {
	return WorldTransform{
		OriginEasting:  originEasting,
		OriginNorthing: originNorthing,
		UnitsPerMeter:  DefaultUnitsPerMeter,
	}
}

// ToLocal converts a projected easting/northing pair into scene-local x/y.
func (t WorldTransform) ToLocal(easting, northing float64) (float64, float64) {
	x := t.UnitsPerMeter * (easting - t.OriginEasting)
	y := -1 * t.UnitsPerMeter * (northing - t.OriginNorthing)
	return x, y
}

// ToLocalVec converts a projected coordinate and an elevation into a
// scene-local position.
func (t WorldTransform) ToLocalVec(easting, northing, z float64) math.Vec3 {
	x, y := t.ToLocal(easting, northing)
	return math.Vec3{X: x, Y: y, Z: z}
}
