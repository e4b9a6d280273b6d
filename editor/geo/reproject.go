package geo

import (
	"fmt"
	stdmath "math"

	proj "github.com/xeonx/proj4"
)

// Reprojector converts WGS84 longitude/latitude pairs into a planar
// coordinate reference system.
type Reprojector interface {
	Reproject(lon, lat float64) (x, y float64, err error)
	Close()
}

// proj4 init strings for the supported target systems.
var sridDefinitions = map[int]string{
	3857:  "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +no_defs",
	27700: "+proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 +x_0=400000 +y_0=-100000 +ellps=airy +towgs84=446.448,-125.157,542.060,0.1502,0.2470,0.8421,-20.4894 +units=m +no_defs",
	32630: "+proj=utm +zone=30 +datum=WGS84 +units=m +no_defs",
}

const wgs84Definition = "+proj=longlat +datum=WGS84 +no_defs"

// Proj4Reprojector reprojects coordinates through the proj.4 library.
type Proj4Reprojector struct {
	source *proj.Proj
	target *proj.Proj
}

// NewProj4Reprojector builds a reprojector from WGS84 lon/lat to the planar
// system identified by the given EPSG code.
func NewProj4Reprojector(targetSrid int) (*Proj4Reprojector, error) {
	def, ok := sridDefinitions[targetSrid]
	if !ok {
		return nil, fmt.Errorf("unsupported target srid %d", targetSrid)
	}
	source, err := proj.InitPlus(wgs84Definition)
	if err != nil {
		return nil, fmt.Errorf("init wgs84 projection: %w", err)
	}
	target, err := proj.InitPlus(def)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("init srid %d projection: %w", targetSrid, err)
	}
	return &Proj4Reprojector{source: source, target: target}, nil
}

func (r *Proj4Reprojector) Reproject(lon, lat float64) (float64, float64, error) {
	// proj.4 raw transforms take angular coordinates in radians.
	x := []float64{lon * stdmath.Pi / 180}
	y := []float64{lat * stdmath.Pi / 180}
	if err := proj.TransformRaw(r.source, r.target, x, y, nil); err != nil {
		return 0, 0, fmt.Errorf("transform (%f, %f): %w", lon, lat, err)
	}
	return x[0], y[0], nil
}

func (r *Proj4Reprojector) Close() {
	r.source.Close()
	r.target.Close()
}
