package chart

import (
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"

	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

// MercatorMaxLat is the latitude bound of the square Web Mercator world
const MercatorMaxLat = 85.05112878

var toMercator = wgs84.EPSG().Transform(4326, 3857)

// Project maps a globe fix to EPSG:3857 meters
// Latitude is clamped to the Mercator bound
func Project(fix sky.GlobeFix) (x, y float64) {
	lat := vmath.ClampF(fix.Lat, -MercatorMaxLat, MercatorMaxLat)
	x, y, _ = toMercator(fix.Lon, lat, 0)
	return x, y
}

// Point returns the projected fix as a geometry
func Point(fix sky.GlobeFix) geom.Point {
	x, y := Project(fix)
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: x, Y: y},
		Type: geom.DimXY,
	})
}
