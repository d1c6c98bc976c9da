package geo

import (
	"math"
)

const earthRadiusMeters = 6371008.8

// Point is a [longitude, latitude] pair, the order used by GeoJSON and the
// geospatial indices of every store.
type Point [2]float64

func NewPoint(lon, lat float64) Point { return Point{lon, lat} }

func (p Point) Lon() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Ring is a closed sequence of positions (first == last).
type Ring []Point

// Polygon is a GeoJSON polygon: the outer ring followed by optional holes.
type Polygon []Ring

// PolygonFromCoordinates converts raw [[[lon, lat], ...], ...] input.
// Callers validate shape first; positions shorter than 2 are zero-filled.
func PolygonFromCoordinates(rings [][][]float64) Polygon {
	out := make(Polygon, 0, len(rings))
	for _, r := range rings {
		ring := make(Ring, 0, len(r))
		for _, pos := range r {
			var p Point
			copy(p[:], pos)
			ring = append(ring, p)
		}
		out = append(out, ring)
	}
	return out
}

// Coordinates is the inverse of PolygonFromCoordinates.
func (pg Polygon) Coordinates() [][][]float64 {
	out := make([][][]float64, 0, len(pg))
	for _, r := range pg {
		ring := make([][]float64, 0, len(r))
		for _, p := range r {
			ring = append(ring, []float64{p[0], p[1]})
		}
		out = append(out, ring)
	}
	return out
}

// Contains reports whether p lies inside the outer ring and outside every hole.
// Points on an edge count as inside.
func (pg Polygon) Contains(p Point) bool {
	if len(pg) == 0 || !pg[0].contains(p) {
		return false
	}
	for _, hole := range pg[1:] {
		if hole.contains(p) && !hole.onEdge(p) {
			return false
		}
	}
	return true
}

// Area is the planar area of the outer ring minus holes, in square degrees.
// Only used to rank nested regions, so the projection does not matter.
func (pg Polygon) Area() float64 {
	if len(pg) == 0 {
		return 0
	}
	a := math.Abs(pg[0].signedArea())
	for _, hole := range pg[1:] {
		a -= math.Abs(hole.signedArea())
	}
	return a
}

func (r Ring) signedArea() float64 {
	var sum float64
	for i := 0; i+1 < len(r); i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	return sum / 2
}

// contains is an even-odd ray cast with explicit edge handling.
func (r Ring) contains(p Point) bool {
	if r.onEdge(p) {
		return true
	}
	inside := false
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		xi, yi := r[i][0], r[i][1]
		xj, yj := r[j][0], r[j][1]
		if (yi > p[1]) != (yj > p[1]) {
			x := (xj-xi)*(p[1]-yi)/(yj-yi) + xi
			if p[0] < x {
				inside = !inside
			}
		}
	}
	return inside
}

func (r Ring) onEdge(p Point) bool {
	const eps = 1e-12
	for i := 0; i+1 < len(r); i++ {
		a, b := r[i], r[i+1]
		cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
		if math.Abs(cross) > eps {
			continue
		}
		if p[0] >= math.Min(a[0], b[0])-eps && p[0] <= math.Max(a[0], b[0])+eps &&
			p[1] >= math.Min(a[1], b[1])-eps && p[1] <= math.Max(a[1], b[1])+eps {
			return true
		}
	}
	return false
}

// DistanceMeters is the haversine great-circle distance.
func DistanceMeters(a, b Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
