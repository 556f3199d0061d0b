package domain

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic location in decimal degrees (WGS84).
// Coordinate range enforcement (-90..90, -180..180) is the caller's contract;
// values are not validated or clamped here.
type Location struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance to other in kilometers using
// the Haversine formula. The result is symmetric and zero only for exactly
// equal coordinates. Ellipsoidal error is acceptable for sub-100 km regional
// routing.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := radians(l.Lat)
	lat2 := radians(other.Lat)
	dlat := radians(other.Lat - l.Lat)
	dlon := radians(other.Lon - l.Lon)

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)

	// Rounding can push h just outside [0, 1] for coincident or antipodal
	// points, which would make the square roots produce NaN.
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
