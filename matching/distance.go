package matching

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the haversine great-circle distance between two
// coordinates, rounded to the nearest whole kilometer. The rounding matches
// what the app shows on profile cards, so every surface reports the same
// number.
func DistanceKm(lat1, lon1, lat2, lon2 float64) int {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusKm * c))
}
