package types

// Location is the outcome of a best-effort location lookup. When Available is
// false the coordinates are meaningless.
type Location struct {
	Available bool
	Lat       float64
	Lon       float64
}

// Located returns an available Location.
func Located(lat, lon float64) Location {
	return Location{Available: true, Lat: lat, Lon: lon}
}

// Unavailable is the degraded outcome of a failed, denied or timed-out lookup.
var Unavailable = Location{}
