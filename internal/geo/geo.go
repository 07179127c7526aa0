// Package geo provides great-circle distance computation and classification
// of device geolocation failures.  Distances are computed with the Haversine
// formula over a spherical earth and rounded to one decimal, matching what
// the discovery views display to users.
package geo

import "math"

// earthRadiusKm is the mean earth radius used by the Haversine formula.
const earthRadiusKm = 6371

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between a and b in kilometres,
// rounded to one decimal place.  The function is pure and performs no input
// validation; NaN coordinates propagate to a NaN result.
func Distance(a, b Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return math.Round(earthRadiusKm*c*10) / 10
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// PositionFailure identifies why a device geolocation read did not produce a
// position.  The numeric codes mirror the browser GeolocationPositionError
// constants so clients can forward the code they received unchanged.
type PositionFailure string

const (
	FailurePermissionDenied    PositionFailure = "permission-denied"
	FailurePositionUnavailable PositionFailure = "position-unavailable"
	FailureTimeout             PositionFailure = "timeout"
	FailureUnknown             PositionFailure = "unknown"
)

// ClassifyFailure maps a GeolocationPositionError code to a PositionFailure.
// Codes outside 1..3 classify as unknown.
func ClassifyFailure(code int) PositionFailure {
	switch code {
	case 1:
		return FailurePermissionDenied
	case 2:
		return FailurePositionUnavailable
	case 3:
		return FailureTimeout
	default:
		return FailureUnknown
	}
}

// Message returns the human-readable description surfaced to users when a
// geolocation read fails.  Wording follows the client notification copy.
func (f PositionFailure) Message() string {
	switch f {
	case FailurePermissionDenied:
		return "Location permission denied. Please enable it in your browser settings."
	case FailurePositionUnavailable:
		return "Location information is unavailable."
	case FailureTimeout:
		return "The request to get user location timed out."
	default:
		return "Unable to retrieve your location."
	}
}
