package geo

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 12.9750, Lng: 77.6000}, {Lat: 12.9800, Lng: 77.6400}},
		{{Lat: 12.9350, Lng: 77.6150}, {Lat: 12.9700, Lng: 77.7500}},
		{{Lat: 0, Lng: 0}, {Lat: -45.5, Lng: 170.2}},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("distance not symmetric: %v vs %v for %v", ab, ba, p)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	c := Coordinate{Lat: 12.9750, Lng: 77.6000}
	if d := Distance(c, c); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// MG Road to Indiranagar, roughly 4.4 km on a spherical earth.
	a := Coordinate{Lat: 12.9750, Lng: 77.6000}
	b := Coordinate{Lat: 12.9800, Lng: 77.6400}
	d := Distance(a, b)
	if d < 4.0 || d > 4.8 {
		t.Fatalf("unexpected distance %v", d)
	}
	// One decimal place only.
	if math.Round(d*10) != d*10 {
		t.Fatalf("distance %v not rounded to one decimal", d)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	a := Coordinate{Lat: math.NaN(), Lng: 77.6}
	b := Coordinate{Lat: 12.97, Lng: 77.6}
	if d := Distance(a, b); !math.IsNaN(d) {
		t.Fatalf("expected NaN, got %v", d)
	}
}

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		code int
		want PositionFailure
	}{
		{1, FailurePermissionDenied},
		{2, FailurePositionUnavailable},
		{3, FailureTimeout},
		{0, FailureUnknown},
		{42, FailureUnknown},
	}
	for _, tc := range cases {
		if got := ClassifyFailure(tc.code); got != tc.want {
			t.Errorf("code %d: got %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestFailureMessageNeverEmpty(t *testing.T) {
	for _, f := range []PositionFailure{
		FailurePermissionDenied, FailurePositionUnavailable, FailureTimeout, FailureUnknown,
	} {
		if f.Message() == "" {
			t.Errorf("empty message for %s", f)
		}
	}
}
