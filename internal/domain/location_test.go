package domain

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := []Location{
		{Lat: 0, Lon: 0},
		{Lat: 43.4643, Lon: -80.5204},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 90, Lon: 0},
	}

	for _, p := range points {
		if d := p.DistanceKm(p); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Location{Lat: 43.4643, Lon: -80.5204}
	b := Location{Lat: 45.4215, Lon: -75.6972}

	ab := a.DistanceKm(b)
	ba := b.DistanceKm(a)
	if ab != ba {
		t.Errorf("DistanceKm not symmetric: a->b = %v, b->a = %v", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("DistanceKm between distinct points = %v, want > 0", ab)
	}
}

func TestDistanceKmWaterlooToronto(t *testing.T) {
	waterloo := Location{Lat: 43.4643, Lon: -80.5204}
	toronto := Location{Lat: 43.6532, Lon: -79.3832}

	d := waterloo.DistanceKm(toronto)
	if d < 90 || d > 110 {
		t.Errorf("Waterloo-Toronto distance = %v km, want between 90 and 110", d)
	}
}

func TestDistanceKmNumericallyStable(t *testing.T) {
	// Near-antipodal pair can push the haversine term above 1.0.
	a := Location{Lat: 0, Lon: 0}
	b := Location{Lat: 0, Lon: 180}

	d := a.DistanceKm(b)
	if math.IsNaN(d) {
		t.Fatal("antipodal distance is NaN")
	}
	// Half the Earth's circumference, give or take.
	if d < 20000 || d > 20100 {
		t.Errorf("antipodal distance = %v km, want about 20015", d)
	}
}
