package routing

import (
	"math"
	"testing"

	"relief-route-service/internal/domain"
)

func TestBlendedRouteEchoesWeights(t *testing.T) {
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "a", Location: domain.Location{Lat: 0, Lon: 0.01}, Urgency: 1, Quantity: 1, Timestamp: 100},
	}

	plan := BlendedRoute(demands, testVehicle, 0.7, 0.3)

	if plan.Mode != domain.ModeBlended {
		t.Fatalf("mode = %q, want %q", plan.Mode, domain.ModeBlended)
	}
	if plan.Metadata.Algorithm != "weighted_scoring" {
		t.Errorf("algorithm = %q, want weighted_scoring", plan.Metadata.Algorithm)
	}
	if plan.Metadata.UrgencyWeight == nil || *plan.Metadata.UrgencyWeight != 0.7 {
		t.Errorf("urgency weight = %v, want exactly 0.7", plan.Metadata.UrgencyWeight)
	}
	if plan.Metadata.DistanceWeight == nil || *plan.Metadata.DistanceWeight != 0.3 {
		t.Errorf("distance weight = %v, want exactly 0.3", plan.Metadata.DistanceWeight)
	}
}

func TestBlendedRoutePrefersUrgencyWithinReach(t *testing.T) {
	// The critical request is farther away but its urgency reward
	// dominates the normalized distance penalty.
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "close-routine", Location: domain.Location{Lat: 0, Lon: 0.01}, Urgency: 1, Quantity: 1, Timestamp: 100},
		{ID: 2, NodeID: "far-critical", Location: domain.Location{Lat: 0, Lon: 0.05}, Urgency: 3, Quantity: 1, Timestamp: 200},
	}

	plan := BlendedRoute(demands, testVehicle, 0.6, 0.4)

	if plan.Stops[0].NodeID != "far-critical" {
		t.Errorf("first stop = %q, want far-critical", plan.Stops[0].NodeID)
	}
	if len(plan.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(plan.Stops))
	}
}

func TestBlendedRouteCoLocatedDemands(t *testing.T) {
	// All demands sit exactly at the depot: max distance is zero and the
	// normalization denominator falls back to 1.0.
	at := testVehicle.Depot
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "a", Location: at, Urgency: 1, Quantity: 1, Timestamp: 100},
		{ID: 2, NodeID: "b", Location: at, Urgency: 3, Quantity: 1, Timestamp: 200},
		{ID: 3, NodeID: "c", Location: at, Urgency: 3, Quantity: 1, Timestamp: 300},
	}

	plan := BlendedRoute(demands, testVehicle, 0.6, 0.4)

	if len(plan.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(plan.Stops))
	}
	if math.IsNaN(plan.TotalDistanceKm) {
		t.Fatal("total distance is NaN")
	}
	if plan.TotalDistanceKm != 0 {
		t.Errorf("total distance = %v, want 0 for co-located demands", plan.TotalDistanceKm)
	}
	// Highest score wins; among equal scores the first occurrence wins.
	if plan.Stops[0].NodeID != "b" {
		t.Errorf("first stop = %q, want b (highest urgency, first occurrence)", plan.Stops[0].NodeID)
	}
	if plan.Stops[1].NodeID != "c" {
		t.Errorf("second stop = %q, want c", plan.Stops[1].NodeID)
	}
}

func TestBlendedRouteEmptyInput(t *testing.T) {
	plan := BlendedRoute(nil, testVehicle, 0.6, 0.4)

	if len(plan.Stops) != 0 || plan.TotalDistanceKm != 0 {
		t.Error("empty input must produce an empty plan with zero metrics")
	}
	if plan.Metadata.UrgencyWeight == nil || *plan.Metadata.UrgencyWeight != 0.6 {
		t.Error("weights must be echoed even for empty input")
	}
}
