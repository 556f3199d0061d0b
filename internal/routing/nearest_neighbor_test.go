package routing

import (
	"testing"

	"relief-route-service/internal/domain"
)

var testVehicle = domain.Vehicle{
	Depot:    domain.Location{Lat: 0, Lon: 0},
	Capacity: 100,
}

func TestDistanceFocusedRouteVisitsNearestFirst(t *testing.T) {
	// Input deliberately out of geographic order.
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "far", Location: domain.Location{Lat: 0, Lon: 0.03}, Urgency: 1, Quantity: 1, Timestamp: 100},
		{ID: 2, NodeID: "near", Location: domain.Location{Lat: 0, Lon: 0.01}, Urgency: 1, Quantity: 1, Timestamp: 200},
		{ID: 3, NodeID: "mid", Location: domain.Location{Lat: 0, Lon: 0.02}, Urgency: 1, Quantity: 1, Timestamp: 300},
	}

	plan := DistanceFocusedRoute(demands, testVehicle)

	if plan.Mode != domain.ModeDistance {
		t.Fatalf("mode = %q, want %q", plan.Mode, domain.ModeDistance)
	}
	if len(plan.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(plan.Stops))
	}

	wantOrder := []string{"near", "mid", "far"}
	for i, want := range wantOrder {
		if plan.Stops[i].NodeID != want {
			t.Errorf("stop %d = %q, want %q", i, plan.Stops[i].NodeID, want)
		}
	}

	if plan.TotalDistanceKm <= 0 {
		t.Errorf("total distance = %v, want > 0", plan.TotalDistanceKm)
	}
	if plan.Metadata.Algorithm != "nearest_neighbor" {
		t.Errorf("algorithm = %q, want nearest_neighbor", plan.Metadata.Algorithm)
	}
	if plan.Metadata.ReturnToDepotKm == nil || *plan.Metadata.ReturnToDepotKm <= 0 {
		t.Error("return leg missing from metadata")
	}
}

func TestDistanceFocusedRouteSingleDemand(t *testing.T) {
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "node-a", Location: domain.Location{Lat: 0.01, Lon: 0.01}, Urgency: 2, Quantity: 5, Timestamp: 100},
	}

	plan := DistanceFocusedRoute(demands, testVehicle)

	if len(plan.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(plan.Stops))
	}
	if plan.Stops[0].NodeID != "node-a" {
		t.Errorf("stop node = %q, want node-a", plan.Stops[0].NodeID)
	}
	if plan.TotalDistanceKm <= 0 {
		t.Errorf("total distance = %v, want > 0", plan.TotalDistanceKm)
	}
	if plan.UrgentRequestsServed != 1 {
		t.Errorf("urgent served = %d, want 1", plan.UrgentRequestsServed)
	}
}

func TestDistanceFocusedRouteEmptyInput(t *testing.T) {
	plan := DistanceFocusedRoute(nil, testVehicle)

	if len(plan.Stops) != 0 {
		t.Fatalf("expected no stops, got %d", len(plan.Stops))
	}
	if plan.TotalDistanceKm != 0 || plan.EstimatedTimeMinutes != 0 || plan.UrgentRequestsServed != 0 {
		t.Error("empty input must produce zero metrics")
	}
	if plan.Metadata.Algorithm != "nearest_neighbor" {
		t.Errorf("algorithm = %q, want nearest_neighbor", plan.Metadata.Algorithm)
	}
	if plan.Metadata.ReturnToDepotKm != nil {
		t.Error("empty input must not record a return leg")
	}
	// Depot coordinates are populated even without demands.
	if plan.DepotLat != testVehicle.Depot.Lat || plan.DepotLon != testVehicle.Depot.Lon {
		t.Error("depot coordinates not populated for empty input")
	}
}

func TestDistanceFocusedRouteTieBreaksByInputOrder(t *testing.T) {
	same := domain.Location{Lat: 0, Lon: 0.01}
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "first", Location: same, Urgency: 1, Quantity: 1, Timestamp: 100},
		{ID: 2, NodeID: "second", Location: same, Urgency: 1, Quantity: 1, Timestamp: 50},
	}

	plan := DistanceFocusedRoute(demands, testVehicle)

	if plan.Stops[0].NodeID != "first" || plan.Stops[1].NodeID != "second" {
		t.Errorf("tie not broken by input order: got %q, %q", plan.Stops[0].NodeID, plan.Stops[1].NodeID)
	}
}

func TestDistanceFocusedRouteDoesNotMutateInput(t *testing.T) {
	demands := []domain.DemandPoint{
		{ID: 1, NodeID: "b", Location: domain.Location{Lat: 0, Lon: 0.02}, Urgency: 1, Quantity: 1, Timestamp: 100},
		{ID: 2, NodeID: "a", Location: domain.Location{Lat: 0, Lon: 0.01}, Urgency: 3, Quantity: 1, Timestamp: 200},
	}

	DistanceFocusedRoute(demands, testVehicle)

	if demands[0].NodeID != "b" || demands[1].NodeID != "a" {
		t.Error("input slice was reordered")
	}
}
