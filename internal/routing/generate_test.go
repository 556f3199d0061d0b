package routing

import (
	"reflect"
	"testing"

	"relief-route-service/internal/domain"
)

func sampleDemands() []domain.DemandPoint {
	return []domain.DemandPoint{
		{ID: 1, NodeID: "n1", Location: domain.Location{Lat: 0.02, Lon: 0.01}, Urgency: 1, ResourceType: "water", Quantity: 4, Timestamp: 100},
		{ID: 2, NodeID: "n2", Location: domain.Location{Lat: 0.01, Lon: 0.03}, Urgency: 3, ResourceType: "medical", Quantity: 1, Timestamp: 200},
		{ID: 3, NodeID: "n3", Location: domain.Location{Lat: 0.04, Lon: 0.02}, Urgency: 2, ResourceType: "food", Quantity: 8, Timestamp: 300},
		{ID: 4, NodeID: "n4", Location: domain.Location{Lat: 0.03, Lon: 0.05}, Urgency: 2, ResourceType: "water", Quantity: 2, Timestamp: 50},
	}
}

func TestGenerateAllRoutesReturnsThreeModes(t *testing.T) {
	plans := GenerateAllRoutes(sampleDemands(), testVehicle, DefaultUrgencyWeight, DefaultDistanceWeight)

	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}

	wantModes := []domain.RouteMode{domain.ModeDistance, domain.ModePriority, domain.ModeBlended}
	for i, want := range wantModes {
		if plans[i].Mode != want {
			t.Errorf("plan %d mode = %q, want %q", i, plans[i].Mode, want)
		}
	}

	for _, p := range plans {
		if len(p.Stops) != 4 {
			t.Errorf("mode %q: %d stops, want 4 (no demand dropped or duplicated)", p.Mode, len(p.Stops))
		}

		urgent := 0
		for _, s := range p.Stops {
			if s.Urgency >= domain.UrgencyElevated {
				urgent++
			}
		}
		if p.UrgentRequestsServed != urgent {
			t.Errorf("mode %q: urgent served = %d, want %d", p.Mode, p.UrgentRequestsServed, urgent)
		}
	}
}

func TestGenerateAllRoutesDeterministic(t *testing.T) {
	demands := sampleDemands()

	first := GenerateAllRoutes(demands, testVehicle, 0.6, 0.4)
	second := GenerateAllRoutes(demands, testVehicle, 0.6, 0.4)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different plans")
	}
}

func TestGenerateAllRoutesEmptyInput(t *testing.T) {
	plans := GenerateAllRoutes(nil, testVehicle, 0.6, 0.4)

	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	for _, p := range plans {
		if len(p.Stops) != 0 || p.TotalDistanceKm != 0 || p.EstimatedTimeMinutes != 0 {
			t.Errorf("mode %q: empty input must produce zero metrics", p.Mode)
		}
	}
}
