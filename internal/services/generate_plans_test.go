package services

import (
	"context"
	"errors"
	"testing"

	"relief-route-service/internal/domain"
	"relief-route-service/internal/events"
	"relief-route-service/internal/ports"
)

type fakeMessageRepo struct {
	demands []domain.DemandPoint
	err     error
}

func (f *fakeMessageRepo) InsertMessage(context.Context, domain.Message) (int, error) {
	return 0, errors.New("not implemented")
}
func (f *fakeMessageRepo) ListRecent(context.Context, int) ([]domain.Message, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeMessageRepo) ListUrgent(context.Context, int, int) ([]domain.Message, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeMessageRepo) NodeStatuses(context.Context) ([]domain.NodeStatus, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeMessageRepo) ActiveDemands(context.Context, int) ([]domain.DemandPoint, error) {
	return f.demands, f.err
}
func (f *fakeMessageRepo) Stats(context.Context) (ports.MessageStats, error) {
	return ports.MessageStats{}, nil
}

type fakeRouteRepo struct {
	savedBatchID string
	savedPlans   []domain.RoutePlan
	err          error
}

func (f *fakeRouteRepo) SaveAll(_ context.Context, batchID string, plans []domain.RoutePlan) ([]ports.StoredRoutePlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.savedBatchID = batchID
	f.savedPlans = plans

	stored := make([]ports.StoredRoutePlan, 0, len(plans))
	for i, p := range plans {
		stored = append(stored, ports.StoredRoutePlan{ID: i + 1, BatchID: batchID, CreatedAt: 1700000000, Plan: p})
	}
	return stored, nil
}

func (f *fakeRouteRepo) ListRecent(context.Context, int) ([]ports.StoredRoutePlan, error) {
	return nil, errors.New("not implemented")
}

type fakePublisher struct {
	published []events.PlanGenerated
	err       error
}

func (f *fakePublisher) PublishPlanGenerated(_ context.Context, evt events.PlanGenerated) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

func testRequest() GeneratePlansRequest {
	return GeneratePlansRequest{
		Depot:           domain.Location{Lat: 43.4643, Lon: -80.5204},
		VehicleCapacity: 100,
		SinceHours:      24,
		UrgencyWeight:   0.6,
		DistanceWeight:  0.4,
	}
}

func TestGeneratePlansStoresThreeModes(t *testing.T) {
	msgRepo := &fakeMessageRepo{demands: []domain.DemandPoint{
		{ID: 1, NodeID: "n1", Location: domain.Location{Lat: 43.47, Lon: -80.51}, Urgency: 3, Quantity: 2, Timestamp: 1700000100},
		{ID: 2, NodeID: "n2", Location: domain.Location{Lat: 43.45, Lon: -80.53}, Urgency: 1, Quantity: 1, Timestamp: 1700000200},
	}}
	routeRepo := &fakeRouteRepo{}
	pub := &fakePublisher{}

	stored, err := GeneratePlans(context.Background(), testRequest(), msgRepo, routeRepo, pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stored) != 3 {
		t.Fatalf("expected 3 stored plans, got %d", len(stored))
	}
	if routeRepo.savedBatchID == "" {
		t.Error("batch id is empty")
	}
	for _, sp := range stored {
		if sp.BatchID != routeRepo.savedBatchID {
			t.Errorf("plan batch id = %q, want %q", sp.BatchID, routeRepo.savedBatchID)
		}
		if len(sp.Plan.Stops) != 2 {
			t.Errorf("mode %q: %d stops, want 2", sp.Plan.Mode, len(sp.Plan.Stops))
		}
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.published))
	}
	evt := pub.published[0]
	if evt.BatchID != routeRepo.savedBatchID || evt.DemandCount != 2 || len(evt.Modes) != 3 {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestGeneratePlansNoActiveDemands(t *testing.T) {
	msgRepo := &fakeMessageRepo{}
	routeRepo := &fakeRouteRepo{}
	pub := &fakePublisher{}

	stored, err := GeneratePlans(context.Background(), testRequest(), msgRepo, routeRepo, pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stored) != 0 {
		t.Errorf("expected empty batch, got %d plans", len(stored))
	}
	if routeRepo.savedBatchID != "" {
		t.Error("nothing should be saved without demands")
	}
	if len(pub.published) != 0 {
		t.Error("nothing should be published without demands")
	}
}

func TestGeneratePlansPublishFailureIsNotFatal(t *testing.T) {
	msgRepo := &fakeMessageRepo{demands: []domain.DemandPoint{
		{ID: 1, NodeID: "n1", Location: domain.Location{Lat: 43.47, Lon: -80.51}, Urgency: 2, Quantity: 1, Timestamp: 1700000100},
	}}
	routeRepo := &fakeRouteRepo{}
	pub := &fakePublisher{err: errors.New("broker unavailable")}

	stored, err := GeneratePlans(context.Background(), testRequest(), msgRepo, routeRepo, pub)
	if err != nil {
		t.Fatalf("publish failure must not fail generation: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 stored plans, got %d", len(stored))
	}
}

func TestGeneratePlansRepositoryError(t *testing.T) {
	msgRepo := &fakeMessageRepo{err: errors.New("db locked")}

	_, err := GeneratePlans(context.Background(), testRequest(), msgRepo, &fakeRouteRepo{}, &fakePublisher{})
	if err == nil {
		t.Fatal("expected error when demand lookup fails")
	}
}
