package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"relief-route-service/internal/domain"
	"relief-route-service/internal/events"
	"relief-route-service/internal/metrics"
	"relief-route-service/internal/ports"
	"relief-route-service/internal/routing"
)

type GeneratePlansRequest struct {
	Depot           domain.Location
	VehicleCapacity int
	SinceHours      int
	UrgencyWeight   float64
	DistanceWeight  float64
}

// GeneratePlans produces and stores the three candidate route plans for the
// currently active demand set.
//
// It loads demand points from stored messages, runs all strategies over the
// same immutable input, persists the batch under a fresh batch id, and
// notifies subscribers. No active demands is a defined result (an empty
// batch), not an error. Publish failures are logged and do not fail the
// generation: the plans are already durable at that point.
func GeneratePlans(
	ctx context.Context,
	req GeneratePlansRequest,
	messageRepo ports.MessageRepository,
	routeRepo ports.RouteRepository,
	pub events.Publisher,
) ([]ports.StoredRoutePlan, error) {
	demands, err := messageRepo.ActiveDemands(ctx, req.SinceHours)
	if err != nil {
		return nil, fmt.Errorf("generate plans: list active demands: %w", err)
	}

	if len(demands) == 0 {
		return []ports.StoredRoutePlan{}, nil
	}

	vehicle := domain.Vehicle{
		Depot:    req.Depot,
		Capacity: req.VehicleCapacity,
	}

	plans := routing.GenerateAllRoutes(demands, vehicle, req.UrgencyWeight, req.DistanceWeight)

	batchID := uuid.New().String()
	stored, err := routeRepo.SaveAll(ctx, batchID, plans)
	if err != nil {
		return nil, fmt.Errorf("generate plans: save batch %s: %w", batchID, err)
	}

	modes := make([]string, 0, len(plans))
	for _, p := range plans {
		modes = append(modes, string(p.Mode))
		metrics.RoutePlansGenerated.WithLabelValues(string(p.Mode)).Inc()
	}
	metrics.DemandPointsRouted.Observe(float64(len(demands)))

	evt := events.PlanGenerated{
		BatchID:     batchID,
		GeneratedAt: time.Now().Unix(),
		DemandCount: len(demands),
		Modes:       modes,
	}
	if err := pub.PublishPlanGenerated(ctx, evt); err != nil {
		log.Printf("publish plan notification failed: batch_id=%s err=%v", batchID, err)
	}

	log.Printf("generated plans: batch_id=%s demands=%d plans=%d", batchID, len(demands), len(stored))

	return stored, nil
}
