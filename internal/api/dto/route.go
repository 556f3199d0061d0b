package dto

import (
	"relief-route-service/internal/domain"
	"relief-route-service/internal/ports"
)

// GenerateRoutesRequest carries the planning parameters. Every field is
// optional; omitted values fall back to server defaults. The weights are
// passed to the engine as-is, without normalization or range checks.
type GenerateRoutesRequest struct {
	DepotLat        *float64 `json:"depot_lat"`
	DepotLon        *float64 `json:"depot_lon"`
	VehicleCapacity int      `json:"vehicle_capacity"`
	SinceHours      int      `json:"since_hours"`
	UrgencyWeight   *float64 `json:"urgency_weight"`
	DistanceWeight  *float64 `json:"distance_weight"`
}

// RoutePlanResponse flattens a stored plan into the persisted wire shape:
// the engine's RoutePlan fields plus storage identity.
type RoutePlanResponse struct {
	ID        int    `json:"id"`
	CreatedAt int64  `json:"created_at"`
	BatchID   string `json:"batch_id"`
	domain.RoutePlan
}

func RoutePlanFromStored(sp ports.StoredRoutePlan) RoutePlanResponse {
	return RoutePlanResponse{
		ID:        sp.ID,
		CreatedAt: sp.CreatedAt,
		BatchID:   sp.BatchID,
		RoutePlan: sp.Plan,
	}
}
