package ports

import (
	"context"

	"relief-route-service/internal/domain"
)

// StoredRoutePlan couples an engine RoutePlan with its persistence fields.
type StoredRoutePlan struct {
	ID        int
	BatchID   string
	CreatedAt int64
	Plan      domain.RoutePlan
}

// Port: a boundary for persisting and listing generated route plans.
type RouteRepository interface {
	// Persist all plans of one generation batch and return them with ids.
	SaveAll(ctx context.Context, batchID string, plans []domain.RoutePlan) ([]StoredRoutePlan, error)
	// Return recently generated plans, newest first.
	ListRecent(ctx context.Context, limit int) ([]StoredRoutePlan, error)
}
