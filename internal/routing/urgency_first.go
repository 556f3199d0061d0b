package routing

import (
	"slices"

	"relief-route-service/internal/domain"
)

// PriorityFocusedRoute plans a priority-maximizing route: demands are
// visited strictly in order of descending urgency regardless of geometric
// cost, with older requests served first among equal urgency. No greedy
// search is involved; the order is fixed by a single stable sort.
func PriorityFocusedRoute(demands []domain.DemandPoint, vehicle domain.Vehicle) domain.RoutePlan {
	plan := newPlan(domain.ModePriority, vehicle, domain.RouteMetadata{Algorithm: "urgency_first"})
	if len(demands) == 0 {
		return plan
	}

	ordered := slices.Clone(demands)
	slices.SortStableFunc(ordered, func(a, b domain.DemandPoint) int {
		if a.Urgency != b.Urgency {
			return b.Urgency - a.Urgency
		}
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		}
		return 0
	})

	current := vehicle.Depot
	totalKm := 0.0

	for _, d := range ordered {
		km := current.DistanceKm(d.Location)
		totalKm += km
		appendStop(&plan, d, km)
		current = d.Location
	}

	finishPlan(&plan, current, vehicle, totalKm)
	return plan
}
