package routing

import "relief-route-service/internal/domain"

// DistanceFocusedRoute plans a distance-minimizing route using the greedy
// nearest-neighbor heuristic: always visit the closest unvisited demand
// point next. It does not attempt global optimization (e.g., a TSP solver);
// determinism and simplicity are preferred over optimality.
//
// The input slice is never mutated. Ties are broken by input order: a
// stable scan keeps the first occurrence, so repeated calls with the same
// input produce identical plans.
func DistanceFocusedRoute(demands []domain.DemandPoint, vehicle domain.Vehicle) domain.RoutePlan {
	plan := newPlan(domain.ModeDistance, vehicle, domain.RouteMetadata{Algorithm: "nearest_neighbor"})
	if len(demands) == 0 {
		return plan
	}

	// Unvisited indices into the immutable input, in input order.
	remaining := make([]int, len(demands))
	for i := range demands {
		remaining[i] = i
	}

	current := vehicle.Depot
	totalKm := 0.0

	for len(remaining) > 0 {
		best := 0
		bestKm := current.DistanceKm(demands[remaining[0]].Location)
		for k := 1; k < len(remaining); k++ {
			if km := current.DistanceKm(demands[remaining[k]].Location); km < bestKm {
				best = k
				bestKm = km
			}
		}

		chosen := demands[remaining[best]]
		totalKm += bestKm
		appendStop(&plan, chosen, bestKm)

		current = chosen.Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	finishPlan(&plan, current, vehicle, totalKm)
	return plan
}
