package routing

import "relief-route-service/internal/domain"

// BlendedRoute plans a route balancing urgency against travel distance.
//
// At each step every remaining demand is scored as
//
//	score = urgencyWeight*urgency - distanceWeight*normalizedDistance
//
// where the distance is normalized by the maximum distance from the current
// position to any remaining demand, recomputed fresh every step. The demand
// with the strictly greatest score is visited next; a linear scan replaces
// the best candidate only on strict improvement, so the first occurrence
// wins ties.
//
// The weights are accepted as-is: they typically sum near 1.0 but no
// normalization or range check is performed.
func BlendedRoute(demands []domain.DemandPoint, vehicle domain.Vehicle, urgencyWeight, distanceWeight float64) domain.RoutePlan {
	uw, dw := urgencyWeight, distanceWeight
	plan := newPlan(domain.ModeBlended, vehicle, domain.RouteMetadata{
		Algorithm:      "weighted_scoring",
		UrgencyWeight:  &uw,
		DistanceWeight: &dw,
	})
	if len(demands) == 0 {
		return plan
	}

	remaining := make([]int, len(demands))
	for i := range demands {
		remaining[i] = i
	}

	current := vehicle.Depot
	totalKm := 0.0

	for len(remaining) > 0 {
		// Normalization denominator: farthest remaining demand from the
		// current position. Zero only when every remaining demand is
		// co-located with the vehicle; substitute 1.0 to avoid dividing
		// by zero.
		maxKm := 0.0
		for _, i := range remaining {
			if km := current.DistanceKm(demands[i].Location); km > maxKm {
				maxKm = km
			}
		}
		if maxKm == 0 {
			maxKm = 1.0
		}

		best := -1
		bestScore := 0.0
		bestKm := 0.0
		for k, i := range remaining {
			km := current.DistanceKm(demands[i].Location)
			score := urgencyWeight*float64(demands[i].Urgency) - distanceWeight*(km/maxKm)
			if best < 0 || score > bestScore {
				best = k
				bestScore = score
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
