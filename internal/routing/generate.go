package routing

import "relief-route-service/internal/domain"

// Default blend weights used when the caller does not supply any.
const (
	DefaultUrgencyWeight  = 0.6
	DefaultDistanceWeight = 0.4
)

// GenerateAllRoutes runs the three strategies over the same input and
// returns their plans in fixed order: distance, priority, blended. The
// builders cannot fail on well-formed input, so there is nothing to
// propagate.
func GenerateAllRoutes(demands []domain.DemandPoint, vehicle domain.Vehicle, urgencyWeight, distanceWeight float64) []domain.RoutePlan {
	return []domain.RoutePlan{
		DistanceFocusedRoute(demands, vehicle),
		PriorityFocusedRoute(demands, vehicle),
		BlendedRoute(demands, vehicle, urgencyWeight, distanceWeight),
	}
}
