// Package routing generates candidate route plans for supply distribution.
//
// Three strategies are implemented over a shared haversine distance model:
// distance-focused (nearest neighbor), priority-focused (urgency first), and
// blended (weighted scoring). All strategies are pure functions of their
// inputs: no I/O, no shared state, and deterministic tie-breaking, so a
// caller may safely run them concurrently.
package routing

import (
	"math"

	"relief-route-service/internal/domain"
)

// Time estimate assumptions shared by all strategies: a fixed average travel
// speed plus a fixed service time per stop.
const (
	avgSpeedKmh           = 40.0
	serviceMinutesPerStop = 10.0
)

// newPlan returns a plan skeleton for one strategy. Depot coordinates are
// always filled in, even when no demands are routed.
func newPlan(mode domain.RouteMode, vehicle domain.Vehicle, meta domain.RouteMetadata) domain.RoutePlan {
	return domain.RoutePlan{
		Mode:     mode,
		DepotLat: vehicle.Depot.Lat,
		DepotLon: vehicle.Depot.Lon,
		Stops:    []domain.Stop{},
		Metadata: meta,
	}
}

// appendStop projects a demand point into the route and updates the urgent
// service counter.
func appendStop(plan *domain.RoutePlan, d domain.DemandPoint, distanceKm float64) {
	plan.Stops = append(plan.Stops, domain.Stop{
		Lat:                d.Location.Lat,
		Lon:                d.Location.Lon,
		NodeID:             d.NodeID,
		ResourceType:       d.ResourceType,
		Quantity:           d.Quantity,
		Urgency:            d.Urgency,
		DistanceFromPrevKm: round2(distanceKm),
	})
	if d.Urgency >= domain.UrgencyElevated {
		plan.UrgentRequestsServed++
	}
}

// finishPlan folds the return-to-depot leg into the total distance (the stop
// sequence itself gets no synthetic return stop) and computes the time
// estimate.
func finishPlan(plan *domain.RoutePlan, last domain.Location, vehicle domain.Vehicle, totalKm float64) {
	returnKm := last.DistanceKm(vehicle.Depot)
	totalKm += returnKm

	plan.TotalDistanceKm = round2(totalKm)
	plan.EstimatedTimeMinutes = round1(totalKm/avgSpeedKmh*60.0 + float64(len(plan.Stops))*serviceMinutesPerStop)

	r := round2(returnKm)
	plan.Metadata.ReturnToDepotKm = &r
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
