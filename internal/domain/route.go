package domain

// RouteMode identifies one of the three sequencing strategies.
type RouteMode string

const (
	ModeDistance RouteMode = "distance"
	ModePriority RouteMode = "priority"
	ModeBlended  RouteMode = "blended"
)

// Stop is one visited demand point within a constructed route, annotated
// with the distance traveled from the previous stop (or the depot, for the
// first stop).
type Stop struct {
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	NodeID             string  `json:"node_id"`
	ResourceType       string  `json:"resource_type,omitempty"`
	Quantity           int     `json:"quantity"`
	Urgency            int     `json:"urgency"`
	DistanceFromPrevKm float64 `json:"distance_from_prev_km"`
}

// RouteMetadata holds algorithm-specific details of a plan. The weight
// fields are populated only by the blended strategy, and the return leg
// only when the route has at least one stop.
type RouteMetadata struct {
	Algorithm       string   `json:"algorithm"`
	ReturnToDepotKm *float64 `json:"return_to_depot_km,omitempty"`
	UrgencyWeight   *float64 `json:"urgency_weight,omitempty"`
	DistanceWeight  *float64 `json:"distance_weight,omitempty"`
}

// RoutePlan is the output of one routing strategy: an ordered visiting
// sequence plus distance, time, and service metrics. It is immutable
// planning data and contains no side effects. Depot coordinates are always
// populated, including for an empty demand list.
type RoutePlan struct {
	Mode                 RouteMode     `json:"mode"`
	DepotLat             float64       `json:"depot_lat"`
	DepotLon             float64       `json:"depot_lon"`
	Stops                []Stop        `json:"stops"`
	TotalDistanceKm      float64       `json:"total_distance_km"`
	EstimatedTimeMinutes float64       `json:"estimated_time_minutes"`
	UrgentRequestsServed int           `json:"urgent_requests_served"`
	Metadata             RouteMetadata `json:"metadata"`
}
