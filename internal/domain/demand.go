package domain

// Urgency tiers for messages and demand points.
// 3 is life-threatening, 1 is routine.
const (
	UrgencyLow      = 1
	UrgencyElevated = 2
	UrgencyCritical = 3
)

// A single outstanding supply or emergency request.
// Demand points are built by the caller from stored messages and are
// read-only to the routing engine: builders never mutate or drop them.
type DemandPoint struct {
	ID           int
	NodeID       string
	Location     Location
	Urgency      int
	ResourceType string
	Quantity     int
	Timestamp    int64
}
