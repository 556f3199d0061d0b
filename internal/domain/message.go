package domain

// Message types as reported by field nodes.
const (
	TypeSOS           = "sos"
	TypeSupplyRequest = "supply_request"
	TypeStatusUpdate  = "status_update"
	TypeBroadcast     = "broadcast"
)

// Message is one stored report from a field node. Coordinates and resource
// fields are optional: status updates and broadcasts often carry neither.
type Message struct {
	ID           int
	NodeID       string
	Timestamp    int64
	MessageType  string
	Urgency      int
	Lat          *float64
	Lon          *float64
	ResourceType string
	Quantity     *int
	Payload      string
}

// NodeStatus is the aggregated view of one node: its latest message
// details plus basic activity counters.
type NodeStatus struct {
	NodeID          string
	LastSeen        int64
	MessageCount    int
	LastMessageType string
	LastUrgency     *int
	LastLat         *float64
	LastLon         *float64
}
