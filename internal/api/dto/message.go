package dto

import "relief-route-service/internal/domain"

type MessageResponse struct {
	ID           int      `json:"id"`
	NodeID       string   `json:"node_id"`
	Timestamp    int64    `json:"timestamp"`
	MessageType  string   `json:"message_type"`
	Urgency      int      `json:"urgency"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	ResourceType string   `json:"resource_type,omitempty"`
	Quantity     *int     `json:"quantity"`
	Payload      string   `json:"payload,omitempty"`
}

func MessageFromDomain(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		NodeID:       m.NodeID,
		Timestamp:    m.Timestamp,
		MessageType:  m.MessageType,
		Urgency:      m.Urgency,
		Lat:          m.Lat,
		Lon:          m.Lon,
		ResourceType: m.ResourceType,
		Quantity:     m.Quantity,
		Payload:      m.Payload,
	}
}

type NodeStatusResponse struct {
	NodeID          string   `json:"node_id"`
	LastSeen        int64    `json:"last_seen"`
	MessageCount    int      `json:"message_count"`
	LastMessageType string   `json:"last_message_type,omitempty"`
	LastUrgency     *int     `json:"last_urgency"`
	LastLat         *float64 `json:"last_lat"`
	LastLon         *float64 `json:"last_lon"`
}

func NodeStatusFromDomain(n domain.NodeStatus) NodeStatusResponse {
	return NodeStatusResponse{
		NodeID:          n.NodeID,
		LastSeen:        n.LastSeen,
		MessageCount:    n.MessageCount,
		LastMessageType: n.LastMessageType,
		LastUrgency:     n.LastUrgency,
		LastLat:         n.LastLat,
		LastLon:         n.LastLon,
	}
}
