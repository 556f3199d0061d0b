package ports

import (
	"context"

	"relief-route-service/internal/domain"
)

// MessageStats is a small health snapshot of the message store.
type MessageStats struct {
	TotalMessages        int
	LastMessageTimestamp *int64
}

// Port: a boundary for storing and reading node messages.
type MessageRepository interface {
	// Insert a validated message and return its id.
	InsertMessage(ctx context.Context, msg domain.Message) (int, error)
	// Return recent messages ordered by timestamp descending.
	ListRecent(ctx context.Context, limit int) ([]domain.Message, error)
	// Return messages at or above minUrgency, most urgent and newest first.
	ListUrgent(ctx context.Context, minUrgency, limit int) ([]domain.Message, error)
	// Return the latest status of every node that has reported.
	NodeStatuses(ctx context.Context) ([]domain.NodeStatus, error)
	// Return demand points derived from actionable messages (supply requests
	// and SOS with known coordinates) within the recency window. The routing
	// engine trusts this filtering and performs none itself.
	ActiveDemands(ctx context.Context, sinceHours int) ([]domain.DemandPoint, error)
	// Return store totals for health reporting.
	Stats(ctx context.Context) (MessageStats, error)
}
