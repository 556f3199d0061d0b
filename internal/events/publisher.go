// Package events notifies external consumers (dashboards, dispatch tools)
// when new route plans become available.
package events

import "context"

// PlanGenerated announces one stored generation batch.
type PlanGenerated struct {
	BatchID     string   `json:"batch_id"`
	GeneratedAt int64    `json:"generated_at"`
	DemandCount int      `json:"demand_count"`
	Modes       []string `json:"modes"`
}

// Publisher delivers plan notifications to a message broker.
type Publisher interface {
	PublishPlanGenerated(ctx context.Context, evt PlanGenerated) error
}

// NoopPublisher is wired when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPlanGenerated(context.Context, PlanGenerated) error { return nil }
