package events

import (
	"context"
	"time"

	"crm-backend/internal/database/models"
)

// RoutingKeyLeadStatusChanged is the routing key of lead status change events
const RoutingKeyLeadStatusChanged = "lead.status_changed"

// LeadStatusChanged is emitted after a lead moves to a different pipeline stage
type LeadStatusChanged struct {
	LeadID      uint              `json:"lead_id"`
	OldStatus   models.LeadStatus `json:"old_status"`
	NewStatus   models.LeadStatus `json:"new_status"`
	Closed      bool              `json:"closed"`
	ChangedByID *uint             `json:"changed_by_id,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	ChangedAt   time.Time         `json:"changed_at"`
	RequestID   string            `json:"request_id,omitempty"`
}

// Publisher delivers domain events to downstream consumers
type Publisher interface {
	PublishLeadStatusChanged(ctx context.Context, event LeadStatusChanged) error
	Healthy() bool
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// PublishLeadStatusChanged discards the event
func (NoopPublisher) PublishLeadStatusChanged(context.Context, LeadStatusChanged) error {
	return nil
}

// Healthy always reports true
func (NoopPublisher) Healthy() bool { return true }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
