package domain

import "time"

type EventType string

const (
	EventWebsiteCreated EventType = "website.created"
	EventWebsiteDeleted EventType = "website.deleted"
	EventAuditCompleted EventType = "audit.completed"
)

// Event is published to the message broker after a state change is committed.
type Event struct {
	Type      EventType    `json:"type"`
	WebsiteID int64        `json:"website_id"`
	Website   *Website     `json:"website,omitempty"`
	Audit     *AuditResult `json:"audit,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
