package models

import "time"

// Admin action tags recorded in the log.
const (
	ActionUpdateStatus      = "update_status"
	ActionDeleteApplication = "delete_application"
)

// AdminLogEntry is an audit record of a mutating admin action.
// ApplicationID is a weak reference: it may point to a deleted row.
type AdminLogEntry struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Actor         string    `json:"actor,omitempty"`
	Action        string    `json:"action"`
	ApplicationID int64     `json:"application_id,omitempty"`
	// Details holds the deserialized JSON payload when the stored text
	// parses, otherwise the raw stored string.
	Details any `json:"details,omitempty"`
}
