package models

import "github.com/google/uuid"

// ActivityLog is an append-only audit record. Writes are fire-and-forget:
// a failed insert must never abort the operation being logged.
type ActivityLog struct {
	BaseModel
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User      `json:"user,omitempty"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	IPAddress   string     `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
}
