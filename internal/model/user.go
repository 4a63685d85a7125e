package model

import "github.com/google/uuid"

// UserPreference is the slice of the user collection this service reads:
// where to notify a user and whether they want reply notifications at all.
type UserPreference struct {
	UserID                    uuid.UUID `json:"user_id"`
	NotificationAddress       string    `json:"notification_address,omitempty"`
	ReplyNotificationsEnabled bool      `json:"reply_notifications_enabled"`
}
