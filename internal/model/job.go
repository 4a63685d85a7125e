package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification job statuses. Delivered and Failed are terminal: once a job
// reaches either, no further transitions occur. Suppressed jobs are recorded
// for audit and never enqueued.
const (
	JobStatusPending    = "pending"
	JobStatusSending    = "sending"
	JobStatusDelivered  = "delivered"
	JobStatusSuppressed = "suppressed"
	JobStatusFailed     = "failed"
)

// NotificationJob is one pending or completed delivery. The write path owns
// it only until it is enqueued; after that the dispatch worker is the sole
// writer of Status, Attempts and LastError.
type NotificationJob struct {
	ID               uuid.UUID `json:"id"`
	RecipientAddress string    `json:"recipient_address"`
	ReplyID          uuid.UUID `json:"reply_id"`
	ParentID         uuid.UUID `json:"parent_id"`
	ContentItemID    uuid.UUID `json:"content_item_id"`
	ReplyExcerpt     string    `json:"reply_excerpt"`
	ParentExcerpt    string    `json:"parent_excerpt"`
	Status           string    `json:"status"`
	Attempts         int       `json:"attempts"`
	LastError        string    `json:"last_error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Terminal reports whether the job status admits no further transitions.
func (j NotificationJob) Terminal() bool {
	return j.Status == JobStatusDelivered || j.Status == JobStatusFailed
}
