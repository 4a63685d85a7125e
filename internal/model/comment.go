package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a single remark attached to a content item. Top-level comments
// have no parent; replies reference the parent comment's ID, which must
// belong to the same content item.
type Comment struct {
	ID            uuid.UUID  `json:"id"`
	ContentItemID uuid.UUID  `json:"content_item_id"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	AuthorID      uuid.UUID  `json:"author_id"`
	AuthorEmail   string     `json:"author_email,omitempty"` // empty on legacy records, repaired by backfill
	Body          string     `json:"body"`
	CreatedAt     time.Time  `json:"created_at"`
	Deleted       bool       `json:"deleted"`
}

// CommentNode is one node of an assembled thread. Children are ordered by
// creation time. Depth flattening for presentation rearranges Children only;
// the Comment's ParentID always reflects what is stored.
type CommentNode struct {
	Comment  Comment        `json:"comment"`
	Children []*CommentNode `json:"children,omitempty"`
}
