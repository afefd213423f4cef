package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity log action names recorded by the content services.
const (
	ActionCreatePost    = "게시글 작성"
	ActionCreateComment = "댓글 작성"
)

// Activity log target types.
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// ActivityLog is an append-only audit record of user actions. Entries
// are written as a side effect of content creation and never mutated.
type ActivityLog struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"index;not null" json:"user_id"`
	Action     string            `gorm:"size:64;not null" json:"action"`
	TargetType string            `gorm:"size:32" json:"target_type"`
	TargetID   *uint             `json:"target_id"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}
