package models

import "time"

// Post status values. Notices are pinned above the normal listing
// order; hidden posts are excluded from the public listing.
const (
	PostStatusVisible = "visible"
	PostStatusHidden  = "hidden"
	PostStatusNotice  = "notice"
)

// Post is a board entry. Author carries the writer's nickname at
// creation time, denormalized so listings need no join.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:64;not null" json:"author"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Image     *string   `gorm:"size:512" json:"image"`
	Status    string    `gorm:"size:16;not null;default:visible;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment belongs to a post. Author is the commenter's nickname,
// denormalized the same way as Post.Author.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Author    string    `gorm:"size:64;not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
