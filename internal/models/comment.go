package models

import "time"

// Comment is append-only; there is no edit or delete path.
type Comment struct {
	CommentID   uint64    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	Content     string    `gorm:"column:comment_content;type:text;not null" json:"comment_content"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	PostID      uint64    `gorm:"column:post_id;index;not null" json:"post_id"`
	CommenterID uint64    `gorm:"column:commenter_id;not null" json:"commenter_id"`
}

func (Comment) TableName() string { return "comments" }

// CommentWithAuthor joins the commenter's display name for listings.
type CommentWithAuthor struct {
	CommentID   uint64    `gorm:"column:comment_id" json:"comment_id"`
	Content     string    `gorm:"column:comment_content" json:"comment_content"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	CommenterID uint64    `gorm:"column:commenter_id" json:"commenter_id"`
	Name        string    `gorm:"column:name" json:"name"`
}
