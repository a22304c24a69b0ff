package models

import "time"

type Post struct {
	PostID        uint64    `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	Content       string    `gorm:"column:content;type:text" json:"content"`
	ContentSentAt time.Time `gorm:"column:content_sent_at" json:"content_sent_at"`
	UserID        uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	ImageURL      *string   `gorm:"column:image_url;type:text" json:"image_url"`
}

func (Post) TableName() string { return "posts" }

// FeedPost is a post joined with its author's display name, the shape the
// feed, single-post and post-search endpoints return.
type FeedPost struct {
	PostID        uint64    `gorm:"column:post_id" json:"post_id"`
	Content       string    `gorm:"column:content" json:"content"`
	ContentSentAt time.Time `gorm:"column:content_sent_at" json:"content_sent_at"`
	UserID        uint64    `gorm:"column:user_id" json:"user_id"`
	ImageURL      *string   `gorm:"column:image_url" json:"image_url"`
	Name          string    `gorm:"column:name" json:"name"`
}
