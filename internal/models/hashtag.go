package models

// Hashtag is a free-text tag bound to one post. Tags are stored as typed
// at post creation (after trimming and stripping a leading '#'); the same
// tag may appear on many posts and no dedup is enforced within a post.
type Hashtag struct {
	HashtagID uint64 `gorm:"column:hashtag_id;primaryKey;autoIncrement" json:"-"`
	Hashtag   string `gorm:"column:hashtag;type:text;not null;index" json:"hashtag"`
	PostID    uint64 `gorm:"column:post_id;index;not null" json:"-"`
}

func (Hashtag) TableName() string { return "hashtags" }
