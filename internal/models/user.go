package models

import "time"

type User struct {
	UserID          uint64  `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name            string  `gorm:"column:name;type:text;not null" json:"name"`
	Email           string  `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	PasswordHash    string  `gorm:"column:password;type:text;not null" json:"-"`
	Role            Role    `gorm:"column:description;type:varchar(1);not null" json:"description"`
	Headline        *string `gorm:"column:headline;type:text" json:"headline"`
	Summary         *string `gorm:"column:summary;type:text" json:"summary"`
	Age             *int    `gorm:"column:age" json:"age"`
	ProfileImageURL *string `gorm:"column:profile_image_url;type:text" json:"profile_image_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Profile is the public view of a user returned by the profile endpoint,
// with the viewer's resolved connection status attached. The legacy
// "description" and "connectionStatus" JSON keys are kept for the client.
type Profile struct {
	UserID          uint64           `gorm:"column:user_id" json:"user_id"`
	Name            string           `gorm:"column:name" json:"name"`
	Headline        *string          `gorm:"column:headline" json:"headline"`
	Summary         *string          `gorm:"column:summary" json:"summary"`
	Role            Role             `gorm:"column:description" json:"description"`
	ProfileImageURL *string          `gorm:"column:profile_image_url" json:"profile_image_url"`
	Status          ConnectionStatus `gorm:"-" json:"connectionStatus,omitempty"`
}

func (u *User) Profile() Profile {
	return Profile{
		UserID:          u.UserID,
		Name:            u.Name,
		Headline:        u.Headline,
		Summary:         u.Summary,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
	}
}
