package models

import "time"

type Job struct {
	JobID           uint64    `gorm:"column:job_id;primaryKey;autoIncrement" json:"job_id"`
	Title           string    `gorm:"column:title;type:text;not null" json:"title"`
	Company         string    `gorm:"column:company;type:text;not null" json:"company"`
	Location        string    `gorm:"column:location;type:text;not null" json:"location"`
	Description     string    `gorm:"column:description;type:text;not null" json:"description"`
	PostedBy        uint64    `gorm:"column:posted_by;index;not null" json:"posted_by"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	ContactEmail    *string   `gorm:"column:contact_email;type:text" json:"contact_email"`
	ContactPhone    *string   `gorm:"column:contact_phone;type:text" json:"contact_phone"`
	ApplicationLink *string   `gorm:"column:application_link;type:text" json:"application_link"`
}

func (Job) TableName() string { return "jobs" }

// JobListing is a job joined with the poster's display name. Contact
// fields are nilled out before serving when the viewer is not allowed to
// see them.
type JobListing struct {
	JobID           uint64    `gorm:"column:job_id" json:"job_id"`
	Title           string    `gorm:"column:title" json:"title"`
	Company         string    `gorm:"column:company" json:"company"`
	Location        string    `gorm:"column:location" json:"location"`
	Description     string    `gorm:"column:description" json:"description"`
	PostedBy        uint64    `gorm:"column:posted_by" json:"posted_by"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	ContactEmail    *string   `gorm:"column:contact_email" json:"contact_email,omitempty"`
	ContactPhone    *string   `gorm:"column:contact_phone" json:"contact_phone,omitempty"`
	ApplicationLink *string   `gorm:"column:application_link" json:"application_link,omitempty"`
	PostedByName    string    `gorm:"column:posted_by_name" json:"posted_by_name"`
}
