package models

import "time"

// Post represents a blog post in the Inkwell application.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"uniqueIndex;not null" json:"title"`
	Subtitle string `gorm:"not null" json:"subtitle"`
	// Date is the human-readable publication date ("January 02, 2006").
	// It is stamped once at creation time and never recalculated on edit.
	Date      string    `gorm:"not null" json:"date"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicationDateFormat is the layout used for Post.Date.
const PublicationDateFormat = "January 02, 2006"
