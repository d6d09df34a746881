package models

import "time"

// Article is an editorial content entry, listed newest first.
type Article struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"type:varchar(255)"`
	Category string    `json:"category" gorm:"type:varchar(100)"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Image    string    `json:"image"`
	Date     time.Time `json:"date"`
}
