package models

import "time"

// Order is a frozen snapshot of a cart taken at checkout time. Content never
// changes after creation; only the review and paid fields do.
type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"index"`
	Content     CartContent `json:"content" gorm:"type:json"`
	CreatedAt   time.Time   `json:"created_at"`
	Review      string      `json:"review" gorm:"type:varchar(500)"`
	Paid        bool        `json:"paid"`
	Description string      `json:"description" gorm:"type:varchar(500)"`
}
