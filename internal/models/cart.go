package models

// Cart holds a user's pre-checkout selection. Exactly one cart exists per
// user; it is created together with the user and lives for the user's
// lifetime. Content defaults to an empty list and is never null.
type Cart struct {
	ID      uint        `json:"id" gorm:"primaryKey"`
	UserID  uint        `json:"user_id" gorm:"uniqueIndex"`
	Content CartContent `json:"content" gorm:"type:json"`
}
