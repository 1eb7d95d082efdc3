package models

// User represents a bot user. The Telegram id is the external identity: it is
// unique and never changes once the row exists. The display name follows
// whatever Telegram reports, last write wins.
type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TelegramID  int64  `json:"telegram_id" gorm:"uniqueIndex"`
	Name        string `json:"name" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:varchar(500)"`
}
