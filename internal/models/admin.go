package models

// Admin is an operator account for the admin API. Bot users never log in;
// this table only backs the catalog/order management endpoints.
type Admin struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
}
