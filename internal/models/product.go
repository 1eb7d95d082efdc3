package models

// ProductType is a menu category. Categories are listed lexically by name.
type ProductType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100)"`
	Description string `json:"description" gorm:"type:varchar(500)"`
}

// Product is a single menu item belonging to exactly one category. Price is
// displayed with two decimals.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"type:varchar(100)"`
	Price         float64 `json:"price"`
	ProductTypeID uint    `json:"product_type_id" gorm:"index"`
	Description   string  `json:"description" gorm:"type:varchar(500)"`
}
