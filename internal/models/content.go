package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CartContent is the JSON document stored in the content column of carts and
// orders. Product ids may repeat; a repeated id denotes a larger quantity.
type CartContent struct {
	Products []uint `json:"products"`
}

// EmptyContent returns a content document with an empty (non-nil) product list.
func EmptyContent() CartContent {
	return CartContent{Products: []uint{}}
}

// Clone returns a deep copy of the content. Orders snapshot cart content at
// checkout time; mutating the cart afterwards must never reach the order.
func (c CartContent) Clone() CartContent {
	products := make([]uint, len(c.Products))
	copy(products, c.Products)
	return CartContent{Products: products}
}

// IsEmpty reports whether the content holds no product ids.
func (c CartContent) IsEmpty() bool {
	return len(c.Products) == 0
}

// Value implements driver.Valuer so GORM persists the document as JSON.
func (c CartContent) Value() (driver.Value, error) {
	if c.Products == nil {
		c.Products = []uint{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart content: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for reading the JSON document back.
func (c *CartContent) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		c.Products = []uint{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type %T for cart content", value)
	}
}
