package models

// Product is an item in the catalog that leads can be sold
type Product struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:200"`
	SKU         string  `json:"sku" gorm:"uniqueIndex;not null;size:64"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null;default:0"`
	IsActive    bool    `json:"is_active" gorm:"not null;index"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
